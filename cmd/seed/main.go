package main

import (
	"log"
	"os"

	"hr-knowledge-be/internal/model"
	"hr-knowledge-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	seedCategories(db)
	seedDocuments(db)

	color.Green("Seed data applied")
}

func seedCategories(db *gorm.DB) {
	categories := []model.DocumentCategory{
		{Name: "Kebijakan", Description: "Kebijakan dan peraturan perusahaan", IsActive: true},
		{Name: "SOP", Description: "Prosedur operasional standar", IsActive: true},
		{Name: "Pelatihan", Description: "Materi dan jadwal pelatihan", IsActive: true},
		{Name: "FAQ", Description: "Pertanyaan yang sering diajukan", IsActive: true},
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&categories).Error
	if err != nil {
		color.Red("Failed to seed categories: %v", err)
		os.Exit(1)
	}
	color.Cyan("Seeded %d document categories", len(categories))
}

func seedDocuments(db *gorm.DB) {
	var count int64
	db.Model(&model.Document{}).Count(&count)
	if count > 0 {
		color.Yellow("Documents already present, skipping document seed")
		return
	}

	var policyCategory model.DocumentCategory
	db.Where("name = ?", "Kebijakan").First(&policyCategory)

	documents := []model.Document{
		{
			Title:       "Kebijakan Cuti Tahunan",
			Description: "Ketentuan jatah cuti, pengajuan, dan carry over",
			FileType:    "md",
			FileRef:     "uploads/kebijakan-cuti-tahunan.md",
			CategoryId:  &policyCategory.Id,
			Status:      "pending",
		},
		{
			Title:       "Panduan Penggajian dan THR",
			Description: "Komponen gaji, jadwal pembayaran, dan perhitungan THR",
			FileType:    "md",
			FileRef:     "uploads/panduan-penggajian.md",
			CategoryId:  &policyCategory.Id,
			Status:      "pending",
		},
		{
			Title:       "SOP Absensi dan Lembur",
			Description: "Aturan jam kerja, koreksi absensi, dan pengajuan lembur",
			FileType:    "txt",
			FileRef:     "uploads/sop-absensi-lembur.txt",
			Status:      "pending",
		},
	}

	if err := db.Create(&documents).Error; err != nil {
		color.Red("Failed to seed documents: %v", err)
		os.Exit(1)
	}
	color.Cyan("Seeded %d documents (status pending, run the pipeline to process them)", len(documents))
}
