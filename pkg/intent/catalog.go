package intent

// Intent names form a closed catalog. Unknown is the sentinel for "no rule
// matched".
const (
	LeaveBalance      = "leave_balance"
	PayrollInquiry    = "payroll_inquiry"
	AttendanceCheck   = "attendance_check"
	EmployeeInfo      = "employee_info"
	EmployeeList      = "employee_list"
	HiringProcess     = "hiring_process"
	ApplicantCount    = "applicant_count"
	PerformanceReview = "performance_review"
	CompanyPolicy     = "company_policy"
	TrainingSchedule  = "training_schedule"
	Greeting          = "greeting"
	Help              = "help"
	Unknown           = "unknown"
)

type Intent struct {
	Name     string
	Keywords []string
}

// Catalog returns the intents in matching order. Order is part of the
// contract: more specific intents come before general ones, so declaring a
// new intent means placing it, not just appending it.
func Catalog() []Intent {
	return []Intent{
		{LeaveBalance, []string{
			"sisa cuti", "jatah cuti", "cuti saya", "berapa cuti", "saldo cuti",
			"leave balance", "sisa liburan", "annual leave", "remaining leave",
		}},
		{ApplicantCount, []string{
			"jumlah pelamar", "berapa pelamar", "total pelamar", "applicant count",
			"how many applicants", "banyak pelamar",
		}},
		{HiringProcess, []string{
			"rekrutmen", "proses hiring", "lowongan", "recruitment", "lamaran",
			"vacancy", "hiring process", "melamar",
		}},
		{PayrollInquiry, []string{
			"gaji", "slip gaji", "payroll", "salary", "penggajian", "tunjangan",
			"thr", "payslip", "upah",
		}},
		{AttendanceCheck, []string{
			"absensi", "kehadiran", "attendance", "jam kerja", "check in",
			"clock in", "terlambat", "jam masuk", "working hours",
		}},
		{PerformanceReview, []string{
			"penilaian kinerja", "performance review", "appraisal",
			"evaluasi kinerja", "review kinerja", "kpi saya",
		}},
		{EmployeeList, []string{
			"daftar karyawan", "list karyawan", "employee list", "semua karyawan",
			"seluruh karyawan",
		}},
		{EmployeeInfo, []string{
			"data karyawan", "profil saya", "informasi karyawan", "employee info",
			"my profile", "data diri",
		}},
		{TrainingSchedule, []string{
			"jadwal pelatihan", "jadwal training", "pelatihan", "training",
			"workshop", "course schedule",
		}},
		{CompanyPolicy, []string{
			"kebijakan", "peraturan perusahaan", "peraturan", "policy", "aturan",
			"regulasi", "sop", "company rule",
		}},
		{Greeting, []string{
			"halo", "hello", "hai", "selamat pagi", "selamat siang",
			"selamat sore", "selamat malam", "good morning", "good afternoon",
			"hey", "assalamualaikum",
		}},
		{Help, []string{
			"help", "bantuan", "tolong", "menu", "apa yang bisa", "bisa apa",
			"what can you do",
		}},
	}
}

// Names returns the catalog's intent names in order, without the sentinel.
func Names() []string {
	catalog := Catalog()
	names := make([]string, len(catalog))
	for i, it := range catalog {
		names[i] = it.Name
	}
	return names
}
