package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSections(t *testing.T) {
	policy := strings.Repeat("Kebijakan cuti tahunan berlaku untuk semua karyawan tetap. ", 3)
	procedure := strings.Repeat("Pengajuan cuti dilakukan melalui portal HR paling lambat tiga hari sebelumnya. ", 3)

	tests := []struct {
		name    string
		text    string
		minSize int
		want    int
	}{
		{
			name:    "empty text yields nothing",
			text:    "   \n\n  ",
			minSize: 80,
			want:    0,
		},
		{
			name:    "paragraphs split at blank lines",
			text:    policy + "\n\n" + procedure,
			minSize: 80,
			want:    2,
		},
		{
			name:    "short fragments are dropped",
			text:    policy + "\n\nok\n\n" + procedure,
			minSize: 80,
			want:    2,
		},
		{
			name:    "single long paragraph stays whole",
			text:    strings.Repeat("kebijakan lembur dan kompensasi karyawan ", 40),
			minSize: 80,
			want:    1,
		},
		{
			name:    "only short fragments fall back to fixed chunks",
			text:    strings.TrimSpace(strings.Repeat("cuti tahunan karyawan\n\n", 30)),
			minSize: 80,
			want:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := splitSections(tt.text, tt.minSize)
			assert.Len(t, sections, tt.want)
			for _, section := range sections {
				assert.GreaterOrEqual(t, len(section), tt.minSize)
			}
		})
	}
}

func TestSplitSectionsAllFragmentsTooShort(t *testing.T) {
	sections := splitSections("hi\n\nok\n\nno", 80)
	assert.Empty(t, sections)
}

func TestSectionTitle(t *testing.T) {
	tests := []struct {
		name  string
		chunk string
		want  string
	}{
		{
			name:  "first line becomes title",
			chunk: "Kebijakan Cuti\nIsi kebijakan menyusul di bawah.",
			want:  "Kebijakan Cuti",
		},
		{
			name:  "trailing colon stripped",
			chunk: "Langkah pengajuan:\n1. Buka portal",
			want:  "Langkah pengajuan",
		},
		{
			name:  "long first line truncated",
			chunk: strings.Repeat("a", 120) + "\nbody",
			want:  strings.Repeat("a", 77) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, sectionTitle(tt.chunk))
		})
	}
}

func TestSplitFixed(t *testing.T) {
	t.Run("short text stays whole", func(t *testing.T) {
		require.Equal(t, []string{"cuti tahunan"}, splitFixed("cuti tahunan", 500))
	})

	t.Run("long text cut at the chunk size", func(t *testing.T) {
		chunks := splitFixed(strings.Repeat("x", 1100), 500)
		require.Len(t, chunks, 3)
		require.Len(t, chunks[0], 500)
		require.Len(t, chunks[1], 500)
		require.Len(t, chunks[2], 100)
	})

	t.Run("multibyte runes are never split", func(t *testing.T) {
		text := strings.Repeat("é", 10)
		chunks := splitFixed(text, 4)
		require.Equal(t, []string{"éééé", "éééé", "éé"}, chunks)
	})
}
