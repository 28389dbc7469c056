package knowledge

import (
	"regexp"
	"strings"
)

var blankLines = regexp.MustCompile(`\n\s*\n`)

const fallbackChunkSize = 500

// splitSections breaks extracted text into candidate chunks at blank lines.
// Chunks shorter than minSize are treated as noise and dropped. When the
// text carries no paragraph structure at all, it falls back to fixed-size
// character chunks so a single wall of text still yields entries.
func splitSections(text string, minSize int) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	var sections []string
	for _, part := range blankLines.Split(trimmed, -1) {
		part = strings.TrimSpace(part)
		if len(part) < minSize {
			continue
		}
		sections = append(sections, part)
	}
	if len(sections) > 0 {
		return sections
	}

	// No usable paragraphs; chunk by size instead.
	for _, part := range splitFixed(trimmed, fallbackChunkSize) {
		part = strings.TrimSpace(part)
		if len(part) < minSize {
			continue
		}
		sections = append(sections, part)
	}
	return sections
}

// splitFixed cuts text into consecutive runs of at most size runes.
func splitFixed(text string, size int) []string {
	runes := []rune(text)
	if len(runes) <= size {
		return []string{text}
	}

	var chunks []string
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

// sectionTitle derives a display title from the first line of a chunk.
func sectionTitle(chunk string) string {
	line := chunk
	if idx := strings.IndexByte(chunk, '\n'); idx >= 0 {
		line = chunk[:idx]
	}
	line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ":"))

	runes := []rune(line)
	if len(runes) > 80 {
		return string(runes[:77]) + "..."
	}
	return line
}
