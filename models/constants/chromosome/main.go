package chromosome

import (
	"strings"
)

// Normalize strips a leading "chr" so that contigs loaded
// from "chr1"-style files match plain "1" chrom filters
func Normalize(text string) string {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) > 3 && strings.EqualFold(trimmed[:3], "chr") {
		trimmed = trimmed[3:]
	}
	if strings.EqualFold(trimmed, "m") {
		return "MT"
	}
	return strings.ToUpper(trimmed)
}
