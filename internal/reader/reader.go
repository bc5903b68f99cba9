// Package reader loads a source file and normalizes it to UTF-8, per
// spec.md §4.1. Two encodings are accepted: the legacy single-byte Greek
// codepage (Windows-1253 / ISO 8859-7's practical superset) and UTF-8
// itself. This mirrors the teacher's own file-to-UTF-8 normalization
// (go-dws's internal/interp/encoding.go, which reaches for
// golang.org/x/text to decode BOM-tagged UTF-16) — here the same library
// family decodes the legacy single-byte codepage instead.
package reader

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// headerKeyword is the Greek spelling of the "algorithm" header keyword
// spec.md §4.1 uses as the canonical-encoding detector.
const headerKeyword = "ΑΛΓΟΡΙΘΜΟΣ"

// greekCodepageLow and greekCodepageHigh bound the byte range Windows-1253
// reserves for Greek upper-case, lower-case, accented, and final-sigma
// letterforms. A single-byte buffer with any byte in this range is treated
// as legacy-codepage text rather than ASCII/UTF-8 (spec.md §4.1, step 2).
const (
	greekCodepageLow  = 0xB8
	greekCodepageHigh = 0xFE
)

// ReadFile loads path and returns its contents normalized to UTF-8.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot open %s: %w", path, err)
	}
	return Normalize(data)
}

// Normalize applies the three-step heuristic of spec.md §4.1 to raw bytes.
func Normalize(data []byte) (string, error) {
	// Step 1: already-canonical UTF-8 containing the multi-byte header
	// keyword needs no translation.
	if containsHeaderKeyword(data) {
		return string(data), nil
	}

	// Step 2: any byte in the Greek range of the single-byte codepage
	// means this buffer is legacy-encoded; decode it in full.
	if hasGreekCodepageByte(data) {
		decoded, _, err := transform.Bytes(charmap.Windows1253.NewDecoder(), data)
		if err != nil {
			return "", fmt.Errorf("failed to decode legacy Greek encoding: %w", err)
		}
		return string(decoded), nil
	}

	// Step 3: pass through unchanged (plain ASCII, or already UTF-8
	// without the header keyword present, e.g. a file with no ALGORITHM
	// line yet).
	return string(data), nil
}

func containsHeaderKeyword(data []byte) bool {
	return strings.Contains(strings.ToUpper(string(data)), headerKeyword)
}

func hasGreekCodepageByte(data []byte) bool {
	for _, b := range data {
		if b >= greekCodepageLow && b <= greekCodepageHigh {
			return true
		}
	}
	return false
}
