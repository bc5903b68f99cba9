package reader

import (
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func TestNormalizePassthroughASCII(t *testing.T) {
	src := []byte("ALGORITHM T\nBEGIN\nPRINT(1)\nEND\n")
	out, err := Normalize(src)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out != string(src) {
		t.Fatalf("Normalize() = %q, want passthrough %q", out, src)
	}
}

func TestNormalizeAlreadyUTF8WithGreekHeader(t *testing.T) {
	src := []byte("ΑΛΓΟΡΙΘΜΟΣ Τ\nΑΡΧΗ\nΤΕΛΟΣ\n")
	out, err := Normalize(src)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out != string(src) {
		t.Fatalf("Normalize() changed already-canonical UTF-8 input")
	}
}

func TestNormalizeLegacyCodepageTranslatesToUTF8(t *testing.T) {
	utf8Src := "ΑΡΧΗ\nΓΡΑΨΕ(1)\nΤΕΛΟΣ\n"
	legacy, _, err := transform.Bytes(charmap.Windows1253.NewEncoder(), []byte(utf8Src))
	if err != nil {
		t.Fatalf("failed to build legacy-encoded fixture: %v", err)
	}

	out, err := Normalize(legacy)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if !strings.Contains(out, "ΑΡΧΗ") {
		t.Fatalf("Normalize() = %q, want decoded Greek text containing ΑΡΧΗ", out)
	}
}

// Encoding transparency (spec.md §8, property 6): running the same program
// via the legacy codepage or already-normalized UTF-8 must produce
// byte-identical results downstream, which starts with identical Normalize
// output.
func TestEncodingTransparency(t *testing.T) {
	utf8Src := "ΑΛΓΟΡΙΘΜΟΣ Τ\nΑΡΧΗ\nΓΡΑΨΕ(1)\nΤΕΛΟΣ\n"
	legacy, _, err := transform.Bytes(charmap.Windows1253.NewEncoder(), []byte(utf8Src))
	if err != nil {
		t.Fatalf("failed to build legacy-encoded fixture: %v", err)
	}

	fromUTF8, err := Normalize([]byte(utf8Src))
	if err != nil {
		t.Fatalf("Normalize(utf8) error = %v", err)
	}
	fromLegacy, err := Normalize(legacy)
	if err != nil {
		t.Fatalf("Normalize(legacy) error = %v", err)
	}
	if fromUTF8 != fromLegacy {
		t.Fatalf("Normalize output differs by source encoding:\nutf8:   %q\nlegacy: %q", fromUTF8, fromLegacy)
	}
}
