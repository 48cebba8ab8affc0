package analysis

import (
	"strings"
	"testing"
)

func TestIsSupportedMIME(t *testing.T) {
	cases := map[string]bool{
		"image/png":         true,
		"image/jpeg":        true,
		"IMAGE/WEBP":        true,
		"application/pdf":   true,
		" application/pdf ": true,
		"text/plain":        false,
		"application/json":  false,
		"image/":            false,
		"":                  false,
		"application/pdfx":  false,
		"video/mp4":         false,
	}
	for in, want := range cases {
		if got := IsSupportedMIME(in); got != want {
			t.Errorf("IsSupportedMIME(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSectionHeadingsDoNotOverlap(t *testing.T) {
	for i, a := range SectionHeadings {
		for j, b := range SectionHeadings {
			if i == j {
				continue
			}
			if len(a) <= len(b) && strings.Contains(b, a) {
				t.Errorf("heading %q is contained in %q", a, b)
			}
		}
	}
}
