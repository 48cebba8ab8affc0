package pdf

import (
	"strconv"
	"strings"
	"testing"
)

// onePagePDF builds a minimal single-page document with a valid xref table.
func onePagePDF() []byte {
	stream := "BT\n/F1 12 Tf\n72 720 Td\n(Chest X-ray) Tj\nET"

	var b strings.Builder
	b.WriteString("%PDF-1.4\n")
	offsets := make([]int, 6)

	offsets[1] = b.Len()
	b.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	offsets[2] = b.Len()
	b.WriteString("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	offsets[3] = b.Len()
	b.WriteString("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>\nendobj\n")
	offsets[4] = b.Len()
	b.WriteString("4 0 obj\n<< /Length " + strconv.Itoa(len(stream)) + " >>\nstream\n" + stream + "\nendstream\nendobj\n")
	offsets[5] = b.Len()
	b.WriteString("5 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n")

	xref := b.Len()
	b.WriteString("xref\n0 6\n0000000000 65535 f \n")
	for i := 1; i <= 5; i++ {
		off := strconv.Itoa(offsets[i])
		b.WriteString(strings.Repeat("0", 10-len(off)) + off + " 00000 n \n")
	}
	b.WriteString("trailer\n<< /Size 6 /Root 1 0 R >>\nstartxref\n" + strconv.Itoa(xref) + "\n%%EOF\n")
	return []byte(b.String())
}

func TestPageCount(t *testing.T) {
	n, err := NewInspector().PageCount(onePagePDF())
	if err != nil {
		t.Fatalf("page count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 page, got %d", n)
	}
}

func TestPageCount_Garbage(t *testing.T) {
	if _, err := NewInspector().PageCount([]byte("definitely not a pdf")); err == nil {
		t.Fatal("expected an error for non-pdf input")
	}
}
