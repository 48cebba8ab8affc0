package analysis

import "strings"

const MIMETypePDF = "application/pdf"

// IsSupportedMIME accepts any image/* type and application/pdf.
func IsSupportedMIME(mimeType string) bool {
	m := strings.ToLower(strings.TrimSpace(mimeType))
	if m == MIMETypePDF {
		return true
	}
	return strings.HasPrefix(m, "image/") && len(m) > len("image/")
}
