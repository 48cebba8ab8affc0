package middleware

import (
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// Input validation and sanitization utilities for uploads

const maxFilenameLen = 255

// DetectMIMEType returns the media type declared by the multipart part
// header, without parameters. When the header is missing or generic the
// type is sniffed from content.
func DetectMIMEType(header string, data []byte) string {
	if mt, _, err := mime.ParseMediaType(header); err == nil && mt != "application/octet-stream" {
		return strings.ToLower(mt)
	}
	if len(data) == 0 {
		return ""
	}
	sniffed, _, err := mime.ParseMediaType(http.DetectContentType(data))
	if err != nil {
		return ""
	}
	return sniffed
}

// SanitizeFilename strips any directory part and control characters from a
// client supplied file name so it is safe to log.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = SanitizeString(filepath.Base(name))
	if name == "." || name == "/" {
		return ""
	}
	if len(name) > maxFilenameLen {
		name = name[:maxFilenameLen]
	}
	return name
}

// SanitizeString removes dangerous characters from strings
func SanitizeString(input string) string {
	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	// Remove control characters
	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}
