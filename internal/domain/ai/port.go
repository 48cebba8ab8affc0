package ai

import (
	"context"
	"encoding/base64"
)

// Part is one unit of input for the generative service: either plain
// instruction text or an inline payload tagged with its MIME type.
type Part struct {
	Text     string
	MIMEType string
	Data     string // base64, set only for inline parts
}

// TextPart wraps instruction text.
func TextPart(text string) Part {
	return Part{Text: text}
}

// InlinePart base64-encodes raw bytes and tags them with mimeType.
func InlinePart(mimeType string, raw []byte) Part {
	return Part{MIMEType: mimeType, Data: base64.StdEncoding.EncodeToString(raw)}
}

// IsInline reports whether the part carries a binary payload.
func (p Part) IsInline() bool { return p.MIMEType != "" }

// DataURL renders an inline part as a data: URL.
func (p Part) DataURL() string {
	return "data:" + p.MIMEType + ";base64," + p.Data
}

// Client is the port for the external generative service. Parts are sent
// in the given order.
type Client interface {
	Generate(ctx context.Context, parts []Part) (string, error)
}
