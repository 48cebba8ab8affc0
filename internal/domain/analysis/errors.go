package analysis

import "errors"

var (
	// ErrNoFile means the request carried no file.
	ErrNoFile = errors.New("no file uploaded")
	// ErrUnsupportedType means the MIME type is neither image/* nor application/pdf.
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrFileTooLarge means the upload exceeded the configured limit.
	ErrFileTooLarge = errors.New("file too large")
)
