package analysis

// UploadedFile is the transient upload owned by a single request.
type UploadedFile struct {
	Name     string
	MIMEType string
	Content  []byte
	Size     int64
}

// Empty reports whether no file content was received.
func (f UploadedFile) Empty() bool { return len(f.Content) == 0 }

// Result is what the relay hands back to the caller.
type Result struct {
	Analysis         string `json:"analysis"`
	AnalysisDateTime string `json:"analysisDateTime"`
}
