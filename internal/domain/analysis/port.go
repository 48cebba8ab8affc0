package analysis

// DocumentInspector reads structural facts about a PDF payload.
type DocumentInspector interface {
	PageCount(data []byte) (int, error)
}
