package viewer

import (
	"errors"

	"github.com/google/uuid"

	"github.com/bryanwahyu/medscan/internal/domain/ai"
	"github.com/bryanwahyu/medscan/internal/domain/analysis"
)

// Mode is the observable phase of a viewer session.
type Mode int

const (
	ModeEmpty Mode = iota
	ModeReady
	ModeAnalyzing
	ModeViewing
)

func (m Mode) String() string {
	switch m {
	case ModeEmpty:
		return "empty"
	case ModeReady:
		return "ready"
	case ModeAnalyzing:
		return "analyzing"
	case ModeViewing:
		return "viewing"
	default:
		return "unknown"
	}
}

// Direction is a history step.
type Direction int

const (
	Previous Direction = -1
	Next     Direction = 1
)

var (
	ErrNoFileSelected = errors.New("please select an image first")
	ErrBusy           = errors.New("an analysis is already in progress")
)

// File is a selected upload.
type File struct {
	Name     string
	MIMEType string
	Content  []byte
}

// Entry is one completed analysis kept for recall. Entries are never
// modified once appended.
type Entry struct {
	ID        uuid.UUID
	Name      string
	Preview   string
	Analysis  string
	Timestamp string
}

// State is the whole viewer session. Transitions below take a State and
// return the next one; the History backing array is never written in place.
type State struct {
	Mode    Mode
	File    *File
	Preview string
	Error   string
	History []Entry
	// Index is the displayed entry, -1 while History is empty.
	Index   int
	ShowNav bool
}

// NewState returns an empty session.
func NewState() State {
	return State{Mode: ModeEmpty, Index: -1}
}

// PreviewURL encodes the file as a data URL for local display.
func PreviewURL(f File) string {
	return ai.InlinePart(f.MIMEType, f.Content).DataURL()
}

// SelectFile stores f and its preview and hides the previous result.
// Ignored while a request is in flight.
func SelectFile(s State, f File) State {
	if s.Mode == ModeAnalyzing {
		return s
	}
	s.File = &f
	s.Preview = PreviewURL(f)
	s.Error = ""
	s.Mode = ModeReady
	s.ShowNav = false
	return s
}

// ClearSelection drops the selected file.
func ClearSelection(s State) State {
	if s.Mode == ModeAnalyzing {
		return s
	}
	s.File = nil
	s.Preview = ""
	s.Error = ""
	s.Mode = ModeEmpty
	s.ShowNav = false
	return s
}

// BeginAnalysis moves a ready session into the in-flight phase.
func BeginAnalysis(s State) (State, error) {
	switch {
	case s.Mode == ModeAnalyzing:
		return s, ErrBusy
	case s.Mode != ModeReady || s.File == nil:
		return s, ErrNoFileSelected
	}
	s.Mode = ModeAnalyzing
	s.Error = ""
	return s, nil
}

// CompleteAnalysis records res. Entries after the current position are
// dropped before the new one is appended.
func CompleteAnalysis(s State, res analysis.Result) State {
	if s.Mode != ModeAnalyzing || s.File == nil {
		return s
	}
	keep := s.Index + 1
	if keep < 0 {
		keep = 0
	}
	if keep > len(s.History) {
		keep = len(s.History)
	}

	history := make([]Entry, keep, keep+1)
	copy(history, s.History[:keep])
	history = append(history, Entry{
		ID:        uuid.New(),
		Name:      s.File.Name,
		Preview:   s.Preview,
		Analysis:  res.Analysis,
		Timestamp: res.AnalysisDateTime,
	})

	s.History = history
	s.Index = len(history) - 1
	s.Mode = ModeViewing
	s.Error = ""
	s.ShowNav = true
	return s
}

// FailAnalysis returns to ready with the file still selected.
func FailAnalysis(s State, err error) State {
	if s.Mode != ModeAnalyzing {
		return s
	}
	s.Mode = ModeReady
	s.Error = "Error: " + err.Error()
	return s
}

// Navigate moves one entry in dir, clamped to the history bounds.
func Navigate(s State, dir Direction) State {
	if s.Mode != ModeViewing || len(s.History) == 0 {
		return s
	}
	i := s.Index + int(dir)
	if i < 0 {
		i = 0
	}
	if i > len(s.History)-1 {
		i = len(s.History) - 1
	}
	s.Index = i
	return s
}

func CanPrevious(s State) bool {
	return s.Mode == ModeViewing && s.Index > 0
}

func CanNext(s State) bool {
	return s.Mode == ModeViewing && s.Index >= 0 && s.Index < len(s.History)-1
}

// StartNew leaves the result view for a fresh selection. History is kept.
func StartNew(s State) State {
	if s.Mode != ModeViewing {
		return s
	}
	s.File = nil
	s.Preview = ""
	s.Error = ""
	s.Mode = ModeEmpty
	s.ShowNav = false
	return s
}

// Current returns the displayed entry while viewing.
func Current(s State) (Entry, bool) {
	if s.Mode != ModeViewing || s.Index < 0 || s.Index >= len(s.History) {
		return Entry{}, false
	}
	return s.History[s.Index], true
}
