package viewer

import (
	"context"
	"sync"

	"github.com/bryanwahyu/medscan/internal/domain/analysis"
)

// Analyzer performs the network call for a selected file.
type Analyzer interface {
	Analyze(ctx context.Context, f File) (analysis.Result, error)
}

// Viewer holds one session and serialises access to it. At most one
// analysis is in flight at a time.
type Viewer struct {
	mu       sync.Mutex
	state    State
	analyzer Analyzer
}

func New(a Analyzer) *Viewer {
	return &Viewer{state: NewState(), analyzer: a}
}

// State returns a snapshot of the session.
func (v *Viewer) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *Viewer) apply(fn func(State) State) State {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = fn(v.state)
	return v.state
}

func (v *Viewer) SelectFile(f File) State {
	return v.apply(func(s State) State { return SelectFile(s, f) })
}

func (v *Viewer) ClearSelection() State { return v.apply(ClearSelection) }

func (v *Viewer) StartNew() State { return v.apply(StartNew) }

func (v *Viewer) Navigate(dir Direction) State {
	return v.apply(func(s State) State { return Navigate(s, dir) })
}

// RequestAnalysis sends the selected file and records the outcome. The
// lock is not held during the call.
func (v *Viewer) RequestAnalysis(ctx context.Context) (State, error) {
	v.mu.Lock()
	next, err := BeginAnalysis(v.state)
	if err != nil {
		v.mu.Unlock()
		return next, err
	}
	v.state = next
	file := *next.File
	v.mu.Unlock()

	res, err := v.analyzer.Analyze(ctx, file)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.state = FailAnalysis(v.state, err)
		return v.state, err
	}
	v.state = CompleteAnalysis(v.state, res)
	return v.state, nil
}
