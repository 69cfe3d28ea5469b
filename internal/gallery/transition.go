package gallery

import "time"

// Phase is a step of the modal open/close animation.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseOpening
	PhaseOpen
	PhaseClosing
)

func (p Phase) String() string {
	switch p {
	case PhaseClosed:
		return "closed"
	case PhaseOpening:
		return "opening"
	case PhaseOpen:
		return "open"
	case PhaseClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// DefaultDuration is the length of each animated phase.
const DefaultDuration = 300 * time.Millisecond

// Transition sequences closed -> opening -> open -> closing -> closed.
// Opening and closing each last Duration; callers drive time explicitly.
type Transition struct {
	Duration time.Duration

	phase Phase
	since time.Time
}

func NewTransition() *Transition {
	return &Transition{Duration: DefaultDuration}
}

func (t *Transition) Phase() Phase { return t.phase }

// Open starts the opening animation. Opening an already open or opening
// modal does nothing; opening while closing reverses direction.
func (t *Transition) Open(now time.Time) {
	switch t.phase {
	case PhaseClosed, PhaseClosing:
		t.phase = PhaseOpening
		t.since = now
	}
}

// Close starts the closing animation from open or opening.
func (t *Transition) Close(now time.Time) {
	switch t.phase {
	case PhaseOpen, PhaseOpening:
		t.phase = PhaseClosing
		t.since = now
	}
}

// Advance completes the current animated phase once Duration has elapsed
// and reports whether the phase changed.
func (t *Transition) Advance(now time.Time) bool {
	if now.Sub(t.since) < t.Duration {
		return false
	}
	switch t.phase {
	case PhaseOpening:
		t.phase = PhaseOpen
	case PhaseClosing:
		t.phase = PhaseClosed
	default:
		return false
	}
	t.since = now
	return true
}

// ScrollLocked is true from the start of opening until closing finishes.
func (t *Transition) ScrollLocked() bool {
	return t.phase != PhaseClosed
}

// Visible reports whether the modal content should be shown at full opacity.
func (t *Transition) Visible() bool {
	return t.phase == PhaseOpen
}
