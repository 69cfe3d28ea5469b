package dashboard

// State is the admin session's position in the edit lifecycle.
type State int

const (
	StateUnauthenticated State = iota
	StateAuthenticating
	StateIdle
	StateEditing
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticating:
		return "authenticating"
	case StateIdle:
		return "idle"
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// Authenticated reports whether a token is held in this state.
func (s State) Authenticated() bool {
	return s == StateIdle || s == StateEditing || s == StateSubmitting
}
