package service

// Outcome is the result of a caller identity check. Unverified is the only
// non-terminal state, and Verify never returns it.
type Outcome int

const (
	Unverified Outcome = iota
	Authorized
	Denied
)

// String returns the lowercase name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Authorized:
		return "authorized"
	case Denied:
		return "denied"
	default:
		return "unverified"
	}
}
