package sec

const (
	// ErrUnauthenticated is returned when an operation requires a session and
	// the request has none.
	ErrUnauthenticated Error = "not logged in"
	// ErrNotOwner is returned when the authenticated user does not own the
	// resource being modified.
	ErrNotOwner Error = "not the owner"
)

// Error is an error type returned by the sec package.
type Error string

// Error satisfies [error].
func (e Error) Error() string { return string(e) }

// Decision is the outcome of an ownership check.
type Decision bool

// Decisions.
const (
	Denied  Decision = false
	Allowed Decision = true
)

// Authorize allows id to modify a resource iff id is authenticated and owns
// it. It has no side effects.
func Authorize(id Identity, ownerID uint64) Decision {
	return Decision(id.Authenticated() && id.UserID == ownerID)
}

// CheckOwner is [Authorize] expressed as an error: nil when allowed,
// [ErrUnauthenticated] for anonymous identities and [ErrNotOwner] otherwise.
func CheckOwner(id Identity, ownerID uint64) error {
	switch {
	case !id.Authenticated():
		return ErrUnauthenticated
	case Authorize(id, ownerID) == Denied:
		return ErrNotOwner
	default:
		return nil
	}
}
