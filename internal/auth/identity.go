// Package auth holds the authentication primitives: password hashing, the
// token codec, and request identity resolution.
package auth

// Identity is the {username, id} pair extracted from a validated token.
// It lives for the duration of a single request and is never persisted.
type Identity struct {
	Username string `json:"username"`
	UserID   int64  `json:"id"`
}

// Result is the outcome of identity resolution: either an authenticated
// identity or an unauthenticated reason. The resolver never decides what
// to do about an unauthenticated request; that policy belongs to the
// transport middleware.
type Result struct {
	identity Identity
	reason   error
}

// Authenticated wraps a resolved identity.
func Authenticated(id Identity) Result {
	return Result{identity: id}
}

// Unauthenticated wraps the reason resolution failed.
func Unauthenticated(reason error) Result {
	return Result{reason: reason}
}

// Identity returns the resolved identity and whether resolution succeeded.
func (r Result) Identity() (Identity, bool) {
	return r.identity, r.reason == nil
}

// Reason returns why resolution failed, or nil for an authenticated result.
func (r Result) Reason() error {
	return r.reason
}
