package auth

import (
	"net/http"
	"strings"

	"github.com/taskhub/todo-api/internal/core/domain"
)

// CookieName is the HTTP-only cookie carrying the token in cookie mode.
const CookieName = "access_token"

// TokenExtractor pulls the raw token out of a request. The second return
// is false when the request carries no token at all.
type TokenExtractor func(r *http.Request) (string, bool)

// BearerToken extracts the token from an "Authorization: Bearer ..." header.
func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

// CookieToken extracts the token from the access_token cookie.
func CookieToken(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// Resolver turns an incoming request into a Result using one configured
// extraction strategy. Resolution is synchronous and side-effect-free: it
// never refreshes or rewrites the token.
type Resolver struct {
	codec   *Codec
	extract TokenExtractor
}

// NewResolver creates a Resolver validating tokens with codec and locating
// them with extract.
func NewResolver(codec *Codec, extract TokenExtractor) *Resolver {
	return &Resolver{codec: codec, extract: extract}
}

// Resolve extracts and validates the request's token. A missing token and
// an invalid one both come back as Unauthenticated(domain.ErrTokenInvalid).
func (res *Resolver) Resolve(r *http.Request) Result {
	raw, ok := res.extract(r)
	if !ok {
		return Unauthenticated(domain.ErrTokenInvalid)
	}
	identity, err := res.codec.Decode(raw)
	if err != nil {
		return Unauthenticated(err)
	}
	return Authenticated(identity)
}
