package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskhub/todo-api/internal/core/domain"
)

// Codec signs and verifies the stateless identity tokens. Claims are
// {"sub": username, "id": user id, "exp": unix seconds}, signed HS256 with
// a single symmetric secret. There is no server-side session state and no
// revocation: a token stays valid until it expires.
type Codec struct {
	secret []byte
	now    func() time.Time
}

// NewCodec creates a Codec signing with secret.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret), now: time.Now}
}

// Issue builds and signs a token for username/userID expiring ttl from now.
func (c *Codec) Issue(username string, userID int64, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"id":  userID,
		"exp": c.now().Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Decode verifies token and extracts the identity it asserts. Every failure
// mode collapses to domain.ErrTokenInvalid: bad signature, an algorithm
// other than HS256, unparseable claims, a missing sub or id claim, or a
// token at or past its expiry instant.
func (c *Codec) Decode(token string) (Identity, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !parsed.Valid {
		return Identity{}, domain.ErrTokenInvalid
	}

	sub, _ := claims["sub"].(string)
	// JSON numbers decode as float64.
	id, ok := claims["id"].(float64)
	if sub == "" || !ok {
		return Identity{}, domain.ErrTokenInvalid
	}

	return Identity{Username: sub, UserID: int64(id)}, nil
}
