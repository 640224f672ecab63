package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt digest of password. The cost factor
// is clamped to bcrypt's supported range; zero selects the default.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password re-hashes to digest. A malformed
// digest fails closed: the answer is false, never an error, so callers
// cannot leak which part of the comparison failed.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
