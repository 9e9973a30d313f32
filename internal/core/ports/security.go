package ports

import (
	"time"

	"github.com/grandstay/hotel-api/internal/core/domain"
)

// PasswordHasher produces and checks salted one-way password hashes.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches hash. Malformed hashes yield false.
	Verify(plaintext, hash string) bool
}

// TokenCodec signs and verifies bearer tokens.
type TokenCodec interface {
	// Issue signs a token for subject. A non-positive ttl selects the codec default.
	Issue(subject string, ttl time.Duration) (string, time.Time, error)
	// Decode returns domain.ErrInvalidToken for any signature, format or expiry failure.
	Decode(token string) (*domain.TokenClaims, error)
}
