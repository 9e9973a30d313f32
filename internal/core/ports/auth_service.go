package ports

import (
	"context"
	"time"

	"github.com/grandstay/hotel-api/internal/core/domain"
)

// TokenResult is returned by a successful login.
type TokenResult struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (*domain.Credential, error)
	Login(ctx context.Context, username, password string) (*TokenResult, error)
	CurrentSubject(ctx context.Context, token string) (string, error)
	AddCredential(ctx context.Context, username, password string) error
}
