package ports

import (
	"context"

	"github.com/grandstay/hotel-api/internal/core/domain"
)

// CredentialRepository resolves usernames to stored password hashes.
type CredentialRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Credential, error)
	Create(ctx context.Context, cred *domain.Credential) error
}
