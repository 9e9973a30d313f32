package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/grandstay/hotel-api/internal/core/domain"
	"github.com/grandstay/hotel-api/internal/core/ports"
)

const tokenTypeBearer = "bearer"

// AuthService implements credential verification and token issuance.
type AuthService struct {
	creds   ports.CredentialRepository
	hasher  ports.PasswordHasher
	tokens  ports.TokenCodec
	metrics ports.Metrics
	log     zerolog.Logger
}

// NewAuthService returns an AuthService. m may be nil.
func NewAuthService(creds ports.CredentialRepository, hasher ports.PasswordHasher, tokens ports.TokenCodec, m ports.Metrics, log zerolog.Logger) *AuthService {
	if m == nil {
		m = noopMetrics{}
	}
	return &AuthService{creds: creds, hasher: hasher, tokens: tokens, metrics: m, log: log}
}

// Authenticate returns the stored credential when password matches.
// Unknown users and wrong passwords are both reported as ErrNotAuthenticated.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.Credential, error) {
	if username == "" || password == "" {
		return nil, domain.ErrNotAuthenticated
	}

	cred, err := s.creds.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.Debug().Str("username", username).Msg("login for unknown user")
			return nil, domain.ErrNotAuthenticated
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if !s.hasher.Verify(password, cred.PasswordHash) {
		s.log.Debug().Str("username", username).Msg("password mismatch")
		return nil, domain.ErrNotAuthenticated
	}
	return cred, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.TokenResult, error) {
	cred, err := s.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			s.metrics.LoginAttempt("rejected")
		}
		return nil, err
	}

	token, expires, err := s.tokens.Issue(cred.Username, 0)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	s.metrics.LoginAttempt("success")

	return &ports.TokenResult{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresAt:   expires,
	}, nil
}

// CurrentSubject returns the subject of a valid token.
func (s *AuthService) CurrentSubject(_ context.Context, token string) (string, error) {
	if token == "" {
		return "", domain.ErrInvalidToken
	}
	claims, err := s.tokens.Decode(token)
	if err != nil {
		return "", domain.ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}

// AddCredential hashes password and stores a new credential for username.
func (s *AuthService) AddCredential(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	cred := &domain.Credential{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.creds.Create(ctx, cred); err != nil {
		return err
	}

	s.log.Info().Str("username", username).Msg("credential added")
	return nil
}
