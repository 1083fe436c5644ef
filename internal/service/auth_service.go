package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"brandscope/api/internal/config"
	"brandscope/api/internal/metrics"
	"brandscope/api/internal/models"
	"brandscope/api/internal/repository"
	"brandscope/api/internal/security"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

type AuthService struct {
	users    *repository.UserRepository
	sessions *repository.SessionRepository
	verifier security.IdentityVerifier
	cfg      *config.AppConfig
	stats    *metrics.Collector
	log      zerolog.Logger
}

func NewAuthService(
	users *repository.UserRepository,
	sessions *repository.SessionRepository,
	verifier security.IdentityVerifier,
	cfg *config.AppConfig,
	stats *metrics.Collector,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		verifier: verifier,
		cfg:      cfg,
		stats:    stats,
		log:      log,
	}
}

type SignupInput struct {
	Email    string
	Password string
	FullName string
}

type AuthResult struct {
	Token string
	User  models.User
}

// Signup creates an account and an initial session. Email matching is exact
// and case-sensitive.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (AuthResult, error) {
	digest, err := security.HashPassword(input.Password, s.cfg.Security.PasswordDigest)
	if err != nil {
		return AuthResult{}, err
	}

	user, err := s.users.Create(ctx, input.Email, digest, input.FullName)
	if err != nil {
		return AuthResult{}, err
	}

	s.stats.RecordSignup()
	s.log.Info().Str("user_id", user.ID).Msg("user signed up")

	return AuthResult{Token: s.sessions.Issue(ctx, user.ID), User: user}, nil
}

type LoginInput struct {
	Email       string
	Password    string
	GoogleToken string
}

// Login authenticates via Google when a googleToken is present, otherwise by
// password. Unknown email, wrong password and a digest-less account all
// collapse into ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (AuthResult, error) {
	if input.GoogleToken != "" {
		return s.loginWithGoogle(ctx, input.GoogleToken)
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		s.stats.RecordLoginFailure()
		return AuthResult{}, ErrInvalidCredentials
	}

	if !user.HasPassword() || !security.VerifyPassword(input.Password, user.PasswordDigest) {
		s.stats.RecordLoginFailure()
		return AuthResult{}, ErrInvalidCredentials
	}

	s.stats.RecordLoginSuccess("password")
	return AuthResult{Token: s.sessions.Issue(ctx, user.ID), User: user}, nil
}

func (s *AuthService) loginWithGoogle(ctx context.Context, rawToken string) (AuthResult, error) {
	verifyCtx, cancel := context.WithTimeout(ctx, s.cfg.Google.VerifyTimeout)
	defer cancel()

	claims, err := s.verifier.Verify(verifyCtx, rawToken)
	if err != nil {
		// Root cause stays in the log; the caller only learns the login failed.
		s.log.Warn().Err(err).Msg("google token verification failed")
		s.stats.RecordLoginFailure()
		return AuthResult{}, ErrInvalidCredentials
	}

	user, err := s.users.GetOrCreateByEmail(ctx, claims.Email, claims.Name)
	if err != nil {
		return AuthResult{}, err
	}

	s.stats.RecordLoginSuccess("google")
	return AuthResult{Token: s.sessions.Issue(ctx, user.ID), User: user}, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Revoke(ctx, token); err != nil {
		return ErrInvalidToken
	}
	return nil
}
