package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandscope/api/internal/config"
	"brandscope/api/internal/metrics"
	"brandscope/api/internal/repository"
	"brandscope/api/internal/security"
)

type fakeVerifier struct {
	claims security.IdentityClaims
	err    error
}

func (f *fakeVerifier) Verify(ctx context.Context, rawToken string) (security.IdentityClaims, error) {
	return f.claims, f.err
}

func newTestService(verifier security.IdentityVerifier) (*AuthService, *repository.UserRepository, *repository.SessionRepository) {
	cfg := &config.AppConfig{
		Environment: "test",
		Security:    config.SecurityConfig{PasswordDigest: security.DigestSHA256},
		Google:      config.GoogleConfig{VerifyTimeout: time.Second},
	}
	users := repository.NewUserRepository()
	sessions := repository.NewSessionRepository()
	svc := NewAuthService(users, sessions, verifier, cfg, metrics.NewCollector(), zerolog.Nop())
	return svc, users, sessions
}

func TestAuthService_SignupIssuesResolvableToken(t *testing.T) {
	ctx := context.Background()
	svc, _, sessions := newTestService(nil)

	result, err := svc.Signup(ctx, SignupInput{Email: "a@x.com", Password: "pw", FullName: "Alice"})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	userID, err := sessions.Resolve(ctx, result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, userID)
}

func TestAuthService_SignupDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(nil)

	_, err := svc.Signup(ctx, SignupInput{Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, SignupInput{Email: "a@x.com", Password: "other"})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestAuthService_PasswordLogin(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(nil)

	signedUp, err := svc.Signup(ctx, SignupInput{Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)

	result, err := svc.Login(ctx, LoginInput{Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, signedUp.User.ID, result.User.ID)
	assert.NotEqual(t, signedUp.Token, result.Token, "each login issues a fresh session")

	_, err = svc.Login(ctx, LoginInput{Email: "a@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, LoginInput{Email: "nobody@x.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_PasswordLoginAgainstGoogleAccount(t *testing.T) {
	ctx := context.Background()
	verifier := &fakeVerifier{claims: security.IdentityClaims{Email: "g@x.com", Name: "G"}}
	svc, _, _ := newTestService(verifier)

	_, err := svc.Login(ctx, LoginInput{GoogleToken: "raw"})
	require.NoError(t, err)

	// The account has no digest on file; any password must fail the same way
	// a wrong password does.
	_, err = svc.Login(ctx, LoginInput{Email: "g@x.com", Password: ""})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_GoogleLoginCreatesThenReuses(t *testing.T) {
	ctx := context.Background()
	verifier := &fakeVerifier{claims: security.IdentityClaims{Email: "g@x.com", Name: "Google User"}}
	svc, users, _ := newTestService(verifier)

	first, err := svc.Login(ctx, LoginInput{GoogleToken: "raw"})
	require.NoError(t, err)
	assert.Equal(t, "g@x.com", first.User.Email)
	assert.Equal(t, "Google User", first.User.FullName)

	second, err := svc.Login(ctx, LoginInput{GoogleToken: "raw"})
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, second.User.ID)
	assert.Equal(t, 1, users.Count(ctx))
}

func TestAuthService_GoogleVerifierFailureIsNormalized(t *testing.T) {
	ctx := context.Background()
	verifier := &fakeVerifier{err: errors.New("signature mismatch: key rotated")}
	svc, users, _ := newTestService(verifier)

	_, err := svc.Login(ctx, LoginInput{GoogleToken: "raw"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Zero(t, users.Count(ctx))
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	svc, _, sessions := newTestService(nil)

	result, err := svc.Signup(ctx, SignupInput{Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, result.Token))

	_, err = sessions.Resolve(ctx, result.Token)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	assert.ErrorIs(t, svc.Logout(ctx, result.Token), ErrInvalidToken)
	assert.ErrorIs(t, svc.Logout(ctx, "never-existed"), ErrInvalidToken)
}
