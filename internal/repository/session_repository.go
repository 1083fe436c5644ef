package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"brandscope/api/internal/ids"
	"brandscope/api/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository maps opaque bearer tokens to user ids. Sessions never
// expire; a user may hold any number of them concurrently.
type SessionRepository struct {
	mu     sync.RWMutex
	byToken map[string]models.Session
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{byToken: make(map[string]models.Session)}
}

// Issue creates a session for the user and returns its token.
func (r *SessionRepository) Issue(ctx context.Context, userID string) string {
	_ = ctx
	session := models.Session{
		Token:     ids.NewUUID(),
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.byToken[session.Token] = session
	return session.Token
}

// Resolve returns the user id owning the token.
func (r *SessionRepository) Resolve(ctx context.Context, token string) (string, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.byToken[token]
	if !ok {
		return "", ErrSessionNotFound
	}
	return session.UserID, nil
}

func (r *SessionRepository) Revoke(ctx context.Context, token string) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byToken[token]; !ok {
		return ErrSessionNotFound
	}
	delete(r.byToken, token)
	return nil
}

// ListTokens is diagnostic only; it must never be routed in a production
// deployment.
func (r *SessionRepository) ListTokens(ctx context.Context) []string {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	tokens := make([]string, 0, len(r.byToken))
	for token := range r.byToken {
		tokens = append(tokens, token)
	}
	return tokens
}

func (r *SessionRepository) Count(ctx context.Context) int {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byToken)
}
