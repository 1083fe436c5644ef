package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"brandscope/api/internal/ids"
	"brandscope/api/internal/models"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository holds user records for the lifetime of the process. Emails
// are matched exactly, case-sensitive.
type UserRepository struct {
	mu    sync.RWMutex
	byID  map[string]models.User
	order []string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{byID: make(map[string]models.User)}
}

func (r *UserRepository) Create(ctx context.Context, email, passwordDigest, fullName string) (models.User, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.order {
		if r.byID[id].Email == email {
			return models.User{}, ErrDuplicateEmail
		}
	}

	user := models.User{
		ID:             ids.New(),
		Email:          email,
		FullName:       fullName,
		PasswordDigest: passwordDigest,
		CreatedAt:      time.Now(),
	}
	r.byID[user.ID] = user
	r.order = append(r.order, user.ID)
	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if user := r.byID[id]; user.Email == email {
			return user, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (models.User, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

// GetOrCreateByEmail backs the Google login path. Created accounts carry no
// password digest.
func (r *UserRepository) GetOrCreateByEmail(ctx context.Context, email, fullName string) (models.User, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.order {
		if user := r.byID[id]; user.Email == email {
			return user, nil
		}
	}

	user := models.User{
		ID:        ids.New(),
		Email:     email,
		FullName:  fullName,
		CreatedAt: time.Now(),
	}
	r.byID[user.ID] = user
	r.order = append(r.order, user.ID)
	return user, nil
}

// List returns users in creation order.
func (r *UserRepository) List(ctx context.Context) []models.User {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, r.byID[id])
	}
	return users
}

func (r *UserRepository) Count(ctx context.Context) int {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
