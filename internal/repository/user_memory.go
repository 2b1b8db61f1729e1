package repository

import (
	"context"
	"sync"

	"luxe-be/internal/entities"
)

// MemoryUserRepository keeps users for the lifetime of the process.
// Stored users are copied in and out so callers never share state.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*entities.User
	order []string
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[string]*entities.User),
	}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return ErrDuplicateEmail
		}
	}
	r.users[user.ID] = copyUser(user)
	r.order = append(r.order, user.ID)
	return nil
}

// FindByEmail does a linear scan with exact, case-sensitive matching
func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			return copyUser(user), nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return copyUser(user), nil
}

func (r *MemoryUserRepository) Update(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return ErrUserNotFound
	}
	r.users[user.ID] = copyUser(user)
	return nil
}

func (r *MemoryUserRepository) List(_ context.Context) ([]*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*entities.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, copyUser(r.users[id]))
	}
	return users, nil
}

// Count reports how many users are stored.
func (r *MemoryUserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

func copyUser(u *entities.User) *entities.User {
	c := *u
	if u.Phone != nil {
		phone := *u.Phone
		c.Phone = &phone
	}
	return &c
}

var _ UserRepository = (*MemoryUserRepository)(nil)
