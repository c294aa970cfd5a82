package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase/interfaces"
)

// Users indexes accounts by lower-cased username.
type Users struct {
	mu         sync.RWMutex
	byUsername map[string]entities.User
}

var _ interfaces.IUserRepository = (*Users)(nil)

func NewUsers() *Users {
	return &Users{byUsername: make(map[string]entities.User)}
}

func (r *Users) GetByUsername(_ context.Context, username string) (entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byUsername[strings.ToLower(username)], nil
}

func (r *Users) Create(_ context.Context, u entities.User) (entities.User, error) {
	key := strings.ToLower(u.Username)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byUsername[key]; ok {
		return entities.User{}, fmt.Errorf("user %s: %w", u.Username, interfaces.ErrConflict)
	}
	r.byUsername[key] = u
	return u, nil
}
