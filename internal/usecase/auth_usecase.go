package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const DefaultUserRole = "admin"

var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserAlreadyExists  = errors.New("user already exists")
)

type IAuthUseCase interface {
	Login(ctx context.Context, username, password string) (entities.User, error)
	Register(ctx context.Context, username, password, role string) (entities.User, error)
}

type AuthUseCase struct {
	users  interfaces.IUserRepository
	hasher interfaces.IPasswordHasher
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, hasher interfaces.IPasswordHasher) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher}
}

func (u *AuthUseCase) Login(ctx context.Context, username, password string) (entities.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return entities.User{}, ErrMissingCredentials
	}

	user, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return entities.User{}, storageFailure("[auth][usecase]", err, nil)
	}
	if user.ID == "" {
		log.Printf("[auth][usecase] unknown user username=%q", username)
		return entities.User{}, ErrInvalidCredentials
	}
	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		log.Printf("[auth][usecase] password mismatch user_id=%s", user.ID)
		return entities.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// Register is used by the seed loader; there is no public sign-up.
func (u *AuthUseCase) Register(ctx context.Context, username, password, role string) (entities.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return entities.User{}, ErrMissingCredentials
	}
	if strings.TrimSpace(role) == "" {
		role = DefaultUserRole
	}

	existing, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return entities.User{}, storageFailure("[auth][usecase]", err, nil)
	}
	if existing.ID != "" {
		return existing, ErrUserAlreadyExists
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return entities.User{}, err
	}
	user, err := u.users.Create(ctx, entities.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Role:         strings.TrimSpace(role),
	})
	if errors.Is(err, interfaces.ErrConflict) {
		return entities.User{}, ErrUserAlreadyExists
	}
	if err != nil {
		return entities.User{}, storageFailure("[auth][usecase]", err, nil)
	}
	return user, nil
}
