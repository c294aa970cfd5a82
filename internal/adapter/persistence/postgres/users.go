package postgres

import (
	"context"
	"errors"

	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IUserRepository = (*UserRepository)(nil)

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (entities.User, error) {
	var u entities.User
	err := r.pool.QueryRow(ctx, `
		SELECT id, username, password_hash, role FROM users WHERE lower(username) = lower($1)
	`, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.User{}, nil
	}
	return u, translate("get user", err)
}

func (r *UserRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, username, password_hash, role) VALUES ($1, $2, $3, $4)
	`, u.ID, u.Username, u.PasswordHash, u.Role)
	if err != nil {
		return entities.User{}, translate("create user", err)
	}
	return u, nil
}
