package userrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/avoronin/eventpool/internal/domain"
	"github.com/avoronin/eventpool/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (login, password_hash, code)
        VALUES ($1, $2, $3)
        RETURNING id, login, password_hash, code, created_at
    `
	row := r.db.QueryRow(ctx, query, user.Login, user.PasswordHash, user.Code)
	var created domain.User
	err := row.Scan(&created.ID, &created.Login, &created.PasswordHash, &created.Code, &created.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create user", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `
        SELECT id, login, password_hash, code, created_at
        FROM users
        WHERE login = $1
    `
	row := r.db.QueryRow(ctx, query, login)
	var user domain.User
	err := row.Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Code, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find user by login", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByCode(ctx context.Context, code string) (*domain.User, error) {
	query := `
        SELECT id, login, password_hash, code, created_at
        FROM users
        WHERE code = $1
    `
	row := r.db.QueryRow(ctx, query, code)
	var user domain.User
	err := row.Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Code, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find user by code", zap.Error(err))
		return nil, err
	}
	return &user, nil
}
