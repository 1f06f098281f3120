package repository

import (
	"context"
	"database/sql"

	"meetease/core/database"
	"meetease/core/logger"
	"meetease/modules/auth/entity"

	"github.com/google/uuid"
)

type AuthRepositoryInterface interface {
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateUser(ctx context.Context, user *entity.User) error
}

type AuthRepository struct {
	DB database.Database
}

func NewAuthRepository(db database.Database) *AuthRepository {
	return &AuthRepository{DB: db}
}

func (r *AuthRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash, avatar_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, password_hash, avatar_url, created_at, updated_at
	`

	var created entity.User
	err := r.DB.GetContext(ctx, &created, query, user.Name, user.Email, user.PasswordHash, user.AvatarURL)
	if err != nil {
		logger.Error("AuthRepository:CreateUser", err)
		return nil, err
	}
	return &created, nil
}

func (r *AuthRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, name, email, password_hash, avatar_url, created_at, updated_at
		FROM users WHERE id = $1
	`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AuthRepository:GetUserByID", err)
		return nil, err
	}
	return &user, nil
}

func (r *AuthRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, name, email, password_hash, avatar_url, created_at, updated_at
		FROM users WHERE email = $1
	`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AuthRepository:GetUserByEmail", err)
		return nil, err
	}
	return &user, nil
}

func (r *AuthRepository) UpdateUser(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET name = $2, email = $3, password_hash = $4, avatar_url = $5, updated_at = NOW()
		WHERE id = $1
	`
	err := r.DB.ExecContext(ctx, query, user.ID, user.Name, user.Email, user.PasswordHash, user.AvatarURL)
	if err != nil {
		logger.Error("AuthRepository:UpdateUser", err)
	}
	return err
}
