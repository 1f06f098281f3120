package repository

import (
	"context"
	"database/sql"

	"meetease/core/database"
	"meetease/core/logger"
	"meetease/modules/calendar/entity"

	"github.com/google/uuid"
)

type CalendarRepository interface {
	UpsertConnection(ctx context.Context, conn *entity.CalendarConnection) (*entity.CalendarConnection, error)
	GetConnectionByUserAndProvider(ctx context.Context, userID uuid.UUID, provider string) (*entity.CalendarConnection, error)
	GetConnectionsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.CalendarConnection, error)
	UpdateTokens(ctx context.Context, conn *entity.CalendarConnection) error
	DeactivateConnection(ctx context.Context, userID uuid.UUID, provider string) error
}

type calendarRepository struct {
	db database.Database
}

func NewCalendarRepository(db database.Database) CalendarRepository {
	return &calendarRepository{db: db}
}

// UpsertConnection creates the connection or refreshes its tokens when the
// user reconnects the same provider.
func (r *calendarRepository) UpsertConnection(ctx context.Context, conn *entity.CalendarConnection) (*entity.CalendarConnection, error) {
	query := `
		INSERT INTO calendar_connections (user_id, provider, access_token, refresh_token, token_expires_at, calendar_email, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, true)
		ON CONFLICT (user_id, provider)
		DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			token_expires_at = EXCLUDED.token_expires_at,
			calendar_email = EXCLUDED.calendar_email,
			is_active = true,
			updated_at = NOW()
		RETURNING id, user_id, provider, access_token, refresh_token, token_expires_at, calendar_email, is_active, created_at, updated_at
	`

	var saved entity.CalendarConnection
	err := r.db.GetContext(ctx, &saved, query,
		conn.UserID, conn.Provider, conn.AccessToken, conn.RefreshToken,
		conn.TokenExpiresAt, conn.CalendarEmail)
	if err != nil {
		logger.Error("CalendarRepository:UpsertConnection", err)
		return nil, err
	}
	return &saved, nil
}

func (r *calendarRepository) GetConnectionByUserAndProvider(ctx context.Context, userID uuid.UUID, provider string) (*entity.CalendarConnection, error) {
	query := `
		SELECT id, user_id, provider, access_token, refresh_token, token_expires_at, calendar_email, is_active, created_at, updated_at
		FROM calendar_connections
		WHERE user_id = $1 AND provider = $2 AND is_active = true
	`

	var conn entity.CalendarConnection
	err := r.db.GetContext(ctx, &conn, query, userID, provider)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("CalendarRepository:GetConnectionByUserAndProvider", err)
		return nil, err
	}
	return &conn, nil
}

func (r *calendarRepository) GetConnectionsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.CalendarConnection, error) {
	query := `
		SELECT id, user_id, provider, access_token, refresh_token, token_expires_at, calendar_email, is_active, created_at, updated_at
		FROM calendar_connections
		WHERE user_id = $1 AND is_active = true
		ORDER BY created_at DESC
	`

	var connections []entity.CalendarConnection
	if err := r.db.SelectContext(ctx, &connections, query, userID); err != nil {
		logger.Error("CalendarRepository:GetConnectionsByUserID", err)
		return nil, err
	}
	return connections, nil
}

func (r *calendarRepository) UpdateTokens(ctx context.Context, conn *entity.CalendarConnection) error {
	query := `
		UPDATE calendar_connections
		SET access_token = $2, refresh_token = $3, token_expires_at = $4, updated_at = NOW()
		WHERE id = $1
	`
	err := r.db.ExecContext(ctx, query, conn.ID, conn.AccessToken, conn.RefreshToken, conn.TokenExpiresAt)
	if err != nil {
		logger.Error("CalendarRepository:UpdateTokens", err)
	}
	return err
}

// DeactivateConnection soft deletes a calendar connection.
func (r *calendarRepository) DeactivateConnection(ctx context.Context, userID uuid.UUID, provider string) error {
	query := `
		UPDATE calendar_connections
		SET is_active = false, updated_at = NOW()
		WHERE user_id = $1 AND provider = $2
	`
	err := r.db.ExecContext(ctx, query, userID, provider)
	if err != nil {
		logger.Error("CalendarRepository:DeactivateConnection", err)
	}
	return err
}
