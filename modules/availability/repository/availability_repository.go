package repository

import (
	"context"
	"database/sql"

	"meetease/core/database"
	"meetease/core/logger"
	"meetease/modules/availability/entity"

	"github.com/google/uuid"
)

// AvailabilityRepositoryInterface defines the repository contract.
type AvailabilityRepositoryInterface interface {
	Upsert(ctx context.Context, availability *entity.Availability) (*entity.Availability, error)
	GetByUserAndDay(ctx context.Context, userID uuid.UUID, dayOfWeek int) (*entity.Availability, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Availability, error)
	Delete(ctx context.Context, userID uuid.UUID, dayOfWeek int) error
}

type AvailabilityRepository struct {
	DB database.Database
}

func NewAvailabilityRepository(db database.Database) *AvailabilityRepository {
	return &AvailabilityRepository{DB: db}
}

// Upsert inserts or replaces the window for (user_id, day_of_week).
func (r *AvailabilityRepository) Upsert(ctx context.Context, availability *entity.Availability) (*entity.Availability, error) {
	query := `
		INSERT INTO availabilities (user_id, day_of_week, start_time, end_time, timezone)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, day_of_week)
		DO UPDATE SET start_time = EXCLUDED.start_time,
		              end_time = EXCLUDED.end_time,
		              timezone = EXCLUDED.timezone,
		              updated_at = NOW()
		RETURNING id, user_id, day_of_week, start_time, end_time, timezone, created_at, updated_at
	`

	var saved entity.Availability
	err := r.DB.GetContext(ctx, &saved, query,
		availability.UserID, availability.DayOfWeek,
		availability.StartTime, availability.EndTime, availability.Timezone)
	if err != nil {
		logger.Error("AvailabilityRepository:Upsert", err)
		return nil, err
	}
	return &saved, nil
}

func (r *AvailabilityRepository) GetByUserAndDay(ctx context.Context, userID uuid.UUID, dayOfWeek int) (*entity.Availability, error) {
	query := `
		SELECT id, user_id, day_of_week, start_time, end_time, timezone, created_at, updated_at
		FROM availabilities
		WHERE user_id = $1 AND day_of_week = $2
	`

	var availability entity.Availability
	err := r.DB.GetContext(ctx, &availability, query, userID, dayOfWeek)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AvailabilityRepository:GetByUserAndDay", err)
		return nil, err
	}
	return &availability, nil
}

func (r *AvailabilityRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Availability, error) {
	query := `
		SELECT id, user_id, day_of_week, start_time, end_time, timezone, created_at, updated_at
		FROM availabilities
		WHERE user_id = $1
		ORDER BY day_of_week ASC
	`

	var availabilities []entity.Availability
	err := r.DB.SelectContext(ctx, &availabilities, query, userID)
	if err != nil {
		logger.Error("AvailabilityRepository:ListByUser", err)
		return nil, err
	}
	return availabilities, nil
}

func (r *AvailabilityRepository) Delete(ctx context.Context, userID uuid.UUID, dayOfWeek int) error {
	query := `DELETE FROM availabilities WHERE user_id = $1 AND day_of_week = $2`
	if err := r.DB.ExecContext(ctx, query, userID, dayOfWeek); err != nil {
		logger.Error("AvailabilityRepository:Delete", err)
		return err
	}
	return nil
}
