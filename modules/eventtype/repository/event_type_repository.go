package repository

import (
	"context"
	"database/sql"

	"meetease/core/database"
	"meetease/core/logger"
	"meetease/modules/eventtype/entity"

	"github.com/google/uuid"
)

// EventTypeRepositoryInterface defines the repository contract.
type EventTypeRepositoryInterface interface {
	Create(ctx context.Context, eventType *entity.EventType) (*entity.EventType, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.EventType, error)
	GetBySlug(ctx context.Context, slug string) (*entity.EventType, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.EventType, error)
	Update(ctx context.Context, eventType *entity.EventType) error
	Delete(ctx context.Context, id uuid.UUID) error
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type EventTypeRepository struct {
	DB database.Database
}

func NewEventTypeRepository(db database.Database) *EventTypeRepository {
	return &EventTypeRepository{DB: db}
}

func (r *EventTypeRepository) Create(ctx context.Context, eventType *entity.EventType) (*entity.EventType, error) {
	query := `
		INSERT INTO event_types (user_id, title, slug, description, duration_minutes, is_active, client_tag)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, title, slug, description, duration_minutes, is_active, client_tag, created_at, updated_at
	`

	var created entity.EventType
	err := r.DB.GetContext(ctx, &created, query,
		eventType.UserID, eventType.Title, eventType.Slug, eventType.Description,
		eventType.DurationMinutes, eventType.IsActive, eventType.ClientTag)
	if err != nil {
		logger.Error("EventTypeRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *EventTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.EventType, error) {
	query := `
		SELECT id, user_id, title, slug, description, duration_minutes, is_active, client_tag, created_at, updated_at
		FROM event_types WHERE id = $1
	`

	var eventType entity.EventType
	err := r.DB.GetContext(ctx, &eventType, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventTypeRepository:GetByID", err)
		return nil, err
	}
	return &eventType, nil
}

func (r *EventTypeRepository) GetBySlug(ctx context.Context, slug string) (*entity.EventType, error) {
	query := `
		SELECT id, user_id, title, slug, description, duration_minutes, is_active, client_tag, created_at, updated_at
		FROM event_types WHERE slug = $1
	`

	var eventType entity.EventType
	err := r.DB.GetContext(ctx, &eventType, query, slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventTypeRepository:GetBySlug", err)
		return nil, err
	}
	return &eventType, nil
}

func (r *EventTypeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.EventType, error) {
	query := `
		SELECT id, user_id, title, slug, description, duration_minutes, is_active, client_tag, created_at, updated_at
		FROM event_types
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var eventTypes []entity.EventType
	err := r.DB.SelectContext(ctx, &eventTypes, query, userID)
	if err != nil {
		logger.Error("EventTypeRepository:ListByUser", err)
		return nil, err
	}
	return eventTypes, nil
}

func (r *EventTypeRepository) Update(ctx context.Context, eventType *entity.EventType) error {
	query := `
		UPDATE event_types
		SET title = $2, description = $3, duration_minutes = $4, is_active = $5, client_tag = $6, updated_at = NOW()
		WHERE id = $1
	`
	err := r.DB.ExecContext(ctx, query,
		eventType.ID, eventType.Title, eventType.Description,
		eventType.DurationMinutes, eventType.IsActive, eventType.ClientTag)
	if err != nil {
		logger.Error("EventTypeRepository:Update", err)
	}
	return err
}

func (r *EventTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM event_types WHERE id = $1`
	if err := r.DB.ExecContext(ctx, query, id); err != nil {
		logger.Error("EventTypeRepository:Delete", err)
		return err
	}
	return nil
}

func (r *EventTypeRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM event_types WHERE slug = $1)`
	err := r.DB.GetContext(ctx, &exists, query, slug)
	if err != nil {
		logger.Error("EventTypeRepository:SlugExists", err)
		return false, err
	}
	return exists, nil
}
