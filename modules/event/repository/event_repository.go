package repository

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"meetease/core/database"
	"meetease/core/logger"
	"meetease/core/params"
	"meetease/modules/event/entity"

	"github.com/google/uuid"
)

type EventRepositoryInterface interface {
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	ListByHost(ctx context.Context, hostID uuid.UUID, status string, p params.QueryParams) (*entity.PaginatedEventEntity, error)
	ListScheduledBetween(ctx context.Context, hostID uuid.UUID, from, to time.Time) ([]entity.Event, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

type EventRepository struct {
	DB database.Database
}

func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	query := `
		INSERT INTO events (host_id, event_type_id, contact_id, title, status, start_time, end_time, timezone, meeting_link, provider_event_id, guest_name, guest_email, guest_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, host_id, event_type_id, contact_id, title, status, start_time, end_time, timezone, meeting_link, provider_event_id, guest_name, guest_email, guest_notes, created_at, updated_at
	`

	var saved entity.Event
	err := r.DB.GetContext(ctx, &saved, query,
		event.HostID, event.EventTypeID, event.ContactID, event.Title, event.Status,
		event.StartTime, event.EndTime, event.Timezone, event.MeetingLink,
		event.ProviderEventID, event.GuestName, event.GuestEmail, event.GuestNotes)
	if err != nil {
		logger.Error("EventRepository:Create", err)
		return nil, err
	}
	return &saved, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `
		SELECT id, host_id, event_type_id, contact_id, title, status, start_time, end_time, timezone, meeting_link, provider_event_id, guest_name, guest_email, guest_notes, created_at, updated_at
		FROM events WHERE id = $1
	`

	var event entity.Event
	err := r.DB.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetByID", err)
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) ListByHost(ctx context.Context, hostID uuid.UUID, status string, p params.QueryParams) (*entity.PaginatedEventEntity, error) {
	offset := (p.PageNumber - 1) * p.PageSize

	baseQuery := `FROM events WHERE host_id = $1`
	args := []any{hostID}
	if status != "" {
		baseQuery += ` AND status = $2`
		args = append(args, status)
	}

	var totalItems int
	err := r.DB.GetContext(ctx, &totalItems, "SELECT COUNT(*) "+baseQuery, args...)
	if err != nil {
		logger.Error("EventRepository:ListByHost:Count", err)
		return nil, err
	}

	query := `
		SELECT id, host_id, event_type_id, contact_id, title, status, start_time, end_time, timezone, meeting_link, provider_event_id, guest_name, guest_email, guest_notes, created_at, updated_at ` +
		baseQuery + `
		ORDER BY start_time DESC
		LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, p.PageSize, offset)

	var events []entity.Event
	err = r.DB.SelectContext(ctx, &events, query, args...)
	if err != nil {
		logger.Error("EventRepository:ListByHost:Select", err)
		return nil, err
	}

	return &entity.PaginatedEventEntity{
		Items:      events,
		TotalItems: totalItems,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}, nil
}

// ListScheduledBetween returns the host's scheduled meetings overlapping the
// given range. The slot calculator merges these with provider busy intervals.
func (r *EventRepository) ListScheduledBetween(ctx context.Context, hostID uuid.UUID, from, to time.Time) ([]entity.Event, error) {
	query := `
		SELECT id, host_id, event_type_id, contact_id, title, status, start_time, end_time, timezone, meeting_link, provider_event_id, guest_name, guest_email, guest_notes, created_at, updated_at
		FROM events
		WHERE host_id = $1 AND status = $2 AND start_time < $3 AND end_time > $4
		ORDER BY start_time ASC
	`

	var events []entity.Event
	err := r.DB.SelectContext(ctx, &events, query, hostID, entity.StatusScheduled, to, from)
	if err != nil {
		logger.Error("EventRepository:ListScheduledBetween", err)
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE events SET status = $2, updated_at = NOW() WHERE id = $1`
	if err := r.DB.ExecContext(ctx, query, id, status); err != nil {
		logger.Error("EventRepository:UpdateStatus", err)
		return err
	}
	return nil
}
