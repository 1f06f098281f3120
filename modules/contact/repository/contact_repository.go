package repository

import (
	"context"
	"database/sql"

	"meetease/core/database"
	"meetease/core/logger"
	"meetease/core/params"
	"meetease/modules/contact/entity"

	"github.com/google/uuid"
)

// ContactRepositoryInterface defines the repository contract.
type ContactRepositoryInterface interface {
	UpsertByEmail(ctx context.Context, contact *entity.Contact) (*entity.Contact, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)
	ListByUser(ctx context.Context, userID uuid.UUID, p params.QueryParams) (*entity.PaginatedContactEntity, error)
	Update(ctx context.Context, contact *entity.Contact) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ContactRepository struct {
	DB database.Database
}

func NewContactRepository(db database.Database) *ContactRepository {
	return &ContactRepository{DB: db}
}

// UpsertByEmail inserts the contact or refreshes its name, keyed on
// (user_id, email). Booking flow relies on this to auto-create contacts.
func (r *ContactRepository) UpsertByEmail(ctx context.Context, contact *entity.Contact) (*entity.Contact, error) {
	query := `
		INSERT INTO contacts (user_id, name, email, notes)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, email)
		DO UPDATE SET name = EXCLUDED.name, updated_at = NOW()
		RETURNING id, user_id, name, email, notes, created_at, updated_at
	`

	var saved entity.Contact
	err := r.DB.GetContext(ctx, &saved, query,
		contact.UserID, contact.Name, contact.Email, contact.Notes)
	if err != nil {
		logger.Error("ContactRepository:UpsertByEmail", err)
		return nil, err
	}
	return &saved, nil
}

func (r *ContactRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	query := `
		SELECT id, user_id, name, email, notes, created_at, updated_at
		FROM contacts WHERE id = $1
	`

	var contact entity.Contact
	err := r.DB.GetContext(ctx, &contact, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ContactRepository:GetByID", err)
		return nil, err
	}
	return &contact, nil
}

func (r *ContactRepository) ListByUser(ctx context.Context, userID uuid.UUID, p params.QueryParams) (*entity.PaginatedContactEntity, error) {
	offset := (p.PageNumber - 1) * p.PageSize

	var totalItems int
	err := r.DB.GetContext(ctx, &totalItems, `SELECT COUNT(*) FROM contacts WHERE user_id = $1`, userID)
	if err != nil {
		logger.Error("ContactRepository:ListByUser:Count", err)
		return nil, err
	}

	query := `
		SELECT id, user_id, name, email, notes, created_at, updated_at
		FROM contacts
		WHERE user_id = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3
	`

	var contacts []entity.Contact
	err = r.DB.SelectContext(ctx, &contacts, query, userID, p.PageSize, offset)
	if err != nil {
		logger.Error("ContactRepository:ListByUser:Select", err)
		return nil, err
	}

	return &entity.PaginatedContactEntity{
		Items:      contacts,
		TotalItems: totalItems,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}, nil
}

func (r *ContactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	query := `
		UPDATE contacts
		SET name = $2, email = $3, notes = $4, updated_at = NOW()
		WHERE id = $1
	`
	err := r.DB.ExecContext(ctx, query, contact.ID, contact.Name, contact.Email, contact.Notes)
	if err != nil {
		logger.Error("ContactRepository:Update", err)
	}
	return err
}

func (r *ContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.DB.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id); err != nil {
		logger.Error("ContactRepository:Delete", err)
		return err
	}
	return nil
}
