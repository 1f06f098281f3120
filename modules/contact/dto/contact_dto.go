package dto

import (
	"time"

	"meetease/modules/contact/entity"

	"github.com/google/uuid"
)

type UpdateContactRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

type ContactResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ContactListResponse struct {
	Contacts   []ContactResponse `json:"contacts"`
	TotalItems int               `json:"total_items"`
	PageNumber int               `json:"page_number"`
	PageSize   int               `json:"page_size"`
}

func ToContactResponse(c *entity.Contact) *ContactResponse {
	return &ContactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}

func ToContactListResponse(p *entity.PaginatedContactEntity) *ContactListResponse {
	contacts := make([]ContactResponse, 0, len(p.Items))
	for i := range p.Items {
		contacts = append(contacts, *ToContactResponse(&p.Items[i]))
	}
	return &ContactListResponse{
		Contacts:   contacts,
		TotalItems: p.TotalItems,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}
}
