package entity

import (
	"meetease/core/entity"

	"github.com/google/uuid"
)

// Availability is one recurring weekly window during which a user accepts
// meetings. At most one row exists per (user_id, day_of_week).
type Availability struct {
	entity.BaseEntity
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	DayOfWeek int       `db:"day_of_week" json:"day_of_week"` // 0 = Sunday .. 6 = Saturday
	StartTime string    `db:"start_time" json:"start_time"`   // "HH:MM" wall clock
	EndTime   string    `db:"end_time" json:"end_time"`       // "HH:MM" wall clock, exclusive
	Timezone  string    `db:"timezone" json:"timezone"`       // IANA zone name
}
