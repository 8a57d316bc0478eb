package specialty

import (
	"time"
)

type (
	ID        uint64
	Specialty struct {
		ID          ID
		Name        string
		Description *string
		Active      bool

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Specialties []*Specialty

	// Update carries a partial update; nil fields are left untouched.
	Update struct {
		Name        *string
		Description *string
		Active      *bool
	}
)
