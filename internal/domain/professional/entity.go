package professional

import (
	"time"

	"clinic-office-api/internal/domain/specialty"
	"clinic-office-api/internal/domain/user"
)

type (
	ID           uint64
	Professional struct {
		ID                  ID
		UserID              user.ID
		SpecialtyID         specialty.ID
		CouncilRegistration *string
		Bio                 *string
		Active              bool

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Professionals []*Professional

	// Update carries a partial update; nil fields are left untouched.
	Update struct {
		SpecialtyID         *specialty.ID
		CouncilRegistration *string
		Bio                 *string
		Active              *bool
	}
)
