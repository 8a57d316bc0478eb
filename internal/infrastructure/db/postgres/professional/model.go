package professional

import (
	"time"
)

type (
	Professional struct {
		ID                  uint64
		UserID              uint64
		SpecialtyID         uint64
		CouncilRegistration *string
		Bio                 *string
		Active              bool

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Professionals []*Professional
)
