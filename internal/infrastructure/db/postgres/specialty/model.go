package specialty

import (
	"time"
)

type (
	Specialty struct {
		ID          uint64
		Name        string
		Description *string
		Active      bool

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Specialties []*Specialty
)
