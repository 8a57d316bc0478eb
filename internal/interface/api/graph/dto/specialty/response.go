package specialty

import (
	"time"
)

type (
	Specialty struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Description *string   `json:"description"`
		Active      bool      `json:"active"`
		CreatedAt   time.Time `json:"createdAt"`
	}
	Specialties []Specialty
)
