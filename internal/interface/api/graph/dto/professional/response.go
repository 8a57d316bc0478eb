package professional

import (
	"time"
)

type (
	Professional struct {
		ID                  string    `json:"id"`
		UserID              string    `json:"userId"`
		SpecialtyID         string    `json:"specialtyId"`
		CouncilRegistration *string   `json:"councilRegistration"`
		Bio                 *string   `json:"bio"`
		Active              bool      `json:"active"`
		CreatedAt           time.Time `json:"createdAt"`
	}
	Professionals []Professional
)
