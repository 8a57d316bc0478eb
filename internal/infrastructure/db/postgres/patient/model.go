package patient

import (
	"time"
)

type (
	Patient struct {
		ID        uint64
		FirstName string
		LastName  string
		Birthdate *time.Time
		Email     *string
		Phone     *string

		CreatedAt time.Time
		UpdatedAt time.Time

		DeletedAt *time.Time
	}
	Patients []*Patient
)
