package patient

import (
	"time"
)

type (
	Patient struct {
		ID        string     `json:"id"`
		FirstName string     `json:"firstName"`
		LastName  string     `json:"lastName"`
		Birthdate *time.Time `json:"birthdate"`
		Email     *string    `json:"email"`
		Phone     *string    `json:"phone"`
		CreatedAt time.Time  `json:"createdAt"`
		DeletedAt *time.Time `json:"deletedAt"`
	}
	Patients []Patient
)
