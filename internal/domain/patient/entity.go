package patient

import (
	"time"
)

type (
	ID      uint64
	Patient struct {
		ID        ID
		FirstName string
		LastName  string
		Birthdate *time.Time
		Email     *string
		Phone     *string

		CreatedAt time.Time
		UpdatedAt time.Time

		// DeletedAt marks a soft-deleted patient; nil means visible.
		DeletedAt *time.Time
	}
	Patients []*Patient

	// Update carries a partial update; nil fields are left untouched.
	Update struct {
		FirstName *string
		LastName  *string
		Birthdate *time.Time
		Email     *string
		Phone     *string
	}
)

func (p *Patient) Deleted() bool { return p.DeletedAt != nil }
