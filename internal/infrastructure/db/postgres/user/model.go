package user

import (
	"time"
)

type (
	User struct {
		ID              uint64
		Email           string
		PasswordHash    string
		Admin           bool
		Role            string
		ThemePreference string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)
