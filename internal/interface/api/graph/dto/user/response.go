package user

import (
	"time"
)

type (
	User struct {
		ID              string    `json:"id"`
		Email           string    `json:"email"`
		Admin           bool      `json:"admin"`
		Role            string    `json:"role"`
		ThemePreference string    `json:"themePreference"`
		CreatedAt       time.Time `json:"createdAt"`
	}
	Users []User
)
