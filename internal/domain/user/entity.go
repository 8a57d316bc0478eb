package user

import (
	"time"
)

type Role string

const (
	RoleAdmin        Role = "admin"
	RoleProfessional Role = "professional"
	RoleAssistant    Role = "assistant"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleProfessional, RoleAssistant:
		return true
	}
	return false
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool { return t == ThemeLight || t == ThemeDark }

type (
	ID   uint64
	User struct {
		ID              ID
		Email           string
		PasswordHash    string
		Admin           bool
		Role            Role
		ThemePreference Theme

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User

	// Update carries a partial update; nil fields are left untouched.
	Update struct {
		Email                *string
		Password             *string
		PasswordConfirmation *string
		Admin                *bool
		ThemePreference      *string
	}
)

func (u *User) IsAdmin() bool        { return u.Admin }
func (u *User) IsProfessional() bool { return u.Role == RoleProfessional }
