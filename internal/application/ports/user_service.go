package ports

import (
	"context"

	"clinic-office-api/internal/domain/user"
)

type UserService interface {
	FindUserByID(ctx context.Context, id user.ID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindUsers(ctx context.Context) (user.Users, error)
	RegisterUser(ctx context.Context, email, password, passwordConfirmation string) (*user.User, error)
	UpdateUser(ctx context.Context, id user.ID, upd user.Update) (*user.User, error)
	// DeleteUser removes the row unless it belongs to the caller.
	DeleteUser(ctx context.Context, id user.ID) (*user.User, error)
	// UpdateThemePreference updates the authenticated user's theme.
	UpdateThemePreference(ctx context.Context, theme string) (*user.User, error)
}
