package ports

import (
	"context"

	"clinic-office-api/internal/domain/user"
)

type Auth interface {
	// Login verifies the credentials and issues a bearer token.
	Login(ctx context.Context, email, password string) (*user.User, string, error)
	// Logout denylists the token presented on this request, if any.
	Logout(ctx context.Context) error
}
