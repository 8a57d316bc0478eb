package token

import (
	"context"
)

type Repository interface {
	Revoke(ctx context.Context, t RevokedToken) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
