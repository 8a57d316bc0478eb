package denylist

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"clinic-office-api/internal/domain/token"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) token.Repository {
	return &Repository{db: db}
}

func (r *Repository) Revoke(ctx context.Context, t token.RevokedToken) error {
	_, err := r.db.Exec(ctx, InsertRevokedToken, t.JTI, t.Exp)
	return err
}

func (r *Repository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var revoked bool
	if err := r.db.QueryRow(ctx, ExistsRevokedToken, jti).Scan(&revoked); err != nil {
		return false, err
	}

	return revoked, nil
}
