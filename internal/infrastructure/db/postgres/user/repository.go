package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"clinic-office-api/internal/domain/user"
	"clinic-office-api/internal/infrastructure/db/postgres"
)

var ErrEmailAlreadyExists = errors.New("email has already been taken")

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) user.Repository {
	return &Repository{db: db}
}

func (r *Repository) scanRow(row pgx.Row) (*user.User, error) {
	u := new(User)
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Admin,
		&u.Role,
		&u.ThemePreference,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchUsers(ctx context.Context) (user.Users, error) {
	rows, err := r.db.Query(ctx, SelectUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u := new(User)

		if err = rows.Scan(
			&u.ID,
			&u.Email,
			&u.PasswordHash,
			&u.Admin,
			&u.Role,
			&u.ThemePreference,

			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, err
		}

		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&us), nil
}

func (r *Repository) FetchUserByID(ctx context.Context, id user.ID) (*user.User, error) {
	return r.scanRow(r.db.QueryRow(ctx, SelectUserByID, uint64(id)))
}

func (r *Repository) FetchUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.scanRow(r.db.QueryRow(ctx, SelectUserByEmail, email))
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	u, err := r.scanRow(r.db.QueryRow(
		ctx,
		InsertUser,
		req.Email, req.PasswordHash, req.Admin, string(req.Role), string(req.ThemePreference),
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return u, nil
}

func (r *Repository) UpdateUser(ctx context.Context, req user.User) (*user.User, error) {
	u, err := r.scanRow(r.db.QueryRow(
		ctx,
		UpdateUserByID,
		req.Email, req.PasswordHash, req.Admin, string(req.Role), string(req.ThemePreference),
		uint64(req.ID),
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return u, nil
}

func (r *Repository) UpdateUserRole(ctx context.Context, id user.ID, role user.Role) (*user.User, error) {
	return r.scanRow(r.db.QueryRow(ctx, UpdateUserRoleByID, string(role), uint64(id)))
}

func (r *Repository) DeleteUser(ctx context.Context, id user.ID) (*user.User, error) {
	return r.scanRow(r.db.QueryRow(ctx, DeleteUserByID, uint64(id)))
}
