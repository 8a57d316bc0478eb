package specialty

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"clinic-office-api/internal/domain/specialty"
	"clinic-office-api/internal/infrastructure/db/postgres"
)

var ErrNameAlreadyExists = errors.New("name has already been taken")

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) specialty.Repository {
	return &Repository{db: db}
}

func (r *Repository) scanRow(row pgx.Row) (*specialty.Specialty, error) {
	s := new(Specialty)
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Description,
		&s.Active,

		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(s), nil
}

func (r *Repository) FetchSpecialties(ctx context.Context, includeInactive bool) (specialty.Specialties, error) {
	query := SelectSpecialties
	if includeInactive {
		query = SelectSpecialtiesAll
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ss Specialties
	for rows.Next() {
		s := new(Specialty)

		if err = rows.Scan(
			&s.ID,
			&s.Name,
			&s.Description,
			&s.Active,

			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, err
		}

		ss = append(ss, s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&ss), nil
}

func (r *Repository) FetchSpecialtyByID(ctx context.Context, id specialty.ID) (*specialty.Specialty, error) {
	return r.scanRow(r.db.QueryRow(ctx, SelectSpecialtyByID, uint64(id)))
}

func (r *Repository) CreateSpecialty(ctx context.Context, req specialty.Specialty) (*specialty.Specialty, error) {
	s, err := r.scanRow(r.db.QueryRow(
		ctx,
		InsertSpecialty,
		req.Name, req.Description, req.Active,
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrNameAlreadyExists
		}
		return nil, err
	}

	return s, nil
}

func (r *Repository) UpdateSpecialty(ctx context.Context, req specialty.Specialty) (*specialty.Specialty, error) {
	s, err := r.scanRow(r.db.QueryRow(
		ctx,
		UpdateSpecialtyByID,
		req.Name, req.Description, req.Active,
		uint64(req.ID),
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrNameAlreadyExists
		}
		return nil, err
	}

	return s, nil
}

func (r *Repository) HasProfessionals(ctx context.Context, id specialty.ID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, ExistsProfessionalsForSpecialty, uint64(id)).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}
