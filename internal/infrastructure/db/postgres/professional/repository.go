package professional

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"clinic-office-api/internal/domain/professional"
	"clinic-office-api/internal/infrastructure/db/postgres"
)

var (
	ErrUserAlreadyTaken         = errors.New("user has already been taken")
	ErrRegistrationAlreadyTaken = errors.New("council registration has already been taken")
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) professional.Repository {
	return &Repository{db: db}
}

func (r *Repository) scanRow(row pgx.Row) (*professional.Professional, error) {
	p := new(Professional)
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.SpecialtyID,
		&p.CouncilRegistration,
		&p.Bio,
		&p.Active,

		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(p), nil
}

func (r *Repository) queryMany(ctx context.Context, query string, args ...any) (professional.Professionals, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ps Professionals
	for rows.Next() {
		p := new(Professional)

		if err = rows.Scan(
			&p.ID,
			&p.UserID,
			&p.SpecialtyID,
			&p.CouncilRegistration,
			&p.Bio,
			&p.Active,

			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}

		ps = append(ps, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&ps), nil
}

func (r *Repository) FetchProfessionals(ctx context.Context, includeInactive bool) (professional.Professionals, error) {
	query := SelectProfessionals
	if includeInactive {
		query = SelectProfessionalsAll
	}

	return r.queryMany(ctx, query)
}

func (r *Repository) FetchProfessionalByID(ctx context.Context, id professional.ID) (*professional.Professional, error) {
	return r.scanRow(r.db.QueryRow(ctx, SelectProfessionalByID, uint64(id)))
}

func (r *Repository) FetchProfessionalsBySpecialty(ctx context.Context, specialtyName string) (professional.Professionals, error) {
	return r.queryMany(ctx, SelectProfessionalsBySpecialty, specialtyName)
}

func (r *Repository) CreateProfessional(ctx context.Context, req professional.Professional) (*professional.Professional, error) {
	p, err := r.scanRow(r.db.QueryRow(
		ctx,
		InsertProfessional,
		uint64(req.UserID), uint64(req.SpecialtyID), req.CouncilRegistration, req.Bio, req.Active,
	))
	if err != nil {
		return nil, uniqueViolation(err)
	}

	return p, nil
}

func (r *Repository) UpdateProfessional(ctx context.Context, req professional.Professional) (*professional.Professional, error) {
	p, err := r.scanRow(r.db.QueryRow(
		ctx,
		UpdateProfessionalByID,
		uint64(req.SpecialtyID), req.CouncilRegistration, req.Bio, req.Active,
		uint64(req.ID),
	))
	if err != nil {
		return nil, uniqueViolation(err)
	}

	return p, nil
}

func uniqueViolation(err error) error {
	if !postgres.IsPgUniqueViolation(err) {
		return err
	}
	switch postgres.PgConstraint(err) {
	case uniqueUserIndex:
		return ErrUserAlreadyTaken
	case uniqueCouncilIndex:
		return ErrRegistrationAlreadyTaken
	}
	return err
}
