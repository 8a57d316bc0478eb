package patient

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"clinic-office-api/internal/domain/patient"
	"clinic-office-api/internal/infrastructure/db/postgres"
)

var ErrEmailAlreadyExists = errors.New("email has already been taken")

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) patient.Repository {
	return &Repository{db: db}
}

func (r *Repository) scanRow(row pgx.Row) (*patient.Patient, error) {
	p := new(Patient)
	err := row.Scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.Birthdate,
		&p.Email,
		&p.Phone,

		&p.CreatedAt,
		&p.UpdatedAt,

		&p.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(p), nil
}

func (r *Repository) FetchPatients(ctx context.Context, includeDeleted bool) (patient.Patients, error) {
	query := SelectPatients
	if includeDeleted {
		query = SelectPatientsWithDeleted
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ps Patients
	for rows.Next() {
		p := new(Patient)

		if err = rows.Scan(
			&p.ID,
			&p.FirstName,
			&p.LastName,
			&p.Birthdate,
			&p.Email,
			&p.Phone,

			&p.CreatedAt,
			&p.UpdatedAt,

			&p.DeletedAt,
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

func (r *Repository) FetchPatientByID(ctx context.Context, id patient.ID) (*patient.Patient, error) {
	return r.scanRow(r.db.QueryRow(ctx, SelectPatientByID, uint64(id)))
}

func (r *Repository) CreatePatient(ctx context.Context, req patient.Patient) (*patient.Patient, error) {
	p, err := r.scanRow(r.db.QueryRow(
		ctx,
		InsertPatient,
		req.FirstName, req.LastName, req.Birthdate, req.Email, req.Phone,
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return p, nil
}

func (r *Repository) UpdatePatient(ctx context.Context, req patient.Patient) (*patient.Patient, error) {
	p, err := r.scanRow(r.db.QueryRow(
		ctx,
		UpdatePatientByID,
		req.FirstName, req.LastName, req.Birthdate, req.Email, req.Phone,
		uint64(req.ID),
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return p, nil
}

func (r *Repository) SoftDeletePatient(ctx context.Context, id patient.ID) (*patient.Patient, error) {
	return r.scanRow(r.db.QueryRow(ctx, SoftDeletePatientByID, uint64(id)))
}

func (r *Repository) RestorePatient(ctx context.Context, id patient.ID) (*patient.Patient, error) {
	return r.scanRow(r.db.QueryRow(ctx, RestorePatientByID, uint64(id)))
}
