package patient

import (
	"context"
)

type Repository interface {
	// FetchPatients excludes soft-deleted rows unless includeDeleted is set.
	FetchPatients(ctx context.Context, includeDeleted bool) (Patients, error)
	// FetchPatientByID returns soft-deleted rows too; callers decide visibility.
	FetchPatientByID(ctx context.Context, id ID) (*Patient, error)
	CreatePatient(ctx context.Context, req Patient) (*Patient, error)
	UpdatePatient(ctx context.Context, req Patient) (*Patient, error)
	// SoftDeletePatient sets deleted_at; returns nil when the row is absent
	// or already deleted.
	SoftDeletePatient(ctx context.Context, id ID) (*Patient, error)
	// RestorePatient clears deleted_at; returns nil when the row is not in
	// the deleted set.
	RestorePatient(ctx context.Context, id ID) (*Patient, error)
}
