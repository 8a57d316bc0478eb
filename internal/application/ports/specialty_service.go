package ports

import (
	"context"

	"clinic-office-api/internal/domain/specialty"
)

type SpecialtyService interface {
	FindSpecialties(ctx context.Context, includeInactive bool) (specialty.Specialties, error)
	FindSpecialtyByID(ctx context.Context, id specialty.ID) (*specialty.Specialty, error)
	CreateSpecialty(ctx context.Context, name string, description *string) (*specialty.Specialty, error)
	UpdateSpecialty(ctx context.Context, id specialty.ID, upd specialty.Update) (*specialty.Specialty, error)
	DeactivateSpecialty(ctx context.Context, id specialty.ID) (*specialty.Specialty, error)
}
