package specialty

import (
	"context"
)

type Repository interface {
	FetchSpecialties(ctx context.Context, includeInactive bool) (Specialties, error)
	FetchSpecialtyByID(ctx context.Context, id ID) (*Specialty, error)
	CreateSpecialty(ctx context.Context, req Specialty) (*Specialty, error)
	UpdateSpecialty(ctx context.Context, req Specialty) (*Specialty, error)
	// HasProfessionals reports whether any professional references the specialty.
	HasProfessionals(ctx context.Context, id ID) (bool, error)
}
