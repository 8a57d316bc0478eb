package professional

import (
	"context"
)

type Repository interface {
	// FetchProfessionals excludes inactive rows unless includeInactive is set.
	FetchProfessionals(ctx context.Context, includeInactive bool) (Professionals, error)
	FetchProfessionalByID(ctx context.Context, id ID) (*Professional, error)
	// FetchProfessionalsBySpecialty matches active professionals whose
	// specialty has the given name.
	FetchProfessionalsBySpecialty(ctx context.Context, specialtyName string) (Professionals, error)
	CreateProfessional(ctx context.Context, req Professional) (*Professional, error)
	UpdateProfessional(ctx context.Context, req Professional) (*Professional, error)
}
