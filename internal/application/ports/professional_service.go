package ports

import (
	"context"

	"clinic-office-api/internal/domain/professional"
)

type ProfessionalService interface {
	FindProfessionals(ctx context.Context, includeInactive bool) (professional.Professionals, error)
	FindProfessionalByID(ctx context.Context, id professional.ID) (*professional.Professional, error)
	FindProfessionalsBySpecialty(ctx context.Context, specialtyName string) (professional.Professionals, error)
	CreateProfessional(ctx context.Context, req professional.Professional) (*professional.Professional, error)
	UpdateProfessional(ctx context.Context, id professional.ID, upd professional.Update) (*professional.Professional, error)
	DeactivateProfessional(ctx context.Context, id professional.ID) (*professional.Professional, error)
}
