package professional

import (
	domain "clinic-office-api/internal/domain/professional"
	"clinic-office-api/internal/domain/specialty"
	"clinic-office-api/internal/domain/user"
)

func fromDBModel(model *Professional) *domain.Professional {
	return &domain.Professional{
		ID:                  domain.ID(model.ID),
		UserID:              user.ID(model.UserID),
		SpecialtyID:         specialty.ID(model.SpecialtyID),
		CouncilRegistration: model.CouncilRegistration,
		Bio:                 model.Bio,
		Active:              model.Active,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func fromDBModels(models *Professionals) domain.Professionals {
	ps := make(domain.Professionals, len(*models))
	for idx, p := range *models {
		ps[idx] = fromDBModel(p)
	}

	return ps
}
