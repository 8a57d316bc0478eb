package specialty

import (
	domain "clinic-office-api/internal/domain/specialty"
)

func fromDBModel(model *Specialty) *domain.Specialty {
	return &domain.Specialty{
		ID:          domain.ID(model.ID),
		Name:        model.Name,
		Description: model.Description,
		Active:      model.Active,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func fromDBModels(models *Specialties) domain.Specialties {
	ss := make(domain.Specialties, len(*models))
	for idx, s := range *models {
		ss[idx] = fromDBModel(s)
	}

	return ss
}
