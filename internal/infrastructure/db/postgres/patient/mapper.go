package patient

import (
	domain "clinic-office-api/internal/domain/patient"
)

func fromDBModel(model *Patient) *domain.Patient {
	return &domain.Patient{
		ID:        domain.ID(model.ID),
		FirstName: model.FirstName,
		LastName:  model.LastName,
		Birthdate: model.Birthdate,
		Email:     model.Email,
		Phone:     model.Phone,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,

		DeletedAt: model.DeletedAt,
	}
}

func fromDBModels(models *Patients) domain.Patients {
	ps := make(domain.Patients, len(*models))
	for idx, p := range *models {
		ps[idx] = fromDBModel(p)
	}

	return ps
}
