package user

import (
	domain "clinic-office-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	return &domain.User{
		ID:              domain.ID(model.ID),
		Email:           model.Email,
		PasswordHash:    model.PasswordHash,
		Admin:           model.Admin,
		Role:            domain.Role(model.Role),
		ThemePreference: domain.Theme(model.ThemePreference),

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func fromDBModels(models *Users) domain.Users {
	us := make(domain.Users, len(*models))
	for idx, u := range *models {
		us[idx] = fromDBModel(u)
	}

	return us
}
