package user

import (
	"strconv"

	domain "clinic-office-api/internal/domain/user"
)

func ToResponseUser(uDomain domain.User) User {
	return User{
		ID:              strconv.FormatUint(uint64(uDomain.ID), 10),
		Email:           uDomain.Email,
		Admin:           uDomain.Admin,
		Role:            string(uDomain.Role),
		ThemePreference: string(uDomain.ThemePreference),
		CreatedAt:       uDomain.CreatedAt,
	}
}

func ToResponseUsers(usDomain domain.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}
