package specialty

import (
	"strconv"

	domain "clinic-office-api/internal/domain/specialty"
)

func ToResponseSpecialty(sDomain domain.Specialty) Specialty {
	return Specialty{
		ID:          strconv.FormatUint(uint64(sDomain.ID), 10),
		Name:        sDomain.Name,
		Description: sDomain.Description,
		Active:      sDomain.Active,
		CreatedAt:   sDomain.CreatedAt,
	}
}

func ToResponseSpecialties(ssDomain domain.Specialties) Specialties {
	ss := make(Specialties, len(ssDomain))
	for idx, s := range ssDomain {
		ss[idx] = ToResponseSpecialty(*s)
	}

	return ss
}
