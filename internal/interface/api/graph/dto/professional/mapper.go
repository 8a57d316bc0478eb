package professional

import (
	"strconv"

	domain "clinic-office-api/internal/domain/professional"
)

func ToResponseProfessional(pDomain domain.Professional) Professional {
	return Professional{
		ID:                  strconv.FormatUint(uint64(pDomain.ID), 10),
		UserID:              strconv.FormatUint(uint64(pDomain.UserID), 10),
		SpecialtyID:         strconv.FormatUint(uint64(pDomain.SpecialtyID), 10),
		CouncilRegistration: pDomain.CouncilRegistration,
		Bio:                 pDomain.Bio,
		Active:              pDomain.Active,
		CreatedAt:           pDomain.CreatedAt,
	}
}

func ToResponseProfessionals(psDomain domain.Professionals) Professionals {
	ps := make(Professionals, len(psDomain))
	for idx, p := range psDomain {
		ps[idx] = ToResponseProfessional(*p)
	}

	return ps
}
