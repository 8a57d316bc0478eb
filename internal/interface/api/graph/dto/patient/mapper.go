package patient

import (
	"strconv"

	domain "clinic-office-api/internal/domain/patient"
)

func ToResponsePatient(pDomain domain.Patient) Patient {
	return Patient{
		ID:        strconv.FormatUint(uint64(pDomain.ID), 10),
		FirstName: pDomain.FirstName,
		LastName:  pDomain.LastName,
		Birthdate: pDomain.Birthdate,
		Email:     pDomain.Email,
		Phone:     pDomain.Phone,
		CreatedAt: pDomain.CreatedAt,
		DeletedAt: pDomain.DeletedAt,
	}
}

func ToResponsePatients(psDomain domain.Patients) Patients {
	ps := make(Patients, len(psDomain))
	for idx, p := range psDomain {
		ps[idx] = ToResponsePatient(*p)
	}

	return ps
}
