package ports

import (
	"context"

	"clinic-office-api/internal/domain/patient"
)

type PatientService interface {
	FindPatients(ctx context.Context, includeDeleted bool) (patient.Patients, error)
	FindPatientByID(ctx context.Context, id patient.ID) (*patient.Patient, error)
	CreatePatient(ctx context.Context, req patient.Patient) (*patient.Patient, error)
	UpdatePatient(ctx context.Context, id patient.ID, upd patient.Update) (*patient.Patient, error)
	DeletePatient(ctx context.Context, id patient.ID) (*patient.Patient, error)
	RestorePatient(ctx context.Context, id patient.ID) (*patient.Patient, error)
}
