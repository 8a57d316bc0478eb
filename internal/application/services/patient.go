package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"clinic-office-api/internal/application/ports"
	domain "clinic-office-api/internal/domain/patient"
	patientDB "clinic-office-api/internal/infrastructure/db/postgres/patient"
	"clinic-office-api/internal/infrastructure/mq"
	"clinic-office-api/internal/interface/api/graph/dto/patient"
)

type PatientService struct {
	patientRepository domain.Repository
	mq                ports.RabbitMQ
	mCounter          *prometheus.CounterVec
}

func NewPatientService(
	patientRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.PatientService {
	return &PatientService{
		patientRepository: patientRepository,
		mq:                mq,
		mCounter:          mCounter,
	}
}

func (ps *PatientService) FindPatients(ctx context.Context, includeDeleted bool) (domain.Patients, error) {
	return ps.patientRepository.FetchPatients(ctx, includeDeleted)
}

// FindPatientByID follows the default scope: soft-deleted patients are
// invisible here.
func (ps *PatientService) FindPatientByID(ctx context.Context, id domain.ID) (*domain.Patient, error) {
	p, err := ps.patientRepository.FetchPatientByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.Deleted() {
		return nil, nil
	}

	return p, nil
}

func (ps *PatientService) CreatePatient(ctx context.Context, req domain.Patient) (*domain.Patient, error) {
	if errs := validatePatientAttrs(req.FirstName, req.LastName, req.Email); len(errs) > 0 {
		return nil, validationFailed(errs...)
	}

	pRet, err := ps.patientRepository.CreatePatient(ctx, req)
	if err != nil {
		if errors.Is(err, patientDB.ErrEmailAlreadyExists) {
			return nil, validationFailed("Email has already been taken")
		}
		return nil, err
	}

	ps.publish(mq.ActionCreated, pRet)
	ps.mCounter.WithLabelValues("patient_created_total").Inc()

	return pRet, nil
}

func (ps *PatientService) UpdatePatient(ctx context.Context, id domain.ID, upd domain.Update) (*domain.Patient, error) {
	p, err := ps.FindPatientByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	if upd.FirstName != nil {
		p.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		p.LastName = *upd.LastName
	}
	if upd.Birthdate != nil {
		p.Birthdate = upd.Birthdate
	}
	if upd.Email != nil {
		p.Email = upd.Email
	}
	if upd.Phone != nil {
		p.Phone = upd.Phone
	}

	if errs := validatePatientAttrs(p.FirstName, p.LastName, p.Email); len(errs) > 0 {
		return nil, validationFailed(errs...)
	}

	pRet, err := ps.patientRepository.UpdatePatient(ctx, *p)
	if err != nil {
		if errors.Is(err, patientDB.ErrEmailAlreadyExists) {
			return nil, validationFailed("Email has already been taken")
		}
		return nil, err
	}

	ps.publish(mq.ActionUpdated, pRet)
	ps.mCounter.WithLabelValues("patient_updated_total").Inc()

	return pRet, nil
}

// DeletePatient hides the row by setting deleted_at. Deleting an already
// deleted patient is a no-op success.
func (ps *PatientService) DeletePatient(ctx context.Context, id domain.ID) (*domain.Patient, error) {
	p, err := ps.patientRepository.FetchPatientByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if p.Deleted() {
		return p, nil
	}

	pRet, err := ps.patientRepository.SoftDeletePatient(ctx, id)
	if err != nil {
		return nil, err
	}
	if pRet == nil {
		// lost the race with a concurrent delete; same outcome
		return p, nil
	}

	ps.publish(mq.ActionDeleted, pRet)
	ps.mCounter.WithLabelValues("patient_deleted_total").Inc()

	return pRet, nil
}

// RestorePatient clears deleted_at for a patient in the deleted set.
func (ps *PatientService) RestorePatient(ctx context.Context, id domain.ID) (*domain.Patient, error) {
	pRet, err := ps.patientRepository.RestorePatient(ctx, id)
	if err != nil {
		return nil, err
	}
	if pRet == nil {
		return nil, nil
	}

	ps.publish(mq.ActionRestored, pRet)
	ps.mCounter.WithLabelValues("patient_restored_total").Inc()

	return pRet, nil
}

func (ps *PatientService) publish(action string, p *domain.Patient) {
	if p == nil {
		return
	}
	ps.mq.GetInputChan() <- mq.Event{
		Id:       uuid.New(),
		TS:       time.Now(),
		Action:   action,
		Entity:   "patient",
		EntityID: strconv.FormatUint(uint64(p.ID), 10),
		Payload:  patient.ToResponsePatient(*p),
	}
}
