package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"clinic-office-api/internal/application/ports"
	domain "clinic-office-api/internal/domain/specialty"
	specialtyDB "clinic-office-api/internal/infrastructure/db/postgres/specialty"
	"clinic-office-api/internal/infrastructure/mq"
	"clinic-office-api/internal/interface/api/graph/dto/specialty"
)

type SpecialtyService struct {
	specialtyRepository domain.Repository
	mq                  ports.RabbitMQ
	mCounter            *prometheus.CounterVec
}

func NewSpecialtyService(
	specialtyRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.SpecialtyService {
	return &SpecialtyService{
		specialtyRepository: specialtyRepository,
		mq:                  mq,
		mCounter:            mCounter,
	}
}

func (ss *SpecialtyService) FindSpecialties(ctx context.Context, includeInactive bool) (domain.Specialties, error) {
	return ss.specialtyRepository.FetchSpecialties(ctx, includeInactive)
}

func (ss *SpecialtyService) FindSpecialtyByID(ctx context.Context, id domain.ID) (*domain.Specialty, error) {
	return ss.specialtyRepository.FetchSpecialtyByID(ctx, id)
}

func (ss *SpecialtyService) CreateSpecialty(ctx context.Context, name string, description *string) (*domain.Specialty, error) {
	name = normalizeSpecialtyName(name)
	if errs := validateSpecialtyName(name); len(errs) > 0 {
		return nil, validationFailed(errs...)
	}

	sRet, err := ss.specialtyRepository.CreateSpecialty(ctx, domain.Specialty{
		Name:        name,
		Description: description,
		Active:      true,
	})
	if err != nil {
		if errors.Is(err, specialtyDB.ErrNameAlreadyExists) {
			return nil, validationFailed("Name has already been taken")
		}
		return nil, err
	}

	ss.publish(mq.ActionCreated, sRet)
	ss.mCounter.WithLabelValues("specialty_created_total").Inc()

	return sRet, nil
}

func (ss *SpecialtyService) UpdateSpecialty(ctx context.Context, id domain.ID, upd domain.Update) (*domain.Specialty, error) {
	s, err := ss.specialtyRepository.FetchSpecialtyByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}

	if upd.Name != nil {
		name := normalizeSpecialtyName(*upd.Name)
		if errs := validateSpecialtyName(name); len(errs) > 0 {
			return nil, validationFailed(errs...)
		}
		s.Name = name
	}
	if upd.Description != nil {
		s.Description = upd.Description
	}
	if upd.Active != nil {
		s.Active = *upd.Active
	}

	sRet, err := ss.specialtyRepository.UpdateSpecialty(ctx, *s)
	if err != nil {
		if errors.Is(err, specialtyDB.ErrNameAlreadyExists) {
			return nil, validationFailed("Name has already been taken")
		}
		return nil, err
	}

	ss.publish(mq.ActionUpdated, sRet)
	ss.mCounter.WithLabelValues("specialty_updated_total").Inc()

	return sRet, nil
}

// DeactivateSpecialty refuses while professionals still reference the
// specialty; detach them first. Deactivating twice is a no-op.
func (ss *SpecialtyService) DeactivateSpecialty(ctx context.Context, id domain.ID) (*domain.Specialty, error) {
	s, err := ss.specialtyRepository.FetchSpecialtyByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}

	linked, err := ss.specialtyRepository.HasProfessionals(ctx, id)
	if err != nil {
		return nil, err
	}
	if linked {
		return nil, validationFailed("Cannot deactivate a specialty with linked professionals")
	}

	if !s.Active {
		return s, nil
	}

	s.Active = false
	sRet, err := ss.specialtyRepository.UpdateSpecialty(ctx, *s)
	if err != nil {
		return nil, err
	}

	ss.publish(mq.ActionDeleted, sRet)
	ss.mCounter.WithLabelValues("specialty_deactivated_total").Inc()

	return sRet, nil
}

func (ss *SpecialtyService) publish(action string, s *domain.Specialty) {
	if s == nil {
		return
	}
	ss.mq.GetInputChan() <- mq.Event{
		Id:       uuid.New(),
		TS:       time.Now(),
		Action:   action,
		Entity:   "specialty",
		EntityID: strconv.FormatUint(uint64(s.ID), 10),
		Payload:  specialty.ToResponseSpecialty(*s),
	}
}
