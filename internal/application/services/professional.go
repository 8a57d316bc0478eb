package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"clinic-office-api/internal/application/ports"
	domain "clinic-office-api/internal/domain/professional"
	specialtyDomain "clinic-office-api/internal/domain/specialty"
	userDomain "clinic-office-api/internal/domain/user"
	professionalDB "clinic-office-api/internal/infrastructure/db/postgres/professional"
	"clinic-office-api/internal/infrastructure/mq"
	"clinic-office-api/internal/interface/api/graph/dto/professional"
)

type ProfessionalService struct {
	professionalRepository domain.Repository
	userRepository         userDomain.Repository
	specialtyRepository    specialtyDomain.Repository
	mq                     ports.RabbitMQ
	mCounter               *prometheus.CounterVec
}

func NewProfessionalService(
	professionalRepository domain.Repository,
	userRepository userDomain.Repository,
	specialtyRepository specialtyDomain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.ProfessionalService {
	return &ProfessionalService{
		professionalRepository: professionalRepository,
		userRepository:         userRepository,
		specialtyRepository:    specialtyRepository,
		mq:                     mq,
		mCounter:               mCounter,
	}
}

func (p *ProfessionalService) FindProfessionals(ctx context.Context, includeInactive bool) (domain.Professionals, error) {
	return p.professionalRepository.FetchProfessionals(ctx, includeInactive)
}

func (p *ProfessionalService) FindProfessionalByID(ctx context.Context, id domain.ID) (*domain.Professional, error) {
	return p.professionalRepository.FetchProfessionalByID(ctx, id)
}

func (p *ProfessionalService) FindProfessionalsBySpecialty(ctx context.Context, specialtyName string) (domain.Professionals, error) {
	return p.professionalRepository.FetchProfessionalsBySpecialty(ctx, specialtyName)
}

// CreateProfessional links a user to a specialty. A user without the
// professional role is upgraded on the spot.
func (p *ProfessionalService) CreateProfessional(ctx context.Context, req domain.Professional) (*domain.Professional, error) {
	u, err := p.userRepository.FetchUserByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, validationFailed("User not found")
	}

	s, err := p.specialtyRepository.FetchSpecialtyByID(ctx, req.SpecialtyID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, validationFailed("Specialty must exist")
	}

	if !u.IsProfessional() {
		if _, err = p.userRepository.UpdateUserRole(ctx, u.ID, userDomain.RoleProfessional); err != nil {
			return nil, err
		}
	}

	req.Active = true
	pRet, err := p.professionalRepository.CreateProfessional(ctx, req)
	if err != nil {
		return nil, mapProfessionalErr(err)
	}

	p.publish(mq.ActionCreated, pRet)
	p.mCounter.WithLabelValues("professional_created_total").Inc()

	return pRet, nil
}

func (p *ProfessionalService) UpdateProfessional(ctx context.Context, id domain.ID, upd domain.Update) (*domain.Professional, error) {
	existing, err := p.professionalRepository.FetchProfessionalByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if upd.SpecialtyID != nil {
		s, err := p.specialtyRepository.FetchSpecialtyByID(ctx, *upd.SpecialtyID)
		if err != nil {
			return nil, err
		}
		if s == nil {
			return nil, validationFailed("Specialty must exist")
		}
		existing.SpecialtyID = *upd.SpecialtyID
	}
	if upd.CouncilRegistration != nil {
		existing.CouncilRegistration = upd.CouncilRegistration
	}
	if upd.Bio != nil {
		existing.Bio = upd.Bio
	}
	if upd.Active != nil {
		existing.Active = *upd.Active
	}

	pRet, err := p.professionalRepository.UpdateProfessional(ctx, *existing)
	if err != nil {
		return nil, mapProfessionalErr(err)
	}

	p.publish(mq.ActionUpdated, pRet)
	p.mCounter.WithLabelValues("professional_updated_total").Inc()

	return pRet, nil
}

// DeactivateProfessional is the delete semantics for professionals: rows are
// never removed, only flagged inactive. Deactivating twice is a no-op.
func (p *ProfessionalService) DeactivateProfessional(ctx context.Context, id domain.ID) (*domain.Professional, error) {
	existing, err := p.professionalRepository.FetchProfessionalByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if !existing.Active {
		return existing, nil
	}

	existing.Active = false
	pRet, err := p.professionalRepository.UpdateProfessional(ctx, *existing)
	if err != nil {
		return nil, err
	}

	p.publish(mq.ActionDeleted, pRet)
	p.mCounter.WithLabelValues("professional_deactivated_total").Inc()

	return pRet, nil
}

func mapProfessionalErr(err error) error {
	switch {
	case errors.Is(err, professionalDB.ErrUserAlreadyTaken):
		return validationFailed("User has already been taken")
	case errors.Is(err, professionalDB.ErrRegistrationAlreadyTaken):
		return validationFailed("Council registration has already been taken")
	}
	return err
}

func (p *ProfessionalService) publish(action string, pr *domain.Professional) {
	if pr == nil {
		return
	}
	p.mq.GetInputChan() <- mq.Event{
		Id:       uuid.New(),
		TS:       time.Now(),
		Action:   action,
		Entity:   "professional",
		EntityID: strconv.FormatUint(uint64(pr.ID), 10),
		Payload:  professional.ToResponseProfessional(*pr),
	}
}
