package services

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"

	patientDomain "clinic-office-api/internal/domain/patient"
	professionalDomain "clinic-office-api/internal/domain/professional"
	specialtyDomain "clinic-office-api/internal/domain/specialty"
	tokenDomain "clinic-office-api/internal/domain/token"
	userDomain "clinic-office-api/internal/domain/user"
	"clinic-office-api/internal/infrastructure/mq"
)

var errNotUsed = errors.New("not used")

type FakeUserRepository struct {
	FetchUserByIDFunc    func(ctx context.Context, id userDomain.ID) (*userDomain.User, error)
	FetchUserByEmailFunc func(ctx context.Context, email string) (*userDomain.User, error)
	FetchUsersFunc       func(ctx context.Context) (userDomain.Users, error)
	CreateUserFunc       func(ctx context.Context, req userDomain.User) (*userDomain.User, error)
	UpdateUserFunc       func(ctx context.Context, req userDomain.User) (*userDomain.User, error)
	UpdateUserRoleFunc   func(ctx context.Context, id userDomain.ID, role userDomain.Role) (*userDomain.User, error)
	DeleteUserFunc       func(ctx context.Context, id userDomain.ID) (*userDomain.User, error)
}

func (f *FakeUserRepository) FetchUserByID(ctx context.Context, id userDomain.ID) (*userDomain.User, error) {
	if f.FetchUserByIDFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchUserByIDFunc(ctx, id)
}
func (f *FakeUserRepository) FetchUserByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	if f.FetchUserByEmailFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchUserByEmailFunc(ctx, email)
}
func (f *FakeUserRepository) FetchUsers(ctx context.Context) (userDomain.Users, error) {
	if f.FetchUsersFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchUsersFunc(ctx)
}
func (f *FakeUserRepository) CreateUser(ctx context.Context, req userDomain.User) (*userDomain.User, error) {
	if f.CreateUserFunc == nil {
		return nil, errNotUsed
	}
	return f.CreateUserFunc(ctx, req)
}
func (f *FakeUserRepository) UpdateUser(ctx context.Context, req userDomain.User) (*userDomain.User, error) {
	if f.UpdateUserFunc == nil {
		return nil, errNotUsed
	}
	return f.UpdateUserFunc(ctx, req)
}
func (f *FakeUserRepository) UpdateUserRole(ctx context.Context, id userDomain.ID, role userDomain.Role) (*userDomain.User, error) {
	if f.UpdateUserRoleFunc == nil {
		return nil, errNotUsed
	}
	return f.UpdateUserRoleFunc(ctx, id, role)
}
func (f *FakeUserRepository) DeleteUser(ctx context.Context, id userDomain.ID) (*userDomain.User, error) {
	if f.DeleteUserFunc == nil {
		return nil, errNotUsed
	}
	return f.DeleteUserFunc(ctx, id)
}

type FakePatientRepository struct {
	FetchPatientsFunc     func(ctx context.Context, includeDeleted bool) (patientDomain.Patients, error)
	FetchPatientByIDFunc  func(ctx context.Context, id patientDomain.ID) (*patientDomain.Patient, error)
	CreatePatientFunc     func(ctx context.Context, req patientDomain.Patient) (*patientDomain.Patient, error)
	UpdatePatientFunc     func(ctx context.Context, req patientDomain.Patient) (*patientDomain.Patient, error)
	SoftDeletePatientFunc func(ctx context.Context, id patientDomain.ID) (*patientDomain.Patient, error)
	RestorePatientFunc    func(ctx context.Context, id patientDomain.ID) (*patientDomain.Patient, error)
}

func (f *FakePatientRepository) FetchPatients(ctx context.Context, includeDeleted bool) (patientDomain.Patients, error) {
	if f.FetchPatientsFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchPatientsFunc(ctx, includeDeleted)
}
func (f *FakePatientRepository) FetchPatientByID(ctx context.Context, id patientDomain.ID) (*patientDomain.Patient, error) {
	if f.FetchPatientByIDFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchPatientByIDFunc(ctx, id)
}
func (f *FakePatientRepository) CreatePatient(ctx context.Context, req patientDomain.Patient) (*patientDomain.Patient, error) {
	if f.CreatePatientFunc == nil {
		return nil, errNotUsed
	}
	return f.CreatePatientFunc(ctx, req)
}
func (f *FakePatientRepository) UpdatePatient(ctx context.Context, req patientDomain.Patient) (*patientDomain.Patient, error) {
	if f.UpdatePatientFunc == nil {
		return nil, errNotUsed
	}
	return f.UpdatePatientFunc(ctx, req)
}
func (f *FakePatientRepository) SoftDeletePatient(ctx context.Context, id patientDomain.ID) (*patientDomain.Patient, error) {
	if f.SoftDeletePatientFunc == nil {
		return nil, errNotUsed
	}
	return f.SoftDeletePatientFunc(ctx, id)
}
func (f *FakePatientRepository) RestorePatient(ctx context.Context, id patientDomain.ID) (*patientDomain.Patient, error) {
	if f.RestorePatientFunc == nil {
		return nil, errNotUsed
	}
	return f.RestorePatientFunc(ctx, id)
}

type FakeProfessionalRepository struct {
	FetchProfessionalsFunc            func(ctx context.Context, includeInactive bool) (professionalDomain.Professionals, error)
	FetchProfessionalByIDFunc         func(ctx context.Context, id professionalDomain.ID) (*professionalDomain.Professional, error)
	FetchProfessionalsBySpecialtyFunc func(ctx context.Context, specialtyName string) (professionalDomain.Professionals, error)
	CreateProfessionalFunc            func(ctx context.Context, req professionalDomain.Professional) (*professionalDomain.Professional, error)
	UpdateProfessionalFunc            func(ctx context.Context, req professionalDomain.Professional) (*professionalDomain.Professional, error)
}

func (f *FakeProfessionalRepository) FetchProfessionals(ctx context.Context, includeInactive bool) (professionalDomain.Professionals, error) {
	if f.FetchProfessionalsFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchProfessionalsFunc(ctx, includeInactive)
}
func (f *FakeProfessionalRepository) FetchProfessionalByID(ctx context.Context, id professionalDomain.ID) (*professionalDomain.Professional, error) {
	if f.FetchProfessionalByIDFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchProfessionalByIDFunc(ctx, id)
}
func (f *FakeProfessionalRepository) FetchProfessionalsBySpecialty(ctx context.Context, specialtyName string) (professionalDomain.Professionals, error) {
	if f.FetchProfessionalsBySpecialtyFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchProfessionalsBySpecialtyFunc(ctx, specialtyName)
}
func (f *FakeProfessionalRepository) CreateProfessional(ctx context.Context, req professionalDomain.Professional) (*professionalDomain.Professional, error) {
	if f.CreateProfessionalFunc == nil {
		return nil, errNotUsed
	}
	return f.CreateProfessionalFunc(ctx, req)
}
func (f *FakeProfessionalRepository) UpdateProfessional(ctx context.Context, req professionalDomain.Professional) (*professionalDomain.Professional, error) {
	if f.UpdateProfessionalFunc == nil {
		return nil, errNotUsed
	}
	return f.UpdateProfessionalFunc(ctx, req)
}

type FakeSpecialtyRepository struct {
	FetchSpecialtiesFunc   func(ctx context.Context, includeInactive bool) (specialtyDomain.Specialties, error)
	FetchSpecialtyByIDFunc func(ctx context.Context, id specialtyDomain.ID) (*specialtyDomain.Specialty, error)
	CreateSpecialtyFunc    func(ctx context.Context, req specialtyDomain.Specialty) (*specialtyDomain.Specialty, error)
	UpdateSpecialtyFunc    func(ctx context.Context, req specialtyDomain.Specialty) (*specialtyDomain.Specialty, error)
	HasProfessionalsFunc   func(ctx context.Context, id specialtyDomain.ID) (bool, error)
}

func (f *FakeSpecialtyRepository) FetchSpecialties(ctx context.Context, includeInactive bool) (specialtyDomain.Specialties, error) {
	if f.FetchSpecialtiesFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchSpecialtiesFunc(ctx, includeInactive)
}
func (f *FakeSpecialtyRepository) FetchSpecialtyByID(ctx context.Context, id specialtyDomain.ID) (*specialtyDomain.Specialty, error) {
	if f.FetchSpecialtyByIDFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchSpecialtyByIDFunc(ctx, id)
}
func (f *FakeSpecialtyRepository) CreateSpecialty(ctx context.Context, req specialtyDomain.Specialty) (*specialtyDomain.Specialty, error) {
	if f.CreateSpecialtyFunc == nil {
		return nil, errNotUsed
	}
	return f.CreateSpecialtyFunc(ctx, req)
}
func (f *FakeSpecialtyRepository) UpdateSpecialty(ctx context.Context, req specialtyDomain.Specialty) (*specialtyDomain.Specialty, error) {
	if f.UpdateSpecialtyFunc == nil {
		return nil, errNotUsed
	}
	return f.UpdateSpecialtyFunc(ctx, req)
}
func (f *FakeSpecialtyRepository) HasProfessionals(ctx context.Context, id specialtyDomain.ID) (bool, error) {
	if f.HasProfessionalsFunc == nil {
		return false, errNotUsed
	}
	return f.HasProfessionalsFunc(ctx, id)
}

type FakeTokenRepository struct {
	RevokeFunc    func(ctx context.Context, t tokenDomain.RevokedToken) error
	IsRevokedFunc func(ctx context.Context, jti string) (bool, error)
}

func (f *FakeTokenRepository) Revoke(ctx context.Context, t tokenDomain.RevokedToken) error {
	if f.RevokeFunc == nil {
		return errNotUsed
	}
	return f.RevokeFunc(ctx, t)
}
func (f *FakeTokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if f.IsRevokedFunc == nil {
		return false, errNotUsed
	}
	return f.IsRevokedFunc(ctx, jti)
}

// FakeMQ buffers published events so tests can assert on them.
type FakeMQ struct {
	in chan mq.Event
}

func NewFakeMQ() *FakeMQ {
	return &FakeMQ{in: make(chan mq.Event, 16)}
}

func (f *FakeMQ) Connect(ctx context.Context, dsn string) error { return nil }
func (f *FakeMQ) Init() error                                   { return nil }
func (f *FakeMQ) PublisherWorker(ctx context.Context)           {}
func (f *FakeMQ) GetInputChan() chan mq.Event                   { return f.in }
func (f *FakeMQ) GetConn() *amqp091.Connection                  { return nil }

// Events drains everything published so far.
func (f *FakeMQ) Events() []mq.Event {
	var out []mq.Event
	for {
		select {
		case e := <-f.in:
			out = append(out, e)
		default:
			return out
		}
	}
}

// testCounter avoids the global prometheus registry so parallel test
// packages never collide on registration.
func testCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "clinicoffice",
			Name:      "general_counters",
		},
		[]string{"result"})
}
