package graph

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/graphql-go/graphql"
	"go.uber.org/zap"

	"clinic-office-api/internal/application/ports"
	"clinic-office-api/internal/application/services"
	userDomain "clinic-office-api/internal/domain/user"
)

// errUnauthenticated aborts the operation as a top-level execution error; the
// message is part of the API contract.
var errUnauthenticated = errors.New("You need to be authenticated to access this resource")

var errInternal = errors.New("internal server error")

type Resolver struct {
	logger *zap.Logger

	authService         ports.Auth
	userService         ports.UserService
	patientService      ports.PatientService
	professionalService ports.ProfessionalService
	specialtyService    ports.SpecialtyService
}

func NewResolver(
	logger *zap.Logger,
	authService ports.Auth,
	userService ports.UserService,
	patientService ports.PatientService,
	professionalService ports.ProfessionalService,
	specialtyService ports.SpecialtyService,
) *Resolver {
	return &Resolver{
		logger:              logger,
		authService:         authService,
		userService:         userService,
		patientService:      patientService,
		professionalService: professionalService,
		specialtyService:    specialtyService,
	}
}

// requireAuthenticated is the only guard raised as an execution error; the
// admin and ownership checks return payload errors instead.
func (r *Resolver) requireAuthenticated(p graphql.ResolveParams) (*userDomain.User, error) {
	u, ok := userDomain.FromContext(p.Context)
	if !ok {
		return nil, errUnauthenticated
	}

	return u, nil
}

// internal logs the real cause and hands the caller an opaque error.
func (r *Resolver) internal(op string, err error) error {
	r.logger.Error(op+" failed", zap.Error(err))
	return errInternal
}

// payload shapes the standard mutation result. Validation messages ride the
// payload; an empty errors list always serializes as [].
func payload(field string, value interface{}, errs ...string) map[string]interface{} {
	if errs == nil {
		errs = []string{}
	}

	return map[string]interface{}{
		field:    value,
		"errors": errs,
	}
}

// validationPayload maps a service error onto the payload when it is a
// validation failure; everything else stays an error.
func (r *Resolver) validationPayload(op, field string, err error) (interface{}, error) {
	if msgs, ok := services.AsValidationError(err); ok {
		return payload(field, nil, msgs...), nil
	}

	return nil, r.internal(op, err)
}

func (r *Resolver) validationDeletePayload(op string, err error) (interface{}, error) {
	if msgs, ok := services.AsValidationError(err); ok {
		return payload("success", false, msgs...), nil
	}

	return nil, r.internal(op, err)
}

func argID(p graphql.ResolveParams, key string) (uint64, error) {
	raw, _ := p.Args[key].(string)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}

	return id, nil
}

func argString(p graphql.ResolveParams, key string) string {
	v, _ := p.Args[key].(string)
	return v
}

func argBool(p graphql.ResolveParams, key string) bool {
	v, _ := p.Args[key].(bool)
	return v
}

func optString(p graphql.ResolveParams, key string) *string {
	if v, ok := p.Args[key].(string); ok {
		return &v
	}
	return nil
}

func optBool(p graphql.ResolveParams, key string) *bool {
	if v, ok := p.Args[key].(bool); ok {
		return &v
	}
	return nil
}

func optTime(p graphql.ResolveParams, key string) *time.Time {
	if v, ok := p.Args[key].(time.Time); ok {
		return &v
	}
	return nil
}
