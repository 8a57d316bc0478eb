package graph

import (
	"github.com/graphql-go/graphql"

	professionalDomain "clinic-office-api/internal/domain/professional"
	specialtyDomain "clinic-office-api/internal/domain/specialty"
	userDomain "clinic-office-api/internal/domain/user"
	professionalDTO "clinic-office-api/internal/interface/api/graph/dto/professional"
)

func (r *Resolver) professionalQueryFields() graphql.Fields {
	return graphql.Fields{
		"professionals": &graphql.Field{
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(professionalType))),
			Args: graphql.FieldConfigArgument{
				"includeInactive": &graphql.ArgumentConfig{
					Type:         graphql.Boolean,
					DefaultValue: false,
				},
			},
			Resolve: r.resolveProfessionals,
		},
		"professional": &graphql.Field{
			Type: professionalType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: r.resolveProfessional,
		},
		"professionalsBySpecialty": &graphql.Field{
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(professionalType))),
			Args: graphql.FieldConfigArgument{
				"specialty": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: r.resolveProfessionalsBySpecialty,
		},
	}
}

func (r *Resolver) professionalMutationFields() graphql.Fields {
	return graphql.Fields{
		"createProfessional": &graphql.Field{
			Type: graphql.NewNonNull(professionalPayload),
			Args: graphql.FieldConfigArgument{
				"userId":              &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"specialtyId":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"councilRegistration": &graphql.ArgumentConfig{Type: graphql.String},
				"bio":                 &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: r.resolveCreateProfessional,
		},
		"updateProfessional": &graphql.Field{
			Type: graphql.NewNonNull(professionalPayload),
			Args: graphql.FieldConfigArgument{
				"id":                  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"specialtyId":         &graphql.ArgumentConfig{Type: graphql.ID},
				"councilRegistration": &graphql.ArgumentConfig{Type: graphql.String},
				"bio":                 &graphql.ArgumentConfig{Type: graphql.String},
				"active":              &graphql.ArgumentConfig{Type: graphql.Boolean},
			},
			Resolve: r.resolveUpdateProfessional,
		},
		"deleteProfessional": &graphql.Field{
			Type: graphql.NewNonNull(deletePayload),
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: r.resolveDeleteProfessional,
		},
	}
}

func (r *Resolver) resolveProfessionals(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAuthenticated(p); err != nil {
		return nil, err
	}

	ps, err := r.professionalService.FindProfessionals(p.Context, argBool(p, "includeInactive"))
	if err != nil {
		return nil, r.internal("professionals", err)
	}

	return professionalDTO.ToResponseProfessionals(ps), nil
}

func (r *Resolver) resolveProfessional(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAuthenticated(p); err != nil {
		return nil, err
	}

	id, err := argID(p, "id")
	if err != nil {
		return nil, err
	}

	pr, err := r.professionalService.FindProfessionalByID(p.Context, professionalDomain.ID(id))
	if err != nil {
		return nil, r.internal("professional", err)
	}
	if pr == nil {
		return nil, nil
	}

	return professionalDTO.ToResponseProfessional(*pr), nil
}

func (r *Resolver) resolveProfessionalsBySpecialty(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAuthenticated(p); err != nil {
		return nil, err
	}

	ps, err := r.professionalService.FindProfessionalsBySpecialty(p.Context, argString(p, "specialty"))
	if err != nil {
		return nil, r.internal("professionalsBySpecialty", err)
	}

	return professionalDTO.ToResponseProfessionals(ps), nil
}

func (r *Resolver) resolveCreateProfessional(p graphql.ResolveParams) (interface{}, error) {
	cu, err := r.requireAuthenticated(p)
	if err != nil {
		return nil, err
	}
	if !cu.IsAdmin() {
		return payload("professional", nil, "Only admins can create professionals"), nil
	}

	userID, err := argID(p, "userId")
	if err != nil {
		return nil, err
	}
	specialtyID, err := argID(p, "specialtyId")
	if err != nil {
		return nil, err
	}

	pr, err := r.professionalService.CreateProfessional(p.Context, professionalDomain.Professional{
		UserID:              userDomain.ID(userID),
		SpecialtyID:         specialtyDomain.ID(specialtyID),
		CouncilRegistration: optString(p, "councilRegistration"),
		Bio:                 optString(p, "bio"),
	})
	if err != nil {
		return r.validationPayload("createProfessional", "professional", err)
	}

	return payload("professional", professionalDTO.ToResponseProfessional(*pr)), nil
}

// resolveUpdateProfessional lets admins edit anyone; professionals may only
// touch their own profile.
func (r *Resolver) resolveUpdateProfessional(p graphql.ResolveParams) (interface{}, error) {
	cu, err := r.requireAuthenticated(p)
	if err != nil {
		return nil, err
	}

	id, err := argID(p, "id")
	if err != nil {
		return nil, err
	}

	existing, err := r.professionalService.FindProfessionalByID(p.Context, professionalDomain.ID(id))
	if err != nil {
		return nil, r.internal("updateProfessional", err)
	}
	if existing == nil {
		return payload("professional", nil, "Professional not found"), nil
	}
	if !cu.IsAdmin() && existing.UserID != cu.ID {
		return payload("professional", nil, "Not authorized to update this professional"), nil
	}

	upd := professionalDomain.Update{
		CouncilRegistration: optString(p, "councilRegistration"),
		Bio:                 optString(p, "bio"),
		Active:              optBool(p, "active"),
	}
	if raw, ok := p.Args["specialtyId"].(string); ok && raw != "" {
		sid, err := argID(p, "specialtyId")
		if err != nil {
			return nil, err
		}
		s := specialtyDomain.ID(sid)
		upd.SpecialtyID = &s
	}

	pr, err := r.professionalService.UpdateProfessional(p.Context, professionalDomain.ID(id), upd)
	if err != nil {
		return r.validationPayload("updateProfessional", "professional", err)
	}
	if pr == nil {
		return payload("professional", nil, "Professional not found"), nil
	}

	return payload("professional", professionalDTO.ToResponseProfessional(*pr)), nil
}

func (r *Resolver) resolveDeleteProfessional(p graphql.ResolveParams) (interface{}, error) {
	cu, err := r.requireAuthenticated(p)
	if err != nil {
		return nil, err
	}
	if !cu.IsAdmin() {
		return payload("success", false, "Only admins can delete professionals"), nil
	}

	id, err := argID(p, "id")
	if err != nil {
		return nil, err
	}

	pr, err := r.professionalService.DeactivateProfessional(p.Context, professionalDomain.ID(id))
	if err != nil {
		return r.validationDeletePayload("deleteProfessional", err)
	}
	if pr == nil {
		return payload("success", false, "Professional not found"), nil
	}

	return payload("success", true), nil
}
