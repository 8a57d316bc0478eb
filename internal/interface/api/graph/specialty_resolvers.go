package graph

import (
	"github.com/graphql-go/graphql"

	specialtyDomain "clinic-office-api/internal/domain/specialty"
	specialtyDTO "clinic-office-api/internal/interface/api/graph/dto/specialty"
)

func (r *Resolver) specialtyQueryFields() graphql.Fields {
	return graphql.Fields{
		"specialties": &graphql.Field{
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(specialtyType))),
			Args: graphql.FieldConfigArgument{
				"includeInactive": &graphql.ArgumentConfig{
					Type:         graphql.Boolean,
					DefaultValue: false,
				},
			},
			Resolve: r.resolveSpecialties,
		},
		"specialty": &graphql.Field{
			Type: specialtyType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: r.resolveSpecialty,
		},
	}
}

func (r *Resolver) specialtyMutationFields() graphql.Fields {
	return graphql.Fields{
		"createSpecialty": &graphql.Field{
			Type: graphql.NewNonNull(specialtyPayload),
			Args: graphql.FieldConfigArgument{
				"name":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"description": &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: r.resolveCreateSpecialty,
		},
		"updateSpecialty": &graphql.Field{
			Type: graphql.NewNonNull(specialtyPayload),
			Args: graphql.FieldConfigArgument{
				"id":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"name":        &graphql.ArgumentConfig{Type: graphql.String},
				"description": &graphql.ArgumentConfig{Type: graphql.String},
				"active":      &graphql.ArgumentConfig{Type: graphql.Boolean},
			},
			Resolve: r.resolveUpdateSpecialty,
		},
		"deleteSpecialty": &graphql.Field{
			Type: graphql.NewNonNull(deletePayload),
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: r.resolveDeleteSpecialty,
		},
	}
}

func (r *Resolver) resolveSpecialties(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAuthenticated(p); err != nil {
		return nil, err
	}

	ss, err := r.specialtyService.FindSpecialties(p.Context, argBool(p, "includeInactive"))
	if err != nil {
		return nil, r.internal("specialties", err)
	}

	return specialtyDTO.ToResponseSpecialties(ss), nil
}

func (r *Resolver) resolveSpecialty(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAuthenticated(p); err != nil {
		return nil, err
	}

	id, err := argID(p, "id")
	if err != nil {
		return nil, err
	}

	s, err := r.specialtyService.FindSpecialtyByID(p.Context, specialtyDomain.ID(id))
	if err != nil {
		return nil, r.internal("specialty", err)
	}
	if s == nil {
		return nil, nil
	}

	return specialtyDTO.ToResponseSpecialty(*s), nil
}

func (r *Resolver) resolveCreateSpecialty(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAuthenticated(p); err != nil {
		return nil, err
	}

	s, err := r.specialtyService.CreateSpecialty(p.Context, argString(p, "name"), optString(p, "description"))
	if err != nil {
		return r.validationPayload("createSpecialty", "specialty", err)
	}

	return payload("specialty", specialtyDTO.ToResponseSpecialty(*s)), nil
}

func (r *Resolver) resolveUpdateSpecialty(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAuthenticated(p); err != nil {
		return nil, err
	}

	id, err := argID(p, "id")
	if err != nil {
		return nil, err
	}

	s, err := r.specialtyService.UpdateSpecialty(p.Context, specialtyDomain.ID(id), specialtyDomain.Update{
		Name:        optString(p, "name"),
		Description: optString(p, "description"),
		Active:      optBool(p, "active"),
	})
	if err != nil {
		return r.validationPayload("updateSpecialty", "specialty", err)
	}
	if s == nil {
		return payload("specialty", nil, "Specialty not found"), nil
	}

	return payload("specialty", specialtyDTO.ToResponseSpecialty(*s)), nil
}

func (r *Resolver) resolveDeleteSpecialty(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAuthenticated(p); err != nil {
		return nil, err
	}

	id, err := argID(p, "id")
	if err != nil {
		return nil, err
	}

	s, err := r.specialtyService.DeactivateSpecialty(p.Context, specialtyDomain.ID(id))
	if err != nil {
		return r.validationDeletePayload("deleteSpecialty", err)
	}
	if s == nil {
		return payload("success", false, "Specialty not found"), nil
	}

	return payload("success", true), nil
}
