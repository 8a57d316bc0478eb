package graph

import (
	"github.com/graphql-go/graphql"

	patientDomain "clinic-office-api/internal/domain/patient"
	patientDTO "clinic-office-api/internal/interface/api/graph/dto/patient"
)

func (r *Resolver) patientQueryFields() graphql.Fields {
	return graphql.Fields{
		"patients": &graphql.Field{
			Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(patientType))),
			Resolve: r.resolvePatients,
		},
		"patientsWithDeleted": &graphql.Field{
			Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(patientType))),
			Resolve: r.resolvePatientsWithDeleted,
		},
		"patient": &graphql.Field{
			Type: patientType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: r.resolvePatient,
		},
	}
}

func (r *Resolver) patientMutationFields() graphql.Fields {
	return graphql.Fields{
		"createPatient": &graphql.Field{
			Type: graphql.NewNonNull(patientPayload),
			Args: graphql.FieldConfigArgument{
				"firstName": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"lastName":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"birthdate": &graphql.ArgumentConfig{Type: graphql.DateTime},
				"email":     &graphql.ArgumentConfig{Type: graphql.String},
				"phone":     &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: r.resolveCreatePatient,
		},
		"updatePatient": &graphql.Field{
			Type: graphql.NewNonNull(patientPayload),
			Args: graphql.FieldConfigArgument{
				"id":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"firstName": &graphql.ArgumentConfig{Type: graphql.String},
				"lastName":  &graphql.ArgumentConfig{Type: graphql.String},
				"birthdate": &graphql.ArgumentConfig{Type: graphql.DateTime},
				"email":     &graphql.ArgumentConfig{Type: graphql.String},
				"phone":     &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: r.resolveUpdatePatient,
		},
		"deletePatient": &graphql.Field{
			Type: graphql.NewNonNull(deletePayload),
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: r.resolveDeletePatient,
		},
		"restorePatient": &graphql.Field{
			Type: graphql.NewNonNull(patientPayload),
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: r.resolveRestorePatient,
		},
	}
}

func (r *Resolver) resolvePatients(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAuthenticated(p); err != nil {
		return nil, err
	}

	ps, err := r.patientService.FindPatients(p.Context, false)
	if err != nil {
		return nil, r.internal("patients", err)
	}

	return patientDTO.ToResponsePatients(ps), nil
}

func (r *Resolver) resolvePatientsWithDeleted(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAuthenticated(p); err != nil {
		return nil, err
	}

	ps, err := r.patientService.FindPatients(p.Context, true)
	if err != nil {
		return nil, r.internal("patientsWithDeleted", err)
	}

	return patientDTO.ToResponsePatients(ps), nil
}

func (r *Resolver) resolvePatient(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAuthenticated(p); err != nil {
		return nil, err
	}

	id, err := argID(p, "id")
	if err != nil {
		return nil, err
	}

	pt, err := r.patientService.FindPatientByID(p.Context, patientDomain.ID(id))
	if err != nil {
		return nil, r.internal("patient", err)
	}
	if pt == nil {
		return nil, nil
	}

	return patientDTO.ToResponsePatient(*pt), nil
}

func (r *Resolver) resolveCreatePatient(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAuthenticated(p); err != nil {
		return nil, err
	}

	pt, err := r.patientService.CreatePatient(p.Context, patientDomain.Patient{
		FirstName: argString(p, "firstName"),
		LastName:  argString(p, "lastName"),
		Birthdate: optTime(p, "birthdate"),
		Email:     optString(p, "email"),
		Phone:     optString(p, "phone"),
	})
	if err != nil {
		return r.validationPayload("createPatient", "patient", err)
	}

	return payload("patient", patientDTO.ToResponsePatient(*pt)), nil
}

func (r *Resolver) resolveUpdatePatient(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAuthenticated(p); err != nil {
		return nil, err
	}

	id, err := argID(p, "id")
	if err != nil {
		return nil, err
	}

	pt, err := r.patientService.UpdatePatient(p.Context, patientDomain.ID(id), patientDomain.Update{
		FirstName: optString(p, "firstName"),
		LastName:  optString(p, "lastName"),
		Birthdate: optTime(p, "birthdate"),
		Email:     optString(p, "email"),
		Phone:     optString(p, "phone"),
	})
	if err != nil {
		return r.validationPayload("updatePatient", "patient", err)
	}
	if pt == nil {
		return payload("patient", nil, "Patient not found"), nil
	}

	return payload("patient", patientDTO.ToResponsePatient(*pt)), nil
}

func (r *Resolver) resolveDeletePatient(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAuthenticated(p); err != nil {
		return nil, err
	}

	id, err := argID(p, "id")
	if err != nil {
		return nil, err
	}

	pt, err := r.patientService.DeletePatient(p.Context, patientDomain.ID(id))
	if err != nil {
		return r.validationDeletePayload("deletePatient", err)
	}
	if pt == nil {
		return payload("success", false, "Patient not found"), nil
	}

	return payload("success", true), nil
}

func (r *Resolver) resolveRestorePatient(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAuthenticated(p); err != nil {
		return nil, err
	}

	id, err := argID(p, "id")
	if err != nil {
		return nil, err
	}

	pt, err := r.patientService.RestorePatient(p.Context, patientDomain.ID(id))
	if err != nil {
		return r.validationPayload("restorePatient", "patient", err)
	}
	if pt == nil {
		return payload("patient", nil, "Patient not found or not deleted"), nil
	}

	return payload("patient", patientDTO.ToResponsePatient(*pt)), nil
}
