package graph

import (
	"github.com/graphql-go/graphql"
)

// Output types resolve straight off the dto structs: the default resolver
// matches fields by their json tags.

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":              &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"email":           &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"admin":           &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"role":            &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"themePreference": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"createdAt":       &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
	},
})

var patientType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Patient",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"firstName": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"lastName":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"birthdate": &graphql.Field{Type: graphql.DateTime},
		"email":     &graphql.Field{Type: graphql.String},
		"phone":     &graphql.Field{Type: graphql.String},
		"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"deletedAt": &graphql.Field{Type: graphql.DateTime},
	},
})

var professionalType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Professional",
	Fields: graphql.Fields{
		"id":                  &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"userId":              &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"specialtyId":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"councilRegistration": &graphql.Field{Type: graphql.String},
		"bio":                 &graphql.Field{Type: graphql.String},
		"active":              &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"createdAt":           &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
	},
})

var specialtyType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Specialty",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.Field{Type: graphql.String},
		"active":      &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"createdAt":   &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
	},
})

func errorsField() *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String))),
	}
}

// payloadType builds the standard mutation payload: the entity (nullable, nil
// on failure) plus the errors list.
func payloadType(name, field string, t graphql.Output) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: name,
		Fields: graphql.Fields{
			field:    &graphql.Field{Type: t},
			"errors": errorsField(),
		},
	})
}

var (
	userPayload         = payloadType("UserPayload", "user", userType)
	patientPayload      = payloadType("PatientPayload", "patient", patientType)
	professionalPayload = payloadType("ProfessionalPayload", "professional", professionalType)
	specialtyPayload    = payloadType("SpecialtyPayload", "specialty", specialtyType)

	// delete mutations report a flag instead of the entity
	deletePayload = graphql.NewObject(graphql.ObjectConfig{
		Name: "DeletePayload",
		Fields: graphql.Fields{
			"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"errors":  errorsField(),
		},
	})

	loginPayload = graphql.NewObject(graphql.ObjectConfig{
		Name: "LoginPayload",
		Fields: graphql.Fields{
			"user":   &graphql.Field{Type: userType},
			"token":  &graphql.Field{Type: graphql.String},
			"errors": errorsField(),
		},
	})

	logoutPayload = graphql.NewObject(graphql.ObjectConfig{
		Name: "LogoutPayload",
		Fields: graphql.Fields{
			"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})
)
