package graph

import (
	"github.com/graphql-go/graphql"
)

// NewSchema assembles the full query and mutation surface from the
// per-entity field sets.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	queryFields := graphql.Fields{}
	for _, fs := range []graphql.Fields{
		r.userQueryFields(),
		r.patientQueryFields(),
		r.professionalQueryFields(),
		r.specialtyQueryFields(),
	} {
		for name, f := range fs {
			queryFields[name] = f
		}
	}

	mutationFields := graphql.Fields{}
	for _, fs := range []graphql.Fields{
		r.authMutationFields(),
		r.userMutationFields(),
		r.patientMutationFields(),
		r.professionalMutationFields(),
		r.specialtyMutationFields(),
	} {
		for name, f := range fs {
			mutationFields[name] = f
		}
	}

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name:   "Query",
			Fields: queryFields,
		}),
		Mutation: graphql.NewObject(graphql.ObjectConfig{
			Name:   "Mutation",
			Fields: mutationFields,
		}),
	})
}
