package graph

import (
	"github.com/graphql-go/graphql"

	userDomain "clinic-office-api/internal/domain/user"
	userDTO "clinic-office-api/internal/interface/api/graph/dto/user"
)

func (r *Resolver) userQueryFields() graphql.Fields {
	return graphql.Fields{
		"currentUser": &graphql.Field{
			Type:    userType,
			Resolve: r.resolveCurrentUser,
		},
		"users": &graphql.Field{
			Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(userType))),
			Resolve: r.resolveUsers,
		},
	}
}

func (r *Resolver) userMutationFields() graphql.Fields {
	return graphql.Fields{
		"registerUser": &graphql.Field{
			Type: graphql.NewNonNull(userPayload),
			Args: graphql.FieldConfigArgument{
				"email":                &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"password":             &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"passwordConfirmation": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: r.resolveRegisterUser,
		},
		"updateUser": &graphql.Field{
			Type: graphql.NewNonNull(userPayload),
			Args: graphql.FieldConfigArgument{
				"id":                   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"email":                &graphql.ArgumentConfig{Type: graphql.String},
				"password":             &graphql.ArgumentConfig{Type: graphql.String},
				"passwordConfirmation": &graphql.ArgumentConfig{Type: graphql.String},
				"admin":                &graphql.ArgumentConfig{Type: graphql.Boolean},
				"themePreference":      &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: r.resolveUpdateUser,
		},
		"deleteUser": &graphql.Field{
			Type: graphql.NewNonNull(deletePayload),
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: r.resolveDeleteUser,
		},
		"updateThemePreference": &graphql.Field{
			Type: graphql.NewNonNull(userPayload),
			Args: graphql.FieldConfigArgument{
				"themePreference": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: r.resolveUpdateThemePreference,
		},
	}
}

// resolveCurrentUser answers nil for anonymous callers instead of raising.
func (r *Resolver) resolveCurrentUser(p graphql.ResolveParams) (interface{}, error) {
	u, ok := userDomain.FromContext(p.Context)
	if !ok {
		return nil, nil
	}

	return userDTO.ToResponseUser(*u), nil
}

func (r *Resolver) resolveUsers(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAuthenticated(p); err != nil {
		return nil, err
	}

	us, err := r.userService.FindUsers(p.Context)
	if err != nil {
		return nil, r.internal("users", err)
	}

	return userDTO.ToResponseUsers(us), nil
}

func (r *Resolver) resolveRegisterUser(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAuthenticated(p); err != nil {
		return nil, err
	}

	u, err := r.userService.RegisterUser(
		p.Context,
		argString(p, "email"),
		argString(p, "password"),
		argString(p, "passwordConfirmation"),
	)
	if err != nil {
		return r.validationPayload("registerUser", "user", err)
	}

	return payload("user", userDTO.ToResponseUser(*u)), nil
}

func (r *Resolver) resolveUpdateUser(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAuthenticated(p); err != nil {
		return nil, err
	}

	id, err := argID(p, "id")
	if err != nil {
		return nil, err
	}

	u, err := r.userService.UpdateUser(p.Context, userDomain.ID(id), userDomain.Update{
		Email:                optString(p, "email"),
		Password:             optString(p, "password"),
		PasswordConfirmation: optString(p, "passwordConfirmation"),
		Admin:                optBool(p, "admin"),
		ThemePreference:      optString(p, "themePreference"),
	})
	if err != nil {
		return r.validationPayload("updateUser", "user", err)
	}
	if u == nil {
		return payload("user", nil, "User not found"), nil
	}

	return payload("user", userDTO.ToResponseUser(*u)), nil
}

func (r *Resolver) resolveDeleteUser(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAuthenticated(p); err != nil {
		return nil, err
	}

	id, err := argID(p, "id")
	if err != nil {
		return nil, err
	}

	u, err := r.userService.DeleteUser(p.Context, userDomain.ID(id))
	if err != nil {
		return r.validationDeletePayload("deleteUser", err)
	}
	if u == nil {
		return payload("success", false, "User not found"), nil
	}

	return payload("success", true), nil
}

func (r *Resolver) resolveUpdateThemePreference(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAuthenticated(p); err != nil {
		return nil, err
	}

	u, err := r.userService.UpdateThemePreference(p.Context, argString(p, "themePreference"))
	if err != nil {
		return r.validationPayload("updateThemePreference", "user", err)
	}
	if u == nil {
		return payload("user", nil), nil
	}

	return payload("user", userDTO.ToResponseUser(*u)), nil
}
