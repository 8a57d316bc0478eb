package graph

import (
	"errors"

	"github.com/graphql-go/graphql"

	"clinic-office-api/internal/application/services"
	userDomain "clinic-office-api/internal/domain/user"
	userDTO "clinic-office-api/internal/interface/api/graph/dto/user"
)

func (r *Resolver) authMutationFields() graphql.Fields {
	return graphql.Fields{
		"loginUser": &graphql.Field{
			Type: graphql.NewNonNull(loginPayload),
			Args: graphql.FieldConfigArgument{
				"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: r.resolveLoginUser,
		},
		"logoutUser": &graphql.Field{
			Type:    graphql.NewNonNull(logoutPayload),
			Resolve: r.resolveLogoutUser,
		},
	}
}

// resolveLoginUser never reveals which part of the credential pair was wrong.
func (r *Resolver) resolveLoginUser(p graphql.ResolveParams) (interface{}, error) {
	u, token, err := r.authService.Login(p.Context, argString(p, "email"), argString(p, "password"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return map[string]interface{}{
				"user":   nil,
				"token":  nil,
				"errors": []string{"Invalid email or password"},
			}, nil
		}
		return nil, r.internal("loginUser", err)
	}

	return map[string]interface{}{
		"user":   userDTO.ToResponseUser(*u),
		"token":  token,
		"errors": []string{},
	}, nil
}

func (r *Resolver) resolveLogoutUser(p graphql.ResolveParams) (interface{}, error) {
	if _, ok := userDomain.FromContext(p.Context); !ok {
		return map[string]interface{}{
			"success": false,
			"message": "User is not signed in",
		}, nil
	}

	if err := r.authService.Logout(p.Context); err != nil {
		return nil, r.internal("logoutUser", err)
	}

	return map[string]interface{}{
		"success": true,
		"message": "Logged out successfully",
	}, nil
}
