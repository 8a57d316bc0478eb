package services

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

// ValidationError carries user-facing validation messages. Resolvers surface
// them inside the mutation payload instead of failing the operation.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

func validationFailed(messages ...string) error {
	return &ValidationError{Messages: messages}
}

// AsValidationError unwraps err into validation messages, when it is one.
func AsValidationError(err error) ([]string, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Messages, true
	}
	return nil, false
}
