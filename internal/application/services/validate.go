package services

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Validation is explicit: each store operation calls the function it needs up
// front and returns the collected messages, no implicit hook ordering.

const (
	minPasswordLen = 6
	maxPasswordLen = 72 // bcrypt safe

	minSpecialtyNameLen = 2
	maxSpecialtyNameLen = 100
)

var titleCaser = cases.Title(language.Und)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmailFormat(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func validateCredentials(email, password, passwordConfirmation string) []string {
	var errs []string

	if email == "" {
		errs = append(errs, "Email can't be blank")
	} else if !validEmailFormat(email) {
		errs = append(errs, "Email is invalid")
	}

	return append(errs, validatePassword(password, passwordConfirmation)...)
}

func validatePassword(password, passwordConfirmation string) []string {
	var errs []string

	if password == "" {
		errs = append(errs, "Password can't be blank")
	} else if utf8.RuneCountInString(password) < minPasswordLen {
		errs = append(errs, "Password is too short (minimum is 6 characters)")
	} else if len(password) > maxPasswordLen {
		errs = append(errs, "Password is too long (maximum is 72 characters)")
	}

	if password != passwordConfirmation {
		errs = append(errs, "Password confirmation doesn't match Password")
	}

	return errs
}

func validatePatientAttrs(firstName, lastName string, email *string) []string {
	var errs []string

	if strings.TrimSpace(firstName) == "" {
		errs = append(errs, "First name can't be blank")
	}
	if strings.TrimSpace(lastName) == "" {
		errs = append(errs, "Last name can't be blank")
	}
	if email != nil && *email != "" && !validEmailFormat(*email) {
		errs = append(errs, "Email is invalid")
	}

	return errs
}

// normalizeSpecialtyName trims and title-cases, so "  terapia ocupacional "
// becomes "Terapia Ocupacional". Uniqueness is case-insensitive on top.
func normalizeSpecialtyName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return name
	}
	return titleCaser.String(strings.ToLower(name))
}

func validateSpecialtyName(name string) []string {
	var errs []string

	if name == "" {
		errs = append(errs, "Name can't be blank")
	} else if l := utf8.RuneCountInString(name); l < minSpecialtyNameLen {
		errs = append(errs, "Name is too short (minimum is 2 characters)")
	} else if l > maxSpecialtyNameLen {
		errs = append(errs, "Name is too long (maximum is 100 characters)")
	}

	return errs
}
