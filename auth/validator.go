package auth

import (
	stderrors "errors"
	"fmt"
	"unicode"

	"chat-cli/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Credentials are what the login prompt collects.
type Credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,max=72"`
}

// RegisterRequest describes a new account.
type RegisterRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=12,max=72"`
	FullName string `validate:"max=128"`
}

func ValidateCredentials(c Credentials) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidCredentials, err)
	}
	return nil
}

func ValidateRegister(req RegisterRequest) error {
	if err := validate.Struct(req); err != nil {
		var fieldErrors validator.ValidationErrors
		if stderrors.As(err, &fieldErrors) && fieldErrors[0].Field() == "Password" {
			return fmt.Errorf("%w: %v", errors.ErrInvalidPassword, err)
		}
		return fmt.Errorf("%w: %v", errors.ErrInvalidCredentials, err)
	}
	if !isPasswordComplex(req.Password) {
		return errors.ErrInvalidPassword
	}
	return nil
}

func isPasswordComplex(s string) bool {
	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, char := range s {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasNumber && hasSpecial
}
