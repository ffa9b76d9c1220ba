package auth

import (
	"candidate-notes/domain/mention"
	"candidate-notes/errors"
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator registers the "mentionable" tag: a display name must be
// addressable by an @mention as a whole.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("mentionable", func(fl validator.FieldLevel) bool {
		return mention.IsName(fl.Field().String())
	})
	return v
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=64,mentionable"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ValidateRegister checks the request shape, then the password policy.
// A display name is what mentions resolve, so it is limited to word characters.
func ValidateRegister(req RegisterRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}

	if !isPasswordComplex(req.Password) {
		return errors.ErrInvalidPassword
	}
	return nil
}

func ValidateLogin(req LoginRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	return nil
}

func isPasswordComplex(s string) bool {
	var (
		hasUpper   = false
		hasLower   = false
		hasNumber  = false
		hasSpecial = false
	)
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
