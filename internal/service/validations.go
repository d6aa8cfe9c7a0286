package service

import (
	"errors"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	errorvalues "github.com/limbo/goalkeeper/internal/error_values"
)

var (
	validate *validator.Validate
	once     sync.Once
)

var goalFrequencies = map[string]struct{}{
	"daily":   {},
	"weekly":  {},
	"monthly": {},
}

// InitValidator registers custom tags:
//   - username: letters, digits and underscore, not starting with a digit or underscore
//   - goal_frequency: daily, weekly or monthly
func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("username", validUsername)
		validate.RegisterValidation("goal_frequency", func(fl validator.FieldLevel) bool {
			_, ok := goalFrequencies[fl.Field().String()]
			return ok
		})
	})
}

func validUsername(fl validator.FieldLevel) bool {
	for i, char := range fl.Field().String() {
		if i == 0 && (unicode.IsDigit(char) || char == '_') {
			return false
		}
		if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
			return false
		}
	}
	return true
}

func validateStruct(s any) error {
	InitValidator()
	if err := validate.Struct(s); err != nil {
		return errors.Join(errorvalues.ErrValidation, err)
	}
	return nil
}
