package handler

import (
	"github.com/go-playground/validator/v10"

	"github.com/gameworld/gameworld/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validation for quest status
	_ = v.RegisterValidation("queststatus", validateQuestStatus)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// Custom validation function for quest status values
func validateQuestStatus(fl validator.FieldLevel) bool {
	_, err := domain.ParseQuestStatus(fl.Field().String())
	return err == nil
}
