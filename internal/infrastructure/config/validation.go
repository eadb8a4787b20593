package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dstapl/osrs-gph/internal/domain/economy"
)

// Validator is a wrapper around go-playground/validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance with custom validation rules
func NewValidator() *Validator {
	v := validator.New()

	// time_mode accepts whatever economy.ParseTimeMode understands
	_ = v.RegisterValidation("time_mode", func(fl validator.FieldLevel) bool {
		_, err := economy.ParseTimeMode(fl.Field().String())
		return err == nil
	})

	return &Validator{
		validate: v,
	}
}

// Validate validates a struct using validation tags
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return v.formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into readable messages
func (v *Validator) formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrs {
			messages = append(messages, fmt.Sprintf(
				"field '%s' failed validation: %s (value: '%v')",
				e.Namespace(),
				e.Tag(),
				e.Value(),
			))
		}
		return fmt.Errorf("validation failed:\n  %s", strings.Join(messages, "\n  "))
	}
	return err
}

// ValidateConfig validates the entire configuration
func ValidateConfig(cfg *Config) error {
	v := NewValidator()
	if err := v.Validate(cfg); err != nil {
		return err
	}
	// Weights are normalised by capital, which must be positive for the custom sort
	if cfg.Display.SortBy == "custom" && cfg.Profit.Coins <= 0 {
		return fmt.Errorf("validation failed:\n  field 'Config.Profit.Coins' must be positive when sort_by is custom (value: '%d')", cfg.Profit.Coins)
	}
	return nil
}
