package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig is returned when a loaded value fails validation
var ErrInvalidConfig = errors.New("invalid configuration")

var validate = validator.New()

// Validate checks the config against its struct tags
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	problems := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			problems = append(problems, fmt.Sprintf("%s is required", e.Field()))
		case "oneof":
			problems = append(problems, fmt.Sprintf("%s must be one of [%s], got %q", e.Field(), e.Param(), e.Value()))
		default:
			problems = append(problems, fmt.Sprintf("%s is invalid", e.Field()))
		}
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
}
