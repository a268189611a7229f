package config

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/edutools/moourl/internal/errorwrapper"
	"github.com/edutools/moourl/internal/urlhandler"
)

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	validate := validator.New()

	// Register custom validation for site URLs (must parse as a URL
	// without raw spaces in scheme, authority or path)
	_ = validate.RegisterValidation("siteurl", func(fl validator.FieldLevel) bool {
		rawURL := fl.Field().String()
		if rawURL == "" {
			return true // Optional field, valid if empty
		}
		return urlhandler.IsValidMoodleURL(rawURL)
	})

	// Register custom validation for LogLevel
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		level := strings.ToLower(fl.Field().String())
		switch level {
		case "", "debug", "info", "warn", "error", "fatal", "panic": // Allow empty for omitempty
			return true
		default:
			return false
		}
	})

	// Register custom validation for LogFormat
	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		format := strings.ToLower(fl.Field().String())
		switch format {
		case "", "console", "text", "json": // Allow empty for omitempty
			return true
		default:
			return false
		}
	})

	if err := validate.Struct(cfg); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			messages := make([]string, 0, len(validationErrors))
			for _, fieldErr := range validationErrors {
				messages = append(messages, fieldErr.Namespace()+" failed on '"+fieldErr.Tag()+"'")
			}
			return errorwrapper.WrapError(errorwrapper.ErrInvalidConfiguration, strings.Join(messages, "; "))
		}
		return errorwrapper.WrapError(err, "config validation failed")
	}

	return nil
}
