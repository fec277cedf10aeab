// Package config reads server settings from viper and validates them.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Host         string `mapstructure:"HOST" validate:"required"`
	Port         int    `mapstructure:"PORT" validate:"min=1,max=65535"`
	DatabaseURL  string `mapstructure:"DATABASE_URL" validate:"required"`
	FrontendURL  string `mapstructure:"FRONTEND_URL" validate:"omitempty,url"`
	LogLevel     string `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFormat    string `mapstructure:"LOG_FORMAT" validate:"oneof=text json"`
	MaxBodyBytes int64  `mapstructure:"MAX_REQUEST_BODY_BYTES" validate:"min=1"`
}

// SetDefaults registers the default for every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", 4000)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("FRONTEND_URL", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("MAX_REQUEST_BODY_BYTES", 1048576)
}

func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := ValidateStruct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("mapstructure")
	})
}

func ValidateStruct(s any) error {
	if err := validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldError := range validationErrors {
				messages = append(messages, formatValidationError(fieldError))
			}
			return errors.New(strings.Join(messages, "; "))
		}
		return err
	}
	return nil
}

func formatValidationError(err validator.FieldError) string {
	field := strings.ToLower(err.Field())

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, err.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, err.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
