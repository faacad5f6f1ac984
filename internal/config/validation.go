// Package config provides configuration management for the Soccer Bettor application.
package config

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var seasonCodePattern = regexp.MustCompile(`^\d{4}$`)

// CustomValidator wraps the validator with custom validation rules
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new validator with custom validation functions
func NewValidator() (*CustomValidator, error) {
	v := validator.New()

	registrations := map[string]validator.Func{
		"environment": validateEnvironment,
		"loglevel":    validateLogLevel,
		"seasons":     validateSeasons,
	}
	for tag, fn := range registrations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("registering %q validation: %w", tag, err)
		}
	}

	return &CustomValidator{validator: v}, nil
}

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	cv, err := NewValidator()
	if err != nil {
		return err
	}
	return cv.Validate(cfg)
}

// Validate validates the configuration using registered validation rules
func (cv *CustomValidator) Validate(cfg *Config) error {
	err := cv.validator.Struct(cfg)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	return validateCrossField(cfg)
}

// validateEnvironment validates the environment field
func validateEnvironment(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

// validateLogLevel validates the log level field
func validateLogLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// validateSeasons checks that every season uses the four-digit site code,
// for example "1718" for the 2017/2018 season.
func validateSeasons(fl validator.FieldLevel) bool {
	seasons, ok := fl.Field().Interface().([]string)
	if !ok || len(seasons) == 0 {
		return false
	}
	for _, season := range seasons {
		if !seasonCodePattern.MatchString(season) {
			return false
		}
	}
	return true
}

// validateCrossField performs cross-field validations
func validateCrossField(cfg *Config) error {
	if cfg.Database.Enabled {
		if cfg.Database.Host == "" || cfg.Database.Name == "" || cfg.Database.User == "" {
			return fmt.Errorf("database host, name and user are required when persistence is enabled")
		}
		if cfg.Database.MaxIdleConnections > cfg.Database.MaxConnections {
			return fmt.Errorf("max_idle_connections cannot exceed max_connections")
		}
		if cfg.IsProduction() && cfg.Database.SSLMode == "disable" {
			return fmt.Errorf("production environment requires SSL mode to be 'require' or 'verify-full'")
		}
	}

	if cfg.Backtest.PersistResults && !cfg.Database.Enabled {
		return fmt.Errorf("persist_results requires the database section to be enabled")
	}

	if cfg.Schedule.Enabled && cfg.Schedule.CronSpec == "" {
		return fmt.Errorf("schedule cron_spec is required when scheduling is enabled")
	}

	for _, rf := range cfg.Backtest.RiskFactors {
		if rf < 0 {
			return fmt.Errorf("risk factors must be non-negative, got %g", rf)
		}
	}

	if cfg.AWS.Enabled && (cfg.AWS.Region == "" || cfg.AWS.SecretName == "") {
		return fmt.Errorf("aws region and secret_name are required when secrets loading is enabled")
	}

	return nil
}

// formatValidationErrors formats validation errors into a readable string
func formatValidationErrors(validationErrors validator.ValidationErrors) error {
	var errMsg string
	for _, fieldError := range validationErrors {
		field := fieldError.StructField()
		tag := fieldError.Tag()
		value := fieldError.Value()

		switch tag {
		case "required":
			errMsg += fmt.Sprintf("- Field '%s' is required\n", field)
		case "url":
			errMsg += fmt.Sprintf("- Field '%s' must be a valid URL, got '%v'\n", field, value)
		case "min", "max":
			errMsg += fmt.Sprintf("- Field '%s' validation failed: %s constraint violated\n", field, tag)
		case "gt", "gte", "lt", "lte":
			errMsg += fmt.Sprintf("- Field '%s' validation failed: numeric constraint %s violated\n", field, tag)
		case "environment":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: development, staging, production\n", field)
		case "loglevel":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: debug, info, warn, error\n", field)
		case "seasons":
			errMsg += fmt.Sprintf("- Field '%s' must use four-digit season codes such as '1718'\n", field)
		case "oneof":
			errMsg += fmt.Sprintf("- Field '%s' has invalid value '%v'\n", field, value)
		default:
			errMsg += fmt.Sprintf("- Field '%s' failed validation: %s\n", field, tag)
		}
	}
	return fmt.Errorf("configuration validation failed:\n%s", errMsg)
}
