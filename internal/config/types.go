package config

import (
	"errors"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
)

const (
	DefaultInputs = "**/*.h"
	DefaultOutput = "cpp.rst"
	DefaultTitle  = "C++ API"

	DefaultPreamble = "This is the API documentation extracted from the comment\n" +
		"annotations of the scanned C++ header files."
)

type Config struct {
	Inputs    string   `koanf:"inputs"   validate:"required,glob"`
	Output    string   `koanf:"output"   validate:"required"`
	Exclude   []string `koanf:"exclude"  validate:"dive,glob"`
	Title     string   `koanf:"title"    validate:"required"`
	Preamble  string   `koanf:"preamble"`
	ConfigDir string   `koanf:"-"`
}

// Default returns the built-in configuration used when no config file
// exists anywhere.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("glob", func(fl validator.FieldLevel) bool {
		return doublestar.ValidatePattern(fl.Field().String())
	})

	return v
}

func (c *Config) ApplyDefaults() {
	if c.Inputs == "" {
		c.Inputs = DefaultInputs
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Preamble == "" {
		c.Preamble = DefaultPreamble
	}
}

func (c *Config) Validate() error {
	v := newValidator()

	valErr := v.Struct(c)
	if valErr == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(valErr, &validationErrors) {
		return oops.
			Code("CONFIG_INVALID").
			Wrapf(valErr, "validating config")
	}

	for _, fe := range validationErrors {
		return mapValidationError(c, fe)
	}

	return nil
}

func mapValidationError(cfg *Config, fe validator.FieldError) error {
	field := strings.ToLower(fe.Field())

	switch {
	case fe.Tag() == "glob" && field == "inputs":
		return oops.
			Code("CONFIG_INVALID").
			With("field", "inputs").
			With("value", cfg.Inputs).
			Hint("Use a doublestar glob such as \"include/**/*.h\"").
			Errorf("invalid inputs glob pattern %q", cfg.Inputs)

	case fe.Tag() == "glob":
		return oops.
			Code("CONFIG_INVALID").
			With("field", "exclude").
			Hint("Each exclude entry must be a valid glob pattern").
			Errorf("invalid exclude glob pattern")

	case fe.Tag() == "required":
		return oops.
			Code("CONFIG_INVALID").
			With("field", field).
			Hint("Remove the empty value to fall back to the default").
			Errorf("missing value for %q", field)

	default:
		return oops.
			Code("CONFIG_INVALID").
			With("field", field).
			With("tag", fe.Tag()).
			Errorf("validation failed for field %q", field)
	}
}
