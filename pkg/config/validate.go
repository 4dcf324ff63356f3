package config

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/marmos91/bufreader/pkg/bufreader"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks struct tag constraints and that the default encoding
// is known.
func Validate(cfg *Config) error {
	if err := getValidator().Struct(cfg); err != nil {
		return err
	}
	if _, err := bufreader.LookupEncoding(cfg.Input.Encoding); err != nil {
		return fmt.Errorf("input.encoding: %w", err)
	}
	return nil
}
