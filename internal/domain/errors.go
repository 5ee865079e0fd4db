package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrCategoryNotFound é propagado ao chamador, nunca re-tentado
	ErrCategoryNotFound = errors.New("room category not found")
	// ErrConfiguration marca erros fatais de configuração de uma categoria
	ErrConfiguration = errors.New("configuration error")
	// ErrNonFiniteCoefficient rejeita sobrescritas NaN ou infinitas
	ErrNonFiniteCoefficient = errors.New("coefficient must be a finite number")
)

// ConfigurationError descreve um problema de configuração de uma categoria
type ConfigurationError struct {
	Category string
	Details  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s for category %q: %s", ErrConfiguration.Error(), e.Category, e.Details)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

func NewConfigurationError(category, details string) *ConfigurationError {
	return &ConfigurationError{
		Category: category,
		Details:  details,
	}
}

// IsConfigurationError verifica se o erro é de configuração
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}
