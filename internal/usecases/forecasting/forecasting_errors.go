package forecasting

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCategory = errors.New("categoria obrigatória")
	ErrInvalidLookback = errors.New("janela de histórico deve ser positiva")
	ErrInvalidDate     = errors.New("data alvo inválida")
	ErrNotStored       = errors.New("nenhuma previsão armazenada para a data")
)

// ForecastError carrega o contexto da categoria que falhou
type ForecastError struct {
	Err      error
	Code     string
	Category string
	Details  string
}

func (e *ForecastError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%s): %s", e.Err.Error(), e.Category, e.Details)
	}
	return e.Err.Error()
}

func (e *ForecastError) Unwrap() error {
	return e.Err
}

func NewForecastError(baseErr error, code, category, details string) *ForecastError {
	return &ForecastError{
		Err:      baseErr,
		Code:     code,
		Category: category,
		Details:  details,
	}
}

// IsValidationError indica erros causados por parâmetros do chamador
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingCategory) ||
		errors.Is(err, ErrInvalidLookback) ||
		errors.Is(err, ErrInvalidDate)
}
