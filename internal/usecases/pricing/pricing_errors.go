package pricing

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBounds = errors.New("floor must be lower than ceiling")
	ErrInvalidRange  = errors.New("intervalo de datas inválido")
	ErrInvalidDate   = errors.New("data inválida")
	ErrNothingToSave = errors.New("nenhum preço para registrar")

	ErrInvalidCoefficient = errors.New("coeficiente inválido")
	ErrNonFinitePrice     = errors.New("preço calculado não é finito")
)

type PricingError struct {
	Err     error
	Code    string
	Details string
}

func (e *PricingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *PricingError) Unwrap() error {
	return e.Err
}

func NewPricingError(baseErr error, code string, details string) *PricingError {
	return &PricingError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidCoefficient) ||
		errors.Is(err, ErrNonFinitePrice)
}
