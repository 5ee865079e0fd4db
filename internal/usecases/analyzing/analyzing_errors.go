package analyzing

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDate     = errors.New("data inválida")
	ErrFutureDate      = errors.New("a acurácia só pode ser avaliada para datas passadas")
	ErrInvalidDaysBack = errors.New("days_back deve ser positivo")
)

type AnalysisError struct {
	Err     error
	Code    string
	Details string
}

func (e *AnalysisError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

func NewAnalysisError(baseErr error, code string, details string) *AnalysisError {
	return &AnalysisError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidDate) || errors.Is(err, ErrFutureDate) || errors.Is(err, ErrInvalidDaysBack)
}
