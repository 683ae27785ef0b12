package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrUserAlreadyExists = errors.New("el usuario ya existe")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrDeliveryNotFound  = errors.New("entrega no encontrada")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInvalidInput      = errors.New("entrada inválida")
)

// ValidationError entrada rechazada antes de tocar el store; Message se serializa
// tal cual en el cuerpo de error HTTP.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewMissingFieldError error de validación con el formato uniforme del API.
func NewMissingFieldError(field string) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf("Missing or empty field: %s", field)}
}
