package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrInvalidOperation = errors.New("operación inválida")
	ErrInvalidInput     = errors.New("entrada inválida")
)

// NotFoundError indica que un id referenciado no resuelve a ninguna entidad.
// Conserva entidad, campo y valor para el mensaje al cliente.
// Si Message no está vacío, reemplaza al mensaje derivado de los campos.
type NotFoundError struct {
	Resource string
	Field    string
	Value    any
	Message  string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found with %s: %v", e.Resource, e.Field, e.Value)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFound construye un NotFoundError por campo.
func NewNotFound(resource, field string, value any) *NotFoundError {
	return &NotFoundError{Resource: resource, Field: field, Value: value}
}

// NewNotFoundMsg construye un NotFoundError con mensaje libre.
func NewNotFoundMsg(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// DuplicateError indica una violación de unicidad (name, skuCode, etc.).
// Si Message no está vacío, reemplaza al mensaje derivado de los campos.
type DuplicateError struct {
	Resource string
	Field    string
	Value    any
	Message  string
}

func (e *DuplicateError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s already exists with %s: %v", e.Resource, e.Field, e.Value)
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicate }

// NewDuplicate construye un DuplicateError por campo.
func NewDuplicate(resource, field string, value any) *DuplicateError {
	return &DuplicateError{Resource: resource, Field: field, Value: value}
}

// NewDuplicateMsg construye un DuplicateError con mensaje libre.
func NewDuplicateMsg(format string, args ...any) *DuplicateError {
	return &DuplicateError{Message: fmt.Sprintf(format, args...)}
}

// InvalidOperationError indica un rechazo por regla de negocio
// (ej. eliminar una categoría con productos asociados).
type InvalidOperationError struct {
	Message string
}

func (e *InvalidOperationError) Error() string { return e.Message }

func (e *InvalidOperationError) Unwrap() error { return ErrInvalidOperation }

// NewInvalidOperation construye un InvalidOperationError.
func NewInvalidOperation(format string, args ...any) *InvalidOperationError {
	return &InvalidOperationError{Message: fmt.Sprintf(format, args...)}
}
