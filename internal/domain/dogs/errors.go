package dogs

import (
	"errors"
	"fmt"
)

// ErrValidation agrupa todos los errores de validación del registro.
var (
	ErrValidation   = errors.New("validation error")
	ErrInvalidName  = errors.New("invalid name")
	ErrInvalidBreed = errors.New("invalid breed")
)

type Kind string

const (
	KindInvalidName  Kind = "invalid_name"
	KindInvalidBreed Kind = "invalid_breed"
)

// Mensajes de diagnóstico visibles para el usuario.
const (
	msgInvalidName  = "Name must be string between 1 and 25 characters."
	msgInvalidBreed = "Breed must be in list of approved breeds."
)

// ValidationError describe un valor rechazado por un setter.
type ValidationError struct {
	Kind  Kind
	Field string
	Value any
	Msg   string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s (%s=%q)", e.Kind, e.Msg, e.Field, fmt.Sprint(e.Value))
}

// Is permite errors.Is contra ErrValidation y contra el sentinel de su Kind.
func (e *ValidationError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case ErrValidation:
		return true
	case ErrInvalidName:
		return e.Kind == KindInvalidName
	case ErrInvalidBreed:
		return e.Kind == KindInvalidBreed
	}
	return false
}

// IsKind clasifica errores sin depender del tipo concreto en el caller.
func IsKind(err error, kind Kind) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind == kind
	}
	return false
}

func invalidName(v any) *ValidationError {
	return &ValidationError{Kind: KindInvalidName, Field: "name", Value: v, Msg: msgInvalidName}
}

func invalidBreed(v any) *ValidationError {
	return &ValidationError{Kind: KindInvalidBreed, Field: "breed", Value: v, Msg: msgInvalidBreed}
}
