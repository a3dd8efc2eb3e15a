package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError = malformed or missing input, detected before any write.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// AuthorizationError = role or branch mismatch.
type AuthorizationError struct {
	Msg string
}

func (e *AuthorizationError) Error() string { return e.Msg }

func Forbidden(format string, args ...any) error {
	return &AuthorizationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError = referenced entity does not exist.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

func NotFound(format string, args ...any) error {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}

// ConflictError = duplicate unique key or concurrent state conflict.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

func Conflict(format string, args ...any) error {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}

// InventoryShortfall describes one ingredient that cannot cover an order.
type InventoryShortfall struct {
	ItemName       string `json:"itemName"`
	IngredientName string `json:"ingredientName"`
	Required       string `json:"required"`
	Available      string `json:"available"`
}

// InsufficientInventoryError carries every shortfall found, not just the
// first, so the client can show the complete list.
type InsufficientInventoryError struct {
	Shortfalls []InventoryShortfall
}

func (e *InsufficientInventoryError) Error() string {
	parts := make([]string, 0, len(e.Shortfalls))
	for _, s := range e.Shortfalls {
		parts = append(parts, fmt.Sprintf("%s: need %s, have %s", s.IngredientName, s.Required, s.Available))
	}
	return "insufficient inventory: " + strings.Join(parts, "; ")
}

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsForbidden(err error) bool {
	var e *AuthorizationError
	return errors.As(err, &e)
}

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

func IsInsufficientInventory(err error) bool {
	var e *InsufficientInventoryError
	return errors.As(err, &e)
}
