package service

import (
	"errors"
	"fmt"

	"go-inventory-kardex/pkg/validator"
)

var (
	ErrReferentialConflict = errors.New("inventory: still referenced by other records")
	ErrInsufficientStock   = errors.New("inventory: insufficient stock remaining")
	ErrCategoryNotFound    = errors.New("inventory: category not found")
	ErrProductNotFound     = errors.New("inventory: product not found")
	ErrTransactionNotFound = errors.New("inventory: transaction not found")
	ErrDuplicateSKU        = errors.New("inventory: SKU already exists")
	ErrDuplicateID         = errors.New("inventory: duplicate id")
)

// ValidationError reports the first struct field that failed validation
type ValidationError struct {
	Field string
	Tag   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", e.Field, e.Tag)
}

// validate runs the struct validator and converts the first failure
func validate(data interface{}) error {
	if errs := validator.ValidateStruct(data); len(errs) > 0 {
		return &ValidationError{Field: errs[0].FailedField, Tag: errs[0].Tag}
	}
	return nil
}

// IsNotFound returns true if the error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsInputError returns true if the caller sent data the ledger refuses
func IsInputError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) ||
		errors.Is(err, ErrInsufficientStock) ||
		errors.Is(err, ErrDuplicateSKU) ||
		errors.Is(err, ErrDuplicateID)
}
