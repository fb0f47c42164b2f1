// Package common defines the sentinel errors shared by all layers of the
// service. Callers should use errors.Is to match these values; lower layers
// wrap them with fmt.Errorf("...: %w", err) to add context.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound       = errors.New("not found")
	ErrorDuplicateEmail = errors.New("duplicate email")

	// Persistence gateway errors (store unreachable or unopenable).
	ErrorConnection = errors.New("connection failure")

	// Any other store-level failure.
	ErrorStorage = errors.New("storage failure")

	// Request validation errors (missing fields or empty body).
	ErrorValidation = errors.New("validation failure")
)
