// Package errors provides custom error types for inventory operations.
package errors

import "errors"

var ErrItemNotFound = errors.New("item not found")

// ErrInvalidHandle is returned when a handle is empty or its item was already removed.
var ErrInvalidHandle = errors.New("invalid item handle")

var ErrInvalidCategory = errors.New("invalid category")
var ErrUnknownSearchMode = errors.New("unknown search mode")
var ErrInvalidExpression = errors.New("invalid search expression")
