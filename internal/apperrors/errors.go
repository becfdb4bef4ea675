package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInsufficientStock indicates a sale requested more units than the product has in stock.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrConflict indicates the operation clashes with the current state of the
// resource, such as deleting a customer that still has recorded history.
var ErrConflict = errors.New("conflict with existing records")
