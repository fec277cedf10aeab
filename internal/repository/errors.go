package repository

import "errors"

// ErrNotFound is returned when a requested product doesn't exist.
// The service layer checks for it instead of the driver's no-rows error.
var ErrNotFound = errors.New("not found")
