package services

import "errors"

// Error kinds the HTTP boundary maps onto status codes. Not-found and
// conflict failures surface as repositories.ErrNotFound and
// repositories.ErrConflict from the data layer.
var (
	ErrValidation      = errors.New("validation failed")
	ErrUnauthenticated = errors.New("not authenticated")
	ErrForbidden       = errors.New("not authorized")
)
