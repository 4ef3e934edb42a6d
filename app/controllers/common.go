package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// sendJSON writes a JSON response body with the given status.
func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// sendError maps an error to its status code and writes the uniform
// {"message": ...} body every failure uses.
func sendError(w http.ResponseWriter, err error) {
	sendJSON(w, statusFor(err), map[string]string{"message": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, repositories.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repositories.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// readJSON decodes a request body into a schema struct, rejecting
// unknown fields, then validates it.
func readJSON(body io.ReadCloser, dest interface{}) error {
	defer body.Close()
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", services.ErrValidation, err)
	}
	if err := validate.Struct(dest); err != nil {
		return fmt.Errorf("%w: %v", services.ErrValidation, err)
	}
	return nil
}
