package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/chrono/go/internal/apperrors"
)

// errorBody is the JSON shape of every error response
type errorBody struct {
	Error string `json:"error"`
}

// JSONResponse writes v as JSON with the given status
func JSONResponse(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// ErrorResponse writes a JSON error body with the given status
func ErrorResponse(w http.ResponseWriter, status int, msg string) {
	JSONResponse(w, status, errorBody{Error: msg})
}

// AppError maps domain errors onto HTTP statuses and writes the response.
// Unrecognized errors become opaque 500s so internals never leak.
func AppError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrSessionCompleted):
		ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, apperrors.ErrAlreadyExists):
		ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, apperrors.ErrValidation):
		ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrUnauthorized):
		ErrorResponse(w, http.StatusUnauthorized, "invalid credentials")
	default:
		log.Error().Err(err).Msg("internal error")
		ErrorResponse(w, http.StatusInternalServerError, "internal server error")
	}
}

// ParseJSONBody decodes a JSON request body into dst
func ParseJSONBody(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
