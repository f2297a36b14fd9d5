package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/contactbook/internal/common"
	"github.com/dmitrijs2005/contactbook/internal/server/requests"
)

type dataEnvelope struct {
	Data any `json:"data"`
}

type errorEnvelope struct {
	Errors any `json:"errors"`
}

func (s *Server) writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error(ctx, "error writing response", "error", err)
	}
}

func (s *Server) writeData(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	s.writeJSON(ctx, w, status, dataEnvelope{Data: payload})
}

// writeError maps an error kind to its HTTP status and a uniform error
// envelope. Unexpected failures become a generic 500 without leaking
// internals.
func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var verr *requests.ValidationError
	if errors.As(err, &verr) {
		if len(verr.Fields) > 0 {
			s.writeJSON(ctx, w, http.StatusBadRequest, errorEnvelope{Errors: verr.Fields})
			return
		}
		s.writeJSON(ctx, w, http.StatusBadRequest, errorEnvelope{Errors: verr.Error()})
		return
	}

	switch {
	case errors.Is(err, common.ErrorAlreadyExists):
		s.writeJSON(ctx, w, http.StatusBadRequest, errorEnvelope{Errors: "username already exists"})
	case errors.Is(err, common.ErrorInvalidCredentials):
		s.writeJSON(ctx, w, http.StatusUnauthorized, errorEnvelope{Errors: "username or password wrong"})
	case errors.Is(err, common.ErrorUnauthorized):
		s.writeJSON(ctx, w, http.StatusUnauthorized, errorEnvelope{Errors: "unauthorized"})
	case errors.Is(err, common.ErrorNotFound):
		s.writeJSON(ctx, w, http.StatusNotFound, errorEnvelope{Errors: "not found"})
	default:
		s.logger.Error(ctx, "unhandled error", "error", err)
		s.writeJSON(ctx, w, http.StatusInternalServerError, errorEnvelope{Errors: "internal server error"})
	}
}

// decodeBody parses a JSON request body. A malformed body is a
// validation failure, not a 500.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return requests.NewValidationError("body", "must be valid JSON")
	}
	return nil
}
