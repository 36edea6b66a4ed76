package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, errorBody{Message: message})
}

// writeError maps err to a status and body. fallback is the message used for
// unexpected errors so internals are not leaked to clients.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := HTTPStatus(err)

	var (
		validationErr *ErrValidation
		invalidIDErr  *ErrInvalidID
	)
	switch {
	case errors.As(err, &validationErr):
		s.jsonResponse(w, status, errorBody{Message: validationErr.Message, Errors: validationErr.Fields})
	case errors.As(err, &invalidIDErr):
		s.errorResponse(w, status, "Invalid recipe id")
	case status == http.StatusInternalServerError:
		s.logger.Error(fallback,
			zap.Error(err),
			zap.String("path", r.URL.Path),
			zap.String("request_id", requestIDFrom(r.Context())),
		)
		s.errorResponse(w, status, fallback)
	case status == http.StatusNotFound:
		s.errorResponse(w, status, "Recipe not found")
	default:
		s.errorResponse(w, status, err.Error())
	}
}

// readBody reads a bounded request body. An empty body is returned as "{}".
func readBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(body) > maxBodyBytes {
		return nil, &ErrValidation{Message: "Request body too large"}
	}
	if len(body) == 0 {
		return []byte("{}"), nil
	}
	return body, nil
}

// decodeJSON unmarshals a body that already passed schema validation.
func decodeJSON(body []byte, dst any, message string) error {
	if err := json.Unmarshal(body, dst); err != nil {
		return &ErrValidation{
			Message: message,
			Fields:  []FieldError{{Field: "(root)", Message: err.Error()}},
		}
	}
	return nil
}
