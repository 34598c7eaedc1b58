package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

var validate = validator.New()

// ErrorToStatusCode maps service errors to HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrSuperseded):
		return http.StatusConflict
	case errors.Is(err, models.ErrNetwork),
		errors.Is(err, models.ErrParse),
		errors.Is(err, models.ErrMissingRate):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// bindAndValidate decodes the JSON body into a T and validates its tags.
// On failure it writes a 400 response and returns nil.
func bindAndValidate[T any](w http.ResponseWriter, r *http.Request) *T {
	var input T
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return nil
	}
	if err := validate.Struct(input); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return nil
	}
	return &input
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError writes the mapped status with the error message.
// Only 5xx responses are logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := ErrorToStatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Log.Errorw("request failed", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	}
	writeJSON(w, status, models.ErrorResponse{Error: err.Error()})
}

func parseCodes(raw []string) ([]models.CurrencyCode, error) {
	codes := make([]models.CurrencyCode, 0, len(raw))
	for _, s := range raw {
		code, err := models.ParseCurrencyCode(s)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}
