package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-currency-rates/internal/handlers"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

func TestErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid input", err: models.InvalidInputf("bad amount"), want: http.StatusBadRequest},
		{name: "superseded", err: models.ErrSuperseded, want: http.StatusConflict},
		{name: "network", err: fmt.Errorf("converting PLN to EUR: %w", models.ErrNetwork), want: http.StatusBadGateway},
		{name: "parse", err: models.ErrParse, want: http.StatusBadGateway},
		{name: "missing rate", err: models.ErrMissingRate, want: http.StatusBadGateway},
		{name: "other", err: errors.New("disk full"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, handlers.ErrorToStatusCode(tt.err))
		})
	}
}
