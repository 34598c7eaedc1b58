package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-currency-rates/internal/models"
	"github.com/sbilibin2017/gw-currency-rates/internal/services"
)

//go:generate mockgen -source=conversions.go -destination=conversions_mock.go -package=handlers

// Converter converts amounts and holds the current result set.
type Converter interface {
	Convert(ctx context.Context, amount float64, from models.CurrencyCode, targets []models.CurrencyCode) (map[models.CurrencyCode]models.ConversionResult, error)
	Results() map[models.CurrencyCode]models.ConversionResult
	Clear()
}

// NewConvertHandler converts an amount into every target currency.
// @Summary Convert
// @Description Fetches one rate per target and replaces the result set. A negative amount or no targets leaves the previous result set in place.
// @Tags conversions
// @Accept json
// @Produce json
// @Param request body models.ConversionRequest true "Conversion request"
// @Success 200 {object} models.ConversionResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 409 {object} models.ErrorResponse "Superseded by a newer conversion"
// @Failure 502 {object} models.ErrorResponse "Rate service unavailable"
// @Router /conversions [post]
func NewConvertHandler(converter Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := bindAndValidate[models.ConversionRequest](w, r)
		if req == nil {
			return
		}

		from, err := models.ParseCurrencyCode(req.From)
		if err != nil {
			writeError(w, r, err)
			return
		}
		targets, err := parseCodes(req.Targets)
		if err != nil {
			writeError(w, r, err)
			return
		}

		results, err := converter.Convert(r.Context(), *req.Amount, from, targets)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.ConversionResponse{Results: results})
	}
}

// NewGetConversionsHandler returns the current result set.
// @Summary Current conversion results
// @Tags conversions
// @Produce json
// @Success 200 {object} models.ConversionResponse
// @Router /conversions [get]
func NewGetConversionsHandler(converter Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.ConversionResponse{Results: converter.Results()})
	}
}

// NewClearConversionsHandler empties the result set.
// @Summary Clear conversion results
// @Tags conversions
// @Success 204
// @Router /conversions [delete]
func NewClearConversionsHandler(converter Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		converter.Clear()
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewSwapHandler swaps the base currency with the first target.
// @Summary Swap currencies
// @Description The first target becomes the base and the old base becomes the only target
// @Tags conversions
// @Accept json
// @Produce json
// @Param request body models.SwapRequest true "Current selection"
// @Success 200 {object} models.SwapResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /conversions/swap [post]
func NewSwapHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := bindAndValidate[models.SwapRequest](w, r)
		if req == nil {
			return
		}

		from, err := models.ParseCurrencyCode(req.From)
		if err != nil {
			writeError(w, r, err)
			return
		}
		targets, err := parseCodes(req.Targets)
		if err != nil {
			writeError(w, r, err)
			return
		}

		from, targets = services.Swap(from, targets)
		writeJSON(w, http.StatusOK, models.SwapResponse{From: from, Targets: targets})
	}
}
