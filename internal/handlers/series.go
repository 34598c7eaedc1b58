package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

//go:generate mockgen -source=series.go -destination=series_mock.go -package=handlers

// SeriesBuilder builds the historical comparison chart.
type SeriesBuilder interface {
	BuildSeries(ctx context.Context, base models.CurrencyCode, targets []models.CurrencyCode) (models.Chart, error)
}

// NewSeriesHandler returns five years of history of base against each target.
// @Summary Historical chart
// @Description One series per target. With more than one target every series is min-max normalized on its own and the chart carries a disclaimer.
// @Tags series
// @Produce json
// @Param base query string true "Base currency" example(PLN)
// @Param targets query string true "Comma separated comparison currencies" example(USD,EUR)
// @Success 200 {object} models.Chart
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 409 {object} models.ErrorResponse "Superseded by a newer request"
// @Failure 502 {object} models.ErrorResponse "Rate service unavailable"
// @Router /series [get]
func NewSeriesHandler(builder SeriesBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		base, err := models.ParseCurrencyCode(query.Get("base"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		targets, err := models.ParseCurrencyList(query.Get("targets"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		if len(targets) == 0 {
			writeError(w, r, models.InvalidInputf("targets are required"))
			return
		}

		chart, err := builder.BuildSeries(r.Context(), base, targets)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, chart)
	}
}
