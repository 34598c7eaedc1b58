package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

//go:generate mockgen -source=alert.go -destination=alert_mock.go -package=handlers

// AlertConfigurer replaces the threshold alert config.
type AlertConfigurer interface {
	Configure(cfg models.AlertConfig) error
	Status() models.AlertStatus
}

// AlertStatusReader returns a snapshot of the alert monitor.
type AlertStatusReader interface {
	Status() models.AlertStatus
}

// AlertAcknowledger dismisses a raised alert.
type AlertAcknowledger interface {
	Acknowledge() models.AlertState
	Status() models.AlertStatus
}

// NewConfigureAlertHandler updates the threshold alert.
// @Summary Configure alert
// @Description Polling runs every interval while active with both currencies set. Changes apply from the next tick.
// @Tags alert
// @Accept json
// @Produce json
// @Param request body models.AlertConfigRequest true "Alert config"
// @Success 200 {object} models.AlertStatus
// @Failure 400 {object} models.ErrorResponse "Invalid config"
// @Router /alert [put]
func NewConfigureAlertHandler(monitor AlertConfigurer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := bindAndValidate[models.AlertConfigRequest](w, r)
		if req == nil {
			return
		}

		cfg := models.AlertConfig{Threshold: req.Threshold, Active: req.Active}
		if req.From != "" {
			code, err := models.ParseCurrencyCode(req.From)
			if err != nil {
				writeError(w, r, err)
				return
			}
			cfg.From = code
		}
		if req.To != "" {
			code, err := models.ParseCurrencyCode(req.To)
			if err != nil {
				writeError(w, r, err)
				return
			}
			cfg.To = code
		}

		if err := monitor.Configure(cfg); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, monitor.Status())
	}
}

// NewAlertStatusHandler returns the alert monitor state.
// @Summary Alert status
// @Tags alert
// @Produce json
// @Success 200 {object} models.AlertStatus
// @Router /alert [get]
func NewAlertStatusHandler(monitor AlertStatusReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, monitor.Status())
	}
}

// NewAcknowledgeAlertHandler dismisses a raised alert until the next qualifying tick.
// @Summary Acknowledge alert
// @Tags alert
// @Produce json
// @Success 200 {object} models.AlertStatus
// @Router /alert/ack [post]
func NewAcknowledgeAlertHandler(monitor AlertAcknowledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		monitor.Acknowledge()
		writeJSON(w, http.StatusOK, monitor.Status())
	}
}
