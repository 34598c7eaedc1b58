package handlers

import (
	"context"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

//go:generate mockgen -source=currencies.go -destination=currencies_mock.go -package=handlers

// CurrencyLister lists the currencies known to the rate service.
type CurrencyLister interface {
	ListCurrencies(ctx context.Context) (map[models.CurrencyCode]string, error)
}

// CurrencyOptioner builds favorites-first picker options.
type CurrencyOptioner interface {
	Options(ctx context.Context, currencies []models.CurrencyCode, exclude models.CurrencyCode) ([]models.CurrencyOption, error)
}

// CurrencyDescriber looks up the encyclopedia extract of a currency.
type CurrencyDescriber interface {
	Describe(ctx context.Context, code models.CurrencyCode) (title, extract string, err error)
}

// NewListCurrenciesHandler returns all currencies with their display names.
// @Summary List currencies
// @Description Currencies known to the rate service, code to display name
// @Tags currencies
// @Produce json
// @Success 200 {object} models.CurrenciesResponse
// @Failure 502 {object} models.ErrorResponse "Rate service unavailable"
// @Router /currencies [get]
func NewListCurrenciesHandler(lister CurrencyLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		currencies, err := lister.ListCurrencies(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.CurrenciesResponse{Currencies: currencies})
	}
}

// NewCurrencyOptionsHandler returns the picker options, favorites first.
// @Summary Currency picker options
// @Description Favorites first, then the remaining currencies; exclude drops one code (the base currency of a target picker)
// @Tags currencies
// @Produce json
// @Param exclude query string false "Currency code to leave out" example(PLN)
// @Success 200 {object} models.CurrencyOptionsResponse
// @Failure 400 {object} models.ErrorResponse "Malformed currency code"
// @Failure 502 {object} models.ErrorResponse "Rate service unavailable"
// @Router /currencies/options [get]
func NewCurrencyOptionsHandler(lister CurrencyLister, optioner CurrencyOptioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var exclude models.CurrencyCode
		if raw := r.URL.Query().Get("exclude"); raw != "" {
			code, err := models.ParseCurrencyCode(raw)
			if err != nil {
				writeError(w, r, err)
				return
			}
			exclude = code
		}

		currencies, err := lister.ListCurrencies(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		codes := make([]models.CurrencyCode, 0, len(currencies))
		for code := range currencies {
			codes = append(codes, code)
		}
		slices.Sort(codes)

		options, err := optioner.Options(r.Context(), codes, exclude)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.CurrencyOptionsResponse{Options: options})
	}
}

// NewCurrencyDescriptionHandler returns the encyclopedia extract of a currency.
// @Summary Describe currency
// @Description Introduction of the currency's encyclopedia article
// @Tags currencies
// @Produce json
// @Param code path string true "Currency code" example(PLN)
// @Success 200 {object} models.CurrencyDescriptionResponse
// @Failure 400 {object} models.ErrorResponse "Malformed currency code"
// @Failure 502 {object} models.ErrorResponse "Description service unavailable"
// @Router /currencies/{code}/description [get]
func NewCurrencyDescriptionHandler(describer CurrencyDescriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code, err := models.ParseCurrencyCode(chi.URLParam(r, "code"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		title, extract, err := describer.Describe(r.Context(), code)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.CurrencyDescriptionResponse{
			Currency: code,
			Title:    title,
			Extract:  extract,
		})
	}
}
