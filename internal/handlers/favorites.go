package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

//go:generate mockgen -source=favorites.go -destination=favorites_mock.go -package=handlers

// FavoritesLister returns the favorite currencies.
type FavoritesLister interface {
	List(ctx context.Context) ([]models.CurrencyCode, error)
}

// FavoriteToggler flips membership of a currency in the favorites.
type FavoriteToggler interface {
	Toggle(ctx context.Context, code models.CurrencyCode) ([]models.CurrencyCode, error)
}

// NewListFavoritesHandler returns the favorite currencies.
// @Summary List favorites
// @Tags favorites
// @Produce json
// @Success 200 {object} models.FavoritesResponse
// @Failure 500 {object} models.ErrorResponse "Store unavailable"
// @Router /favorites [get]
func NewListFavoritesHandler(lister FavoritesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		favorites, err := lister.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.FavoritesResponse{Favorites: favorites})
	}
}

// NewToggleFavoriteHandler adds a currency to the favorites or removes it.
// @Summary Toggle favorite
// @Description Removes the currency when it is a favorite, appends it otherwise
// @Tags favorites
// @Produce json
// @Param code path string true "Currency code" example(EUR)
// @Success 200 {object} models.FavoritesResponse
// @Failure 400 {object} models.ErrorResponse "Malformed currency code"
// @Failure 500 {object} models.ErrorResponse "Store unavailable"
// @Router /favorites/{code} [post]
func NewToggleFavoriteHandler(toggler FavoriteToggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code, err := models.ParseCurrencyCode(chi.URLParam(r, "code"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		favorites, err := toggler.Toggle(r.Context(), code)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.FavoritesResponse{Favorites: favorites})
	}
}
