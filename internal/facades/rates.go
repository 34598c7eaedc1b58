package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

// DefaultRatesAPIURL is the public frankfurter deployment.
const DefaultRatesAPIURL = "https://api.frankfurter.app"

// RatesHTTPFacade talks to a frankfurter-shaped JSON rate service.
// It neither retries nor caches.
type RatesHTTPFacade struct {
	baseURL string
	client  *http.Client
}

// NewRatesHTTPFacade creates a facade with its own HTTP client.
func NewRatesHTTPFacade(baseURL string, timeout time.Duration) *RatesHTTPFacade {
	return NewRatesHTTPFacadeWithClient(baseURL, &http.Client{Timeout: timeout})
}

// NewRatesHTTPFacadeWithClient creates a facade over the given HTTP client.
func NewRatesHTTPFacadeWithClient(baseURL string, client *http.Client) *RatesHTTPFacade {
	return &RatesHTTPFacade{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// ListCurrencies returns every currency code the service knows with its display name.
func (f *RatesHTTPFacade) ListCurrencies(ctx context.Context) (map[models.CurrencyCode]string, error) {
	var resp map[string]string
	if err := f.getJSON(ctx, "/currencies", nil, &resp); err != nil {
		return nil, err
	}

	currencies := make(map[models.CurrencyCode]string, len(resp))
	for code, name := range resp {
		c := models.CurrencyCode(code)
		if !c.IsWellFormed() {
			return nil, fmt.Errorf("%w: unexpected currency code %q", models.ErrParse, code)
		}
		currencies[c] = name
	}
	return currencies, nil
}

// GetLatestRate fetches the current rate of from->to together with the converted amount.
// The service answers with the converted amount; the rate is derived from it.
func (f *RatesHTTPFacade) GetLatestRate(
	ctx context.Context,
	from, to models.CurrencyCode,
	amount float64,
) (models.LatestRate, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return models.LatestRate{}, models.InvalidInputf("amount must be a finite number >= 0, got %v", amount)
	}

	requested := amount
	if requested == 0 {
		requested = 1
	}

	query := url.Values{}
	query.Set("amount", strconv.FormatFloat(requested, 'f', -1, 64))
	query.Set("from", from.String())
	query.Set("to", to.String())

	var resp struct {
		Amount *float64            `json:"amount"`
		Rates  map[string]float64 `json:"rates"`
	}
	if err := f.getJSON(ctx, "/latest", query, &resp); err != nil {
		return models.LatestRate{}, err
	}
	if resp.Rates == nil {
		return models.LatestRate{}, fmt.Errorf("%w: latest response without rates", models.ErrParse)
	}

	converted, ok := resp.Rates[to.String()]
	if !ok {
		return models.LatestRate{}, fmt.Errorf("%w: %s->%s", models.ErrMissingRate, from, to)
	}
	if converted <= 0 {
		return models.LatestRate{}, fmt.Errorf("%w: non-positive value %v for %s", models.ErrParse, converted, to)
	}

	base := requested
	if resp.Amount != nil && *resp.Amount > 0 {
		base = *resp.Amount
	}
	rate := decimal.NewFromFloat(converted).Div(decimal.NewFromFloat(base))

	result := models.LatestRate{Rate: rate.InexactFloat64()}
	if amount > 0 {
		result.ConvertedAmount = converted
	}
	return result, nil
}

// GetHistoricalRange fetches the from->to rates between start and end inclusive,
// ascending by date. Dates the service returns without a value for `to` carry a nil rate.
func (f *RatesHTTPFacade) GetHistoricalRange(
	ctx context.Context,
	from, to models.CurrencyCode,
	start, end time.Time,
) ([]models.DatedRate, error) {
	if end.Before(start) {
		return nil, models.InvalidInputf("range end %s before start %s",
			end.Format(models.DateLayout), start.Format(models.DateLayout))
	}

	path := fmt.Sprintf("/%s..%s", start.Format(models.DateLayout), end.Format(models.DateLayout))
	query := url.Values{}
	query.Set("from", from.String())
	query.Set("to", to.String())

	var resp struct {
		Rates map[string]map[string]*float64 `json:"rates"`
	}
	if err := f.getJSON(ctx, path, query, &resp); err != nil {
		return nil, err
	}

	// keys are unique and the layout is strict, so every day appears once
	series := make([]models.DatedRate, 0, len(resp.Rates))
	for raw, rates := range resp.Rates {
		day, err := time.Parse(models.DateLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: bad date %q", models.ErrParse, raw)
		}
		var value *float64
		if v, ok := rates[to.String()]; ok && v != nil {
			value = v
		}
		series = append(series, models.DatedRate{Date: day, Rate: value})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})
	return series, nil
}

// getJSON performs a GET and decodes the JSON body into out.
func (f *RatesHTTPFacade) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := f.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building request %s: %w: %w", u, models.ErrNetwork, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("rate service request failed", "url", u, "error", err)
		return fmt.Errorf("http get %s: %w: %w", u, models.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logger.Log.Errorw("rate service returned error status", "url", u, "status", resp.StatusCode)
		return fmt.Errorf("%w: %s returned status %d: %s", models.ErrNetwork, u, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading body of %s: %w: %w", u, models.ErrNetwork, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		logger.Log.Errorw("rate service returned malformed body", "url", u, "error", err)
		return fmt.Errorf("decoding %s: %w: %w", u, models.ErrParse, err)
	}

	logger.Log.Debugw("rate service request", "url", u, "status", resp.StatusCode)
	return nil
}
