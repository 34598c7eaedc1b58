package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

// DefaultDescriptionAPIURL is the encyclopedia the descriptions come from.
const DefaultDescriptionAPIURL = "https://en.wikipedia.org"

// currencyArticles maps currency codes to encyclopedia article titles.
var currencyArticles = map[models.CurrencyCode]string{
	"AUD": "Australian_dollar",
	"BGN": "Bulgarian_lev",
	"BRL": "Brazilian_real",
	"CAD": "Canadian_dollar",
	"CHF": "Swiss_franc",
	"CNY": "Renminbi",
	"CZK": "Czech_koruna",
	"DKK": "Danish_krone",
	"EUR": "Euro",
	"GBP": "Pound_sterling",
	"HKD": "Hong_Kong_dollar",
	"HRK": "Croatian_kuna",
	"HUF": "Hungarian_forint",
	"IDR": "Indonesian_rupiah",
	"ILS": "Israeli_new_shekel",
	"INR": "Indian_rupee",
	"ISK": "Icelandic_króna",
	"JPY": "Japanese_yen",
	"KRW": "South_Korean_won",
	"MXN": "Mexican_peso",
	"MYR": "Malaysian_ringgit",
	"NOK": "Norwegian_krone",
	"NZD": "New_Zealand_dollar",
	"PHP": "Philippine_peso",
	"PLN": "Polish_złoty",
	"RON": "Romanian_leu",
	"RUB": "Russian_ruble",
	"SEK": "Swedish_krona",
	"SGD": "Singapore_dollar",
	"THB": "Thai_baht",
	"TRY": "Turkish_lira",
	"USD": "United_States_dollar",
	"ZAR": "South_African_rand",
}

// ArticleTitle returns the article title for a code, or the code itself when unknown.
func ArticleTitle(code models.CurrencyCode) string {
	if title, ok := currencyArticles[code]; ok {
		return title
	}
	return code.String()
}

// DescriptionFacade fetches the introduction of a currency's encyclopedia article.
type DescriptionFacade struct {
	baseURL string
	client  *http.Client
}

// NewDescriptionFacade creates a description lookup against baseURL.
func NewDescriptionFacade(baseURL string, timeout time.Duration) *DescriptionFacade {
	return &DescriptionFacade{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Describe returns the article title and its HTML introduction for code.
func (f *DescriptionFacade) Describe(ctx context.Context, code models.CurrencyCode) (title, extract string, err error) {
	title = ArticleTitle(code)

	query := url.Values{}
	query.Set("action", "query")
	query.Set("prop", "extracts")
	query.Set("format", "json")
	query.Set("exintro", "")
	query.Set("titles", title)
	query.Set("origin", "*")
	u := f.baseURL + "/w/api.php?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return title, "", fmt.Errorf("building request: %w: %w", models.ErrNetwork, err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("description request failed", "currency", code, "error", err)
		return title, "", fmt.Errorf("http get: %w: %w", models.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return title, "", fmt.Errorf("%w: description service returned status %d: %s", models.ErrNetwork, resp.StatusCode, string(body))
	}

	var data struct {
		Query struct {
			Pages map[string]struct {
				Extract string `json:"extract"`
			} `json:"pages"`
		} `json:"query"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return title, "", fmt.Errorf("decoding description: %w: %w", models.ErrParse, err)
	}

	for _, page := range data.Query.Pages {
		return title, page.Extract, nil
	}
	return title, "", fmt.Errorf("%w: no page for %s", models.ErrParse, title)
}
