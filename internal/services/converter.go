package services

import (
	"context"
	"fmt"
	"maps"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

//go:generate mockgen -source=converter.go -destination=converter_mock.go -package=services

// LatestRateReader fetches the current rate of a currency pair.
type LatestRateReader interface {
	GetLatestRate(ctx context.Context, from, to models.CurrencyCode, amount float64) (models.LatestRate, error) // Returns rate and converted amount
}

// ConverterService converts one amount into several currencies and holds
// the current result set.
type ConverterService struct {
	rates LatestRateReader

	mu         sync.Mutex
	generation uint64
	results    map[models.CurrencyCode]models.ConversionResult
}

// NewConverterService creates a new ConverterService.
func NewConverterService(rates LatestRateReader) *ConverterService {
	return &ConverterService{
		rates:   rates,
		results: map[models.CurrencyCode]models.ConversionResult{},
	}
}

// Convert fetches one rate per target concurrently and replaces the result set
// when every fetch succeeded. A negative or non-finite amount, or no targets,
// leaves the result set as it is. A call overtaken by a newer one while its
// fetches were in flight gets models.ErrSuperseded and changes nothing.
func (s *ConverterService) Convert(
	ctx context.Context,
	amount float64,
	from models.CurrencyCode,
	targets []models.CurrencyCode,
) (map[models.CurrencyCode]models.ConversionResult, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 || len(targets) == 0 {
		return s.Results(), nil
	}

	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	converted := make([]models.ConversionResult, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	for i, target := range targets {
		g.Go(func() error {
			latest, err := s.rates.GetLatestRate(gctx, from, target, amount)
			if err != nil {
				return fmt.Errorf("converting %s to %s: %w", from, target, err)
			}
			converted[i] = models.ConversionResult{
				TargetCurrency:  target,
				Rate:            latest.Rate,
				ConvertedAmount: latest.ConvertedAmount,
				BaseAmount:      amount,
				BaseCurrency:    from,
			}
			return nil
		})
	}
	err := g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		logger.Log.Infow("conversion superseded", "generation", gen, "latest", s.generation, "from", from)
		return nil, models.ErrSuperseded
	}
	if err != nil {
		logger.Log.Errorw("conversion failed", "from", from, "amount", amount, "targets", targets, "error", err)
		return nil, err
	}

	next := make(map[models.CurrencyCode]models.ConversionResult, len(converted))
	for _, r := range converted {
		next[r.TargetCurrency] = r
	}
	s.results = next
	return maps.Clone(next), nil
}

// Results returns a copy of the current result set.
func (s *ConverterService) Results() map[models.CurrencyCode]models.ConversionResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.results)
}

// Clear empties the result set. Conversions still in flight are superseded.
func (s *ConverterService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.results = map[models.CurrencyCode]models.ConversionResult{}
}

// Swap makes the first target the new base and the old base the only target.
// With no targets the selection is returned unchanged.
func Swap(from models.CurrencyCode, targets []models.CurrencyCode) (models.CurrencyCode, []models.CurrencyCode) {
	if len(targets) == 0 {
		return from, targets
	}
	return targets[0], []models.CurrencyCode{from}
}
