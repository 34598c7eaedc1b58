package services

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

//go:generate mockgen -source=series.go -destination=series_mock.go -package=services

// HistoryYears is how far back a chart reaches.
const HistoryYears = 5

// HistoricalRangeReader fetches daily rates of a currency pair.
type HistoricalRangeReader interface {
	GetHistoricalRange(ctx context.Context, from, to models.CurrencyCode, start, end time.Time) ([]models.DatedRate, error) // Returns ascending dated rates
}

// ColorAssigner hands out stable per-currency colors.
type ColorAssigner interface {
	ColorFor(ctx context.Context, code models.CurrencyCode) string // Returns the session color of code
}

// SeriesService builds the historical comparison chart of a base currency.
type SeriesService struct {
	ranges HistoricalRangeReader
	colors ColorAssigner
	now    func() time.Time

	mu          sync.Mutex
	generation  uint64
	lastBase    models.CurrencyCode
	lastTargets []models.CurrencyCode
	last        *models.Chart
}

// NewSeriesService creates a new SeriesService.
func NewSeriesService(ranges HistoricalRangeReader, colors ColorAssigner) *SeriesService {
	return &SeriesService{
		ranges: ranges,
		colors: colors,
		now:    time.Now,
	}
}

// BuildSeries fetches the last five years of base->target rates for every
// target concurrently and assembles one chart. With more than one target each
// series is min-max normalized on its own. Asking again for the same base and
// targets returns the previous chart without fetching.
func (s *SeriesService) BuildSeries(
	ctx context.Context,
	base models.CurrencyCode,
	targets []models.CurrencyCode,
) (models.Chart, error) {
	if !base.IsWellFormed() {
		return models.Chart{}, models.InvalidInputf("malformed base currency %q", base)
	}
	if len(targets) == 0 {
		return models.Chart{}, models.InvalidInputf("no comparison currencies")
	}

	s.mu.Lock()
	if s.last != nil && s.lastBase == base && slices.Equal(s.lastTargets, targets) {
		chart := cloneChart(*s.last)
		s.mu.Unlock()
		return chart, nil
	}
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	end := s.now().UTC()
	start := end.AddDate(-HistoryYears, 0, 0)

	fetched := make([][]models.DatedRate, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	for i, target := range targets {
		g.Go(func() error {
			points, err := s.ranges.GetHistoricalRange(gctx, base, target, start, end)
			if err != nil {
				return fmt.Errorf("history %s->%s: %w", base, target, err)
			}
			fetched[i] = points
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if s.superseded(gen) {
			return models.Chart{}, models.ErrSuperseded
		}
		logger.Log.Errorw("series build failed", "base", base, "targets", targets, "error", err)
		return models.Chart{}, err
	}

	chart := s.assemble(ctx, base, targets, fetched)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		logger.Log.Infow("series build superseded", "generation", gen, "latest", s.generation, "base", base)
		return models.Chart{}, models.ErrSuperseded
	}
	memo := cloneChart(chart)
	s.last = &memo
	s.lastBase = base
	s.lastTargets = slices.Clone(targets)
	return chart, nil
}

func (s *SeriesService) superseded(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen != s.generation
}

func (s *SeriesService) assemble(
	ctx context.Context,
	base models.CurrencyCode,
	targets []models.CurrencyCode,
	fetched [][]models.DatedRate,
) models.Chart {
	normalize := len(targets) > 1
	chart := models.Chart{
		Base:       base,
		Series:     make([]models.HistoricalSeries, 0, len(targets)),
		Normalized: normalize,
	}
	if normalize {
		chart.Disclaimer = models.NormalizedDisclaimer
	}

	labels := map[string]struct{}{}
	for i, target := range targets {
		dates := make([]string, len(fetched[i]))
		values := make([]*float64, len(fetched[i]))
		for j, point := range fetched[i] {
			dates[j] = point.Date.Format(models.DateLayout)
			values[j] = point.Rate
			labels[dates[j]] = struct{}{}
		}
		if normalize {
			values = MinMaxNormalize(values)
		}

		chart.Series = append(chart.Series, models.HistoricalSeries{
			Currency: target,
			Label:    fmt.Sprintf("Historical %s Exchange Rate for %s", base, target),
			Dates:    dates,
			Values:   values,
			Color:    s.colors.ColorFor(ctx, target),
		})
	}

	chart.Labels = make([]string, 0, len(labels))
	for date := range labels {
		chart.Labels = append(chart.Labels, date)
	}
	slices.Sort(chart.Labels)
	return chart
}

// cloneChart copies every slice and value of c so the memo never shares
// memory with a chart handed to a caller.
func cloneChart(c models.Chart) models.Chart {
	out := c
	out.Labels = slices.Clone(c.Labels)
	out.Series = make([]models.HistoricalSeries, len(c.Series))
	for i, series := range c.Series {
		series.Dates = slices.Clone(series.Dates)
		values := make([]*float64, len(series.Values))
		for j, v := range series.Values {
			if v != nil {
				value := *v
				values[j] = &value
			}
		}
		series.Values = values
		out.Series[i] = series
	}
	return out
}
