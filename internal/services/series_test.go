package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

var seriesNow = time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC)

func day(s string) time.Time {
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func dated(points ...any) []models.DatedRate {
	out := make([]models.DatedRate, 0, len(points)/2)
	for i := 0; i < len(points); i += 2 {
		p := models.DatedRate{Date: day(points[i].(string))}
		if v, ok := points[i+1].(float64); ok {
			p.Rate = ptr(v)
		}
		out = append(out, p)
	}
	return out
}

func newSeriesService(ranges HistoricalRangeReader, colors ColorAssigner) *SeriesService {
	svc := NewSeriesService(ranges, colors)
	svc.now = func() time.Time { return seriesNow }
	return svc
}

func TestSeriesService_BuildSeries_Normalizes(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	start := seriesNow.AddDate(-5, 0, 0)

	ranges := NewMockHistoricalRangeReader(ctrl)
	ranges.EXPECT().GetHistoricalRange(gomock.Any(), models.PLN, models.USD, start, seriesNow).
		Return(dated("2024-01-02", 1.0, "2024-01-03", 2.0), nil)
	ranges.EXPECT().GetHistoricalRange(gomock.Any(), models.PLN, models.EUR, start, seriesNow).
		Return(dated("2024-01-02", 10.0, "2024-01-04", 10.0), nil)

	colors := NewMockColorAssigner(ctrl)
	colors.EXPECT().ColorFor(gomock.Any(), models.USD).Return("rgb(1, 2, 3)")
	colors.EXPECT().ColorFor(gomock.Any(), models.EUR).Return("rgb(4, 5, 6)")

	svc := newSeriesService(ranges, colors)
	chart, err := svc.BuildSeries(ctx, models.PLN, []models.CurrencyCode{models.USD, models.EUR})
	require.NoError(t, err)

	assert.Equal(t, models.PLN, chart.Base)
	assert.True(t, chart.Normalized)
	assert.Equal(t, models.NormalizedDisclaimer, chart.Disclaimer)
	assert.Equal(t, []string{"2024-01-02", "2024-01-03", "2024-01-04"}, chart.Labels)
	require.Len(t, chart.Series, 2)

	usd := chart.Series[0]
	assert.Equal(t, models.USD, usd.Currency)
	assert.Equal(t, "Historical PLN Exchange Rate for USD", usd.Label)
	assert.Equal(t, []string{"2024-01-02", "2024-01-03"}, usd.Dates)
	assert.Equal(t, []any{0.0, 1.0}, values(usd.Values))
	assert.Equal(t, "rgb(1, 2, 3)", usd.Color)

	eur := chart.Series[1]
	assert.Equal(t, models.EUR, eur.Currency)
	assert.Equal(t, []string{"2024-01-02", "2024-01-04"}, eur.Dates)
	assert.Equal(t, []any{1.0, 1.0}, values(eur.Values))
	assert.Equal(t, "rgb(4, 5, 6)", eur.Color)
}

func TestSeriesService_BuildSeries_SingleTargetPassThrough(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ranges := NewMockHistoricalRangeReader(ctrl)
	ranges.EXPECT().GetHistoricalRange(gomock.Any(), models.PLN, models.USD, gomock.Any(), gomock.Any()).
		Return(dated("2024-01-02", 0.25, "2024-01-03", nil, "2024-01-04", 0.26), nil)

	colors := NewMockColorAssigner(ctrl)
	colors.EXPECT().ColorFor(gomock.Any(), models.USD).Return("rgb(1, 2, 3)")

	svc := newSeriesService(ranges, colors)
	chart, err := svc.BuildSeries(ctx, models.PLN, []models.CurrencyCode{models.USD})
	require.NoError(t, err)

	assert.False(t, chart.Normalized)
	assert.Empty(t, chart.Disclaimer)
	require.Len(t, chart.Series, 1)
	assert.Equal(t, []any{0.25, nil, 0.26}, values(chart.Series[0].Values))
}

func TestSeriesService_BuildSeries_Memoized(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ranges := NewMockHistoricalRangeReader(ctrl)
	ranges.EXPECT().GetHistoricalRange(gomock.Any(), models.PLN, models.USD, gomock.Any(), gomock.Any()).
		Return(dated("2024-01-02", 0.25), nil).Times(2)
	ranges.EXPECT().GetHistoricalRange(gomock.Any(), models.PLN, models.EUR, gomock.Any(), gomock.Any()).
		Return(dated("2024-01-02", 0.23), nil).Times(2)
	ranges.EXPECT().GetHistoricalRange(gomock.Any(), models.EUR, models.USD, gomock.Any(), gomock.Any()).
		Return(dated("2024-01-02", 1.08), nil).Times(1)

	colors := NewMockColorAssigner(ctrl)
	colors.EXPECT().ColorFor(gomock.Any(), gomock.Any()).Return("rgb(0, 0, 0)").AnyTimes()

	svc := newSeriesService(ranges, colors)
	targets := []models.CurrencyCode{models.USD, models.EUR}

	first, err := svc.BuildSeries(ctx, models.PLN, targets)
	require.NoError(t, err)

	// same base and targets: no fetch
	again, err := svc.BuildSeries(ctx, models.PLN, []models.CurrencyCode{models.USD, models.EUR})
	require.NoError(t, err)
	assert.Equal(t, first, again)

	// different base: fetch
	_, err = svc.BuildSeries(ctx, models.EUR, []models.CurrencyCode{models.USD})
	require.NoError(t, err)

	// same codes in another order: fetch
	_, err = svc.BuildSeries(ctx, models.PLN, []models.CurrencyCode{models.EUR, models.USD})
	require.NoError(t, err)
}

func TestSeriesService_BuildSeries_MemoIsolatedFromCaller(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ranges := NewMockHistoricalRangeReader(ctrl)
	ranges.EXPECT().GetHistoricalRange(gomock.Any(), models.PLN, models.USD, gomock.Any(), gomock.Any()).
		Return(dated("2024-01-02", 1.0, "2024-01-03", 2.0), nil).Times(1)
	ranges.EXPECT().GetHistoricalRange(gomock.Any(), models.PLN, models.EUR, gomock.Any(), gomock.Any()).
		Return(dated("2024-01-02", 10.0, "2024-01-03", 10.0), nil).Times(1)

	colors := NewMockColorAssigner(ctrl)
	colors.EXPECT().ColorFor(gomock.Any(), gomock.Any()).Return("rgb(0, 0, 0)").AnyTimes()

	svc := newSeriesService(ranges, colors)
	targets := []models.CurrencyCode{models.USD, models.EUR}

	first, err := svc.BuildSeries(ctx, models.PLN, targets)
	require.NoError(t, err)

	first.Labels[0] = "1999-01-01"
	first.Series[0].Dates[0] = "1999-01-01"
	*first.Series[0].Values[1] = 42
	first.Series[1].Values[0] = nil
	first.Series[1].Color = "rgb(9, 9, 9)"

	again, err := svc.BuildSeries(ctx, models.PLN, targets)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-02", "2024-01-03"}, again.Labels)
	assert.Equal(t, []string{"2024-01-02", "2024-01-03"}, again.Series[0].Dates)
	assert.Equal(t, []any{0.0, 1.0}, values(again.Series[0].Values))
	assert.Equal(t, []any{1.0, 1.0}, values(again.Series[1].Values))
	assert.Equal(t, "rgb(0, 0, 0)", again.Series[1].Color)

	// mutating the second result must not leak either
	*again.Series[0].Values[0] = 7
	third, err := svc.BuildSeries(ctx, models.PLN, targets)
	require.NoError(t, err)
	assert.Equal(t, []any{0.0, 1.0}, values(third.Series[0].Values))
}

func TestSeriesService_BuildSeries_FailureKeepsPreviousChart(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ranges := NewMockHistoricalRangeReader(ctrl)
	ranges.EXPECT().GetHistoricalRange(gomock.Any(), models.PLN, models.USD, gomock.Any(), gomock.Any()).
		Return(dated("2024-01-02", 0.25), nil)
	ranges.EXPECT().GetHistoricalRange(gomock.Any(), models.PLN, models.EUR, gomock.Any(), gomock.Any()).
		Return(nil, models.ErrNetwork)

	colors := NewMockColorAssigner(ctrl)
	colors.EXPECT().ColorFor(gomock.Any(), models.USD).Return("rgb(1, 2, 3)")

	svc := newSeriesService(ranges, colors)
	first, err := svc.BuildSeries(ctx, models.PLN, []models.CurrencyCode{models.USD})
	require.NoError(t, err)

	_, err = svc.BuildSeries(ctx, models.PLN, []models.CurrencyCode{models.EUR})
	assert.ErrorIs(t, err, models.ErrNetwork)

	// the failed request did not replace the memo
	again, err := svc.BuildSeries(ctx, models.PLN, []models.CurrencyCode{models.USD})
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestSeriesService_BuildSeries_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSeriesService(NewMockHistoricalRangeReader(ctrl), NewMockColorAssigner(ctrl))

	_, err := svc.BuildSeries(context.Background(), models.PLN, nil)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = svc.BuildSeries(context.Background(), "pl", []models.CurrencyCode{models.USD})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestSeriesService_BuildSeries_Superseded(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	startedA := make(chan struct{})
	releaseA := make(chan struct{})

	ranges := NewMockHistoricalRangeReader(ctrl)
	ranges.EXPECT().GetHistoricalRange(gomock.Any(), models.PLN, models.USD, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, from, to models.CurrencyCode, start, end time.Time) ([]models.DatedRate, error) {
			close(startedA)
			<-releaseA
			return dated("2024-01-02", 0.25), nil
		})
	ranges.EXPECT().GetHistoricalRange(gomock.Any(), models.PLN, models.EUR, gomock.Any(), gomock.Any()).
		Return(dated("2024-01-02", 0.23), nil)

	colors := NewMockColorAssigner(ctrl)
	colors.EXPECT().ColorFor(gomock.Any(), gomock.Any()).Return("rgb(0, 0, 0)").AnyTimes()

	svc := newSeriesService(ranges, colors)

	errA := make(chan error, 1)
	go func() {
		_, err := svc.BuildSeries(ctx, models.PLN, []models.CurrencyCode{models.USD})
		errA <- err
	}()
	<-startedA

	chartB, err := svc.BuildSeries(ctx, models.PLN, []models.CurrencyCode{models.EUR})
	require.NoError(t, err)

	close(releaseA)
	assert.ErrorIs(t, <-errA, models.ErrSuperseded)

	// the memo still holds B
	again, err := svc.BuildSeries(ctx, models.PLN, []models.CurrencyCode{models.EUR})
	require.NoError(t, err)
	assert.Equal(t, chartB, again)
}

func TestSeriesService_BuildSeries_ErrorWrapsPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ranges := NewMockHistoricalRangeReader(ctrl)
	ranges.EXPECT().GetHistoricalRange(gomock.Any(), models.PLN, models.USD, gomock.Any(), gomock.Any()).
		Return(nil, errors.New("boom"))

	svc := newSeriesService(ranges, NewMockColorAssigner(ctrl))
	_, err := svc.BuildSeries(context.Background(), models.PLN, []models.CurrencyCode{models.USD})
	assert.EqualError(t, err, "history PLN->USD: boom")
}
