package services

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

//go:generate mockgen -source=alert.go -destination=alert_mock.go -package=services

// DefaultAlertInterval is the poll period of the threshold alert.
const DefaultAlertInterval = 30 * time.Second

// ErrMonitorClosed is returned by Configure after Close.
var ErrMonitorClosed = errors.New("alert monitor closed")

// AlertSink receives every raised alert.
type AlertSink interface {
	PublishAlert(ctx context.Context, event models.AlertEvent) error // Delivers one alert event
}

// TickerFactory starts a ticker and returns its channel and stop function.
type TickerFactory func(d time.Duration) (<-chan time.Time, func())

func newTimeTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// AlertOption customizes an AlertMonitor.
type AlertOption func(*AlertMonitor)

// WithInterval sets the poll period.
func WithInterval(d time.Duration) AlertOption {
	return func(m *AlertMonitor) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithTicker replaces the time based ticker.
func WithTicker(f TickerFactory) AlertOption {
	return func(m *AlertMonitor) {
		m.ticker = f
	}
}

// WithClock replaces time.Now for event timestamps.
func WithClock(now func() time.Time) AlertOption {
	return func(m *AlertMonitor) {
		m.now = now
	}
}

// WithSinks adds alert sinks.
func WithSinks(sinks ...AlertSink) AlertOption {
	return func(m *AlertMonitor) {
		m.sinks = append(m.sinks, sinks...)
	}
}

// AlertMonitor polls the latest rate of one currency pair and raises an
// alert on every tick where the rate meets the threshold.
//
// The poll loop runs only while the config is active with both currencies
// set. Deactivating stops the loop and waits for it to exit; a tick that was
// fetching at that moment is discarded.
type AlertMonitor struct {
	rates    LatestRateReader
	sinks    []AlertSink
	interval time.Duration
	ticker   TickerFactory
	now      func() time.Time

	mu          sync.Mutex
	cfg         models.AlertConfig
	state       models.AlertState
	lastRate    *float64
	lastChecked *time.Time
	lastEvent   *models.AlertEvent
	epoch       uint64
	cancel      context.CancelFunc
	done        chan struct{}
	closed      bool
}

// NewAlertMonitor creates an idle monitor.
func NewAlertMonitor(rates LatestRateReader, opts ...AlertOption) *AlertMonitor {
	m := &AlertMonitor{
		rates:    rates,
		interval: DefaultAlertInterval,
		ticker:   newTimeTicker,
		now:      time.Now,
		cfg:      models.AlertConfig{Threshold: models.DefaultThreshold},
		state:    models.AlertIdle,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Configure replaces the alert config. The new config is read by the next tick.
func (m *AlertMonitor) Configure(cfg models.AlertConfig) error {
	if cfg.From != "" && !cfg.From.IsWellFormed() {
		return models.InvalidInputf("malformed currency code %q", cfg.From)
	}
	if cfg.To != "" && !cfg.To.IsWellFormed() {
		return models.InvalidInputf("malformed currency code %q", cfg.To)
	}
	if math.IsNaN(cfg.Threshold) || math.IsInf(cfg.Threshold, 0) || cfg.Threshold < 0 ||
		(cfg.Active && cfg.Threshold == 0) {
		return models.InvalidInputf("threshold must be a positive number, got %v", cfg.Threshold)
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrMonitorClosed
	}

	// a tick fetching under the old pair or threshold must not apply its result
	if cfg.From != m.cfg.From || cfg.To != m.cfg.To || cfg.Threshold != m.cfg.Threshold {
		m.epoch++
	}
	m.cfg = cfg
	var stopped chan struct{}
	if cfg.Eligible() {
		if m.cancel == nil {
			m.start()
		}
		if m.state == models.AlertIdle {
			m.state = models.AlertPolling
		}
	} else {
		m.state = models.AlertIdle
		stopped = m.stop()
	}
	state := m.state
	m.mu.Unlock()

	if stopped != nil {
		<-stopped
	}

	logger.Log.Infow("alert configured",
		"from", cfg.From,
		"to", cfg.To,
		"threshold", cfg.Threshold,
		"active", cfg.Active,
		"state", state,
	)
	return nil
}

// Tick performs one poll with the config as it is when the tick starts.
// A failed fetch is logged and leaves the state untouched.
func (m *AlertMonitor) Tick(ctx context.Context) {
	m.mu.Lock()
	cfg := m.cfg
	epoch := m.epoch
	m.mu.Unlock()

	if !cfg.Eligible() {
		return
	}

	latest, err := m.rates.GetLatestRate(ctx, cfg.From, cfg.To, 1)
	if err != nil {
		if ctx.Err() == nil {
			logger.Log.Warnw("alert tick skipped", "from", cfg.From, "to", cfg.To, "error", err)
		}
		return
	}

	checked := m.now()
	m.mu.Lock()
	if ctx.Err() != nil || epoch != m.epoch || !m.cfg.Eligible() {
		m.mu.Unlock()
		logger.Log.Infow("alert tick discarded after config change", "from", cfg.From, "to", cfg.To)
		return
	}

	rate := latest.Rate
	m.lastRate = &rate
	m.lastChecked = &checked

	var event *models.AlertEvent
	if rate >= cfg.Threshold {
		event = &models.AlertEvent{
			ID:        uuid.NewString(),
			From:      cfg.From,
			To:        cfg.To,
			Threshold: cfg.Threshold,
			Rate:      rate,
			RaisedAt:  checked,
		}
		m.state = models.AlertAlerting
		m.lastEvent = event
	} else {
		m.state = models.AlertPolling
	}
	sinks := m.sinks
	m.mu.Unlock()

	if event == nil {
		logger.Log.Debugw("alert tick below threshold", "from", cfg.From, "to", cfg.To, "rate", rate, "threshold", cfg.Threshold)
		return
	}

	logger.Log.Infow("alert raised", "id", event.ID, "from", cfg.From, "to", cfg.To, "rate", rate, "threshold", cfg.Threshold)
	for _, sink := range sinks {
		if err := sink.PublishAlert(ctx, *event); err != nil {
			logger.Log.Errorw("failed to publish alert", "id", event.ID, "error", err)
		}
	}
}

// Acknowledge returns an alerting monitor to polling until the next
// qualifying tick.
func (m *AlertMonitor) Acknowledge() models.AlertState {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == models.AlertAlerting {
		m.state = models.AlertPolling
	}
	return m.state
}

// Status returns a snapshot of the monitor.
func (m *AlertMonitor) Status() models.AlertStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	status := models.AlertStatus{Config: m.cfg, State: m.state}
	if m.lastRate != nil {
		rate := *m.lastRate
		status.LastRate = &rate
	}
	if m.lastChecked != nil {
		checked := *m.lastChecked
		status.LastChecked = &checked
	}
	if m.lastEvent != nil {
		event := *m.lastEvent
		status.LastEvent = &event
	}
	return status
}

// Close stops the poll loop and waits for it to exit. Further Configure
// calls fail with ErrMonitorClosed.
func (m *AlertMonitor) Close() {
	m.mu.Lock()
	m.closed = true
	m.state = models.AlertIdle
	stopped := m.stop()
	m.mu.Unlock()

	if stopped != nil {
		<-stopped
	}
}

// start launches the poll loop. Must be called with mu held.
func (m *AlertMonitor) start() {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	m.epoch++
	m.cancel = cancel
	m.done = done
	go m.run(ctx, done)
}

// stop cancels the poll loop and returns the channel closed when it has
// exited, or nil when no loop runs. Must be called with mu held.
func (m *AlertMonitor) stop() chan struct{} {
	if m.cancel == nil {
		return nil
	}
	m.cancel()
	done := m.done
	m.cancel = nil
	m.done = nil
	return done
}

func (m *AlertMonitor) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticks, stopTicker := m.ticker(m.interval)
	defer stopTicker()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticks:
			m.Tick(ctx)
		}
	}
}
