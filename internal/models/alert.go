package models

import "time"

// DefaultThreshold is the threshold preset of a fresh session.
const DefaultThreshold = 1.12

// AlertConfig is the user's threshold alert setup.
// swagger:model AlertConfig
type AlertConfig struct {
	// example: PLN
	From CurrencyCode `json:"from"`
	// example: USD
	To CurrencyCode `json:"to"`
	// example: 1.12
	Threshold float64 `json:"threshold"`
	// example: true
	Active bool `json:"active"`
}

// Eligible reports whether the config asks for polling.
func (c AlertConfig) Eligible() bool {
	return c.Active && c.From != "" && c.To != ""
}

// AlertState is the monitor state machine position.
type AlertState string

const (
	AlertIdle     AlertState = "idle"
	AlertPolling  AlertState = "polling"
	AlertAlerting AlertState = "alerting"
)

// AlertEvent is raised on every tick where the rate meets the threshold.
// swagger:model AlertEvent
type AlertEvent struct {
	// example: 1f0c5a3e-7a55-4b59-9e0d-6f4f1f6c0a11
	ID string `json:"id"`
	// example: PLN
	From CurrencyCode `json:"from"`
	// example: USD
	To CurrencyCode `json:"to"`
	// example: 1.12
	Threshold float64 `json:"threshold"`
	// example: 1.15
	Rate     float64   `json:"rate"`
	RaisedAt time.Time `json:"raised_at"`
}

// AlertStatus is a snapshot of the monitor.
// swagger:model AlertStatus
type AlertStatus struct {
	Config      AlertConfig `json:"config"`
	State       AlertState  `json:"state"`
	LastRate    *float64    `json:"last_rate,omitempty"`
	LastChecked *time.Time  `json:"last_checked,omitempty"`
	LastEvent   *AlertEvent `json:"last_event,omitempty"`
}

// AlertConfigRequest is the JSON body that updates the alert.
// swagger:model AlertConfigRequest
type AlertConfigRequest struct {
	// example: PLN
	From string `json:"from" validate:"omitempty,len=3,alpha"`
	// example: USD
	To string `json:"to" validate:"omitempty,len=3,alpha"`
	// example: 1.12
	Threshold float64 `json:"threshold" validate:"gte=0"`
	// example: true
	Active bool `json:"active"`
}
