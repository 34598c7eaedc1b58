package handlers_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-rates/internal/handlers"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

func dialAlertStream(t *testing.T, hub *handlers.AlertHub) *websocket.Conn {
	t.Helper()
	server := httptest.NewServer(handlers.NewAlertStreamHandler(hub))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestAlertHub_BroadcastsToClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := handlers.NewAlertHub()
	go hub.Run(ctx)

	first := dialAlertStream(t, hub)
	second := dialAlertStream(t, hub)

	event := models.AlertEvent{
		ID:        "4d7c9c43-5d61-4c6f-8a0f-7bd1c1b3a6d0",
		From:      models.PLN,
		To:        models.USD,
		Threshold: 0.2,
		Rate:      0.25,
		RaisedAt:  time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC),
	}

	// Clients register with the hub asynchronously, so keep publishing
	// until both have received the event.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		ticker := time.NewTicker(20 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				_ = hub.PublishAlert(ctx, event)
			}
		}
	}()

	type received struct {
		event models.AlertEvent
		err   error
	}
	read := func(conn *websocket.Conn) <-chan received {
		ch := make(chan received, 1)
		go func() {
			_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
			var got models.AlertEvent
			err := conn.ReadJSON(&got)
			ch <- received{event: got, err: err}
		}()
		return ch
	}

	firstCh, secondCh := read(first), read(second)
	for _, ch := range []<-chan received{firstCh, secondCh} {
		r := <-ch
		require.NoError(t, r.err)
		assert.Equal(t, event.ID, r.event.ID)
		assert.Equal(t, event.Rate, r.event.Rate)
		assert.True(t, event.RaisedAt.Equal(r.event.RaisedAt))
	}
}

func TestAlertHub_PublishAfterStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := handlers.NewAlertHub()

	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()
	cancel()
	<-done

	for i := 0; i < 20; i++ {
		assert.NoError(t, hub.PublishAlert(context.Background(), models.AlertEvent{ID: "late"}))
	}
}
