package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(nil)
	go hub.Run(ctx)

	srv := httptest.NewServer(NewHandler(hub, nil, nil))
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.ClientCount() == n }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_BroadcastsAvailabilityToAllClients(t *testing.T) {
	hub, srv := startHub(t)
	a := dial(t, srv)
	b := dial(t, srv)
	waitForClients(t, hub, 2)

	hub.MentorAvailabilityChanged(3, false)

	for _, conn := range []*websocket.Conn{a, b} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, raw, err := conn.ReadMessage()
		require.NoError(t, err)

		var evt MentorAvailabilityEvent
		require.NoError(t, json.Unmarshal(raw, &evt))
		assert.Equal(t, EventMentorAvailability, evt.Type)
		assert.Equal(t, 3, evt.MentorID)
		assert.False(t, evt.IsAvailable)
		assert.NotEmpty(t, evt.Timestamp)
	}
}

func TestHub_UnregistersClosedClients(t *testing.T) {
	hub, srv := startHub(t)
	conn := dial(t, srv)
	waitForClients(t, hub, 1)

	require.NoError(t, conn.Close())
	waitForClients(t, hub, 0)
}

func TestHub_NilIsSafe(t *testing.T) {
	var hub *Hub
	hub.Broadcast([]byte("x"))
	hub.MentorAvailabilityChanged(1, true)
	assert.Zero(t, hub.ClientCount())
}

func TestHandler_RejectsPlainHTTP(t *testing.T) {
	app := fiber.New()
	NewHandler(NewHub(nil), nil, nil).RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ws/mentors", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}

func TestHandler_ChecksOrigin(t *testing.T) {
	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	srv := httptest.NewServer(NewHandler(hub, []string{"http://localhost:5173"}, nil))
	defer srv.Close()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	header := http.Header{}
	header.Set("Origin", "http://evil.test")
	_, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	header.Set("Origin", "http://localhost:5173")
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	_ = conn.Close()
}

func TestHub_UnregisterRightAfterRegisterLeavesNoClient(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub := NewHub(nil)
	go hub.Run(ctx)

	for i := 0; i < 200; i++ {
		client := NewClient(hub, nil)
		require.True(t, hub.Register(client))
		hub.Unregister(client)
		require.Equal(t, 0, hub.ClientCount(), "iteration %d", i)

		_, open := <-client.send
		assert.False(t, open)
	}
}

func TestHub_UnregisterTwiceIsSafe(t *testing.T) {
	hub := NewHub(nil)
	client := NewClient(hub, nil)
	require.True(t, hub.Register(client))

	hub.Unregister(client)
	hub.Unregister(client)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_RefusesRegistrationAfterStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(nil)
	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()
	cancel()
	<-done

	assert.False(t, hub.Register(NewClient(hub, nil)))
	assert.Equal(t, 0, hub.ClientCount())
}
