package progressws

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return conn
}

func TestBroadcastReachesClient(t *testing.T) {
	b := NewBroadcaster(nil)
	defer b.Close()
	srv := httptest.NewServer(b.Handler())
	defer srv.Close()

	conn := dial(t, srv)
	defer conn.Close()

	b.Notify(42.5, "Generating ground...")

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var u update
	if err := json.Unmarshal(payload, &u); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if u.Percent != 42.5 || u.Message != "Generating ground..." {
		t.Fatalf("got %+v", u)
	}
}

func TestLateClientGetsLastUpdate(t *testing.T) {
	b := NewBroadcaster(nil)
	defer b.Close()
	srv := httptest.NewServer(b.Handler())
	defer srv.Close()

	b.Notify(60, "Generating ground...")

	conn := dial(t, srv)
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var u update
	if err := json.Unmarshal(payload, &u); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if u.Percent != 60 {
		t.Fatalf("late client got %+v, want the 60%% mark", u)
	}
}

func TestNotifyWithoutClients(t *testing.T) {
	b := NewBroadcaster(nil)
	b.Notify(11, "Processing terrain...")
	b.Notify(100, "Done!")
}
