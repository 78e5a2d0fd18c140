// Package progressws broadcasts the generation percentage feed to GUI
// clients over websockets. It implements progress.Sink, so the core
// stays unaware of the transport.
package progressws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeTimeout = 5 * time.Second

type update struct {
	Percent float64 `json:"percent"`
	Message string  `json:"message,omitempty"`
}

type Broadcaster struct {
	log      *log.Logger
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
	last  *update
}

func NewBroadcaster(logger *log.Logger) *Broadcaster {
	return &Broadcaster{
		log: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 4 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // local GUI only
		},
		conns: map[*websocket.Conn]struct{}{},
	}
}

// Handler upgrades and registers one GUI client. A client connecting
// mid-run immediately receives the latest update.
func (b *Broadcaster) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := b.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}

		b.mu.Lock()
		b.conns[conn] = struct{}{}
		last := b.last
		b.mu.Unlock()

		if last != nil {
			payload, _ := json.Marshal(last)
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			_ = conn.WriteMessage(websocket.TextMessage, payload)
		}

		// Reader loop exists only to notice the close.
		go func() {
			defer b.drop(conn)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}
}

// Notify implements progress.Sink. Dead connections are dropped, never
// retried; the feed is fire-and-forget.
func (b *Broadcaster) Notify(percent float64, message string) {
	u := update{Percent: percent, Message: message}
	payload, err := json.Marshal(u)
	if err != nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.last = &u

	for conn := range b.conns {
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			if b.log != nil {
				b.log.Printf("progress client dropped: %v", err)
			}
			delete(b.conns, conn)
			_ = conn.Close()
		}
	}
}

func (b *Broadcaster) drop(conn *websocket.Conn) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.conns[conn]; ok {
		delete(b.conns, conn)
		_ = conn.Close()
	}
}

// Close disconnects all clients.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for conn := range b.conns {
		_ = conn.Close()
		delete(b.conns, conn)
	}
}
