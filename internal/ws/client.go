package ws

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 30 * time.Second
	pingPeriod = 25 * time.Second
)

// Client is one account's progress subscription.
type Client struct {
	AccountID int64
	Conn      *websocket.Conn
	Send      chan []byte

	hub  *Hub
	done chan struct{}

	stop     chan struct{}
	stopOnce sync.Once

	completedFlag atomic.Bool
}

func NewClient(accountID int64, conn *websocket.Conn, hub *Hub) *Client {
	return &Client{
		AccountID: accountID,
		Conn:      conn,
		Send:      make(chan []byte, 64),
		hub:       hub,
		done:      make(chan struct{}),
		stop:      make(chan struct{}),
	}
}

// shutdown asks the pumps to wind the connection down. Send stays open:
// the hub may still hold this client in a push snapshot.
func (c *Client) shutdown() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// Run registers with the hub and blocks until the connection drops.
func (c *Client) Run() {
	c.hub.register(c)
	go c.writePump()
	go c.readPump()
	<-c.done
}

// readPump consumes client frames. The only meaningful request is
// "status", which forces an immediate push instead of waiting for the
// next tick.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		_ = c.Conn.Close()
		close(c.done)
	}()

	c.Conn.SetReadLimit(1024)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, msg, err := c.Conn.ReadMessage()
		if err != nil {
			return
		}

		var req struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(msg, &req); err != nil {
			continue
		}
		if req.Type == MsgStatus {
			c.clearCompletedSent()
			c.hub.pushStatus(context.Background(), c)
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Conn.Close()
	}()

	for {
		select {
		case <-c.stop:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case msg := <-c.Send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) completedSent() bool { return c.completedFlag.Load() }
func (c *Client) markCompletedSent()  { c.completedFlag.Store(true) }
func (c *Client) clearCompletedSent() { c.completedFlag.Store(false) }
