package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"whalebux_backend/internal/domain"
	"whalebux_backend/internal/logger"
	"whalebux_backend/internal/service"
)

// Hub tracks connected clients and pushes mining progress to each of
// them on a fixed cadence. One connection per account; a second
// connection replaces the first.
type Hub struct {
	mining *service.MiningService

	mu      sync.RWMutex
	clients map[int64]*Client

	pushEvery time.Duration
}

func NewHub(mining *service.MiningService, pushEvery time.Duration) *Hub {
	if pushEvery <= 0 {
		pushEvery = 5 * time.Second
	}
	return &Hub{
		mining:    mining,
		clients:   make(map[int64]*Client),
		pushEvery: pushEvery,
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	if prev, ok := h.clients[c.AccountID]; ok && prev != c {
		// never close Send: a push tick may still hold prev in its
		// snapshot, so the channel has to stay writable
		prev.shutdown()
	}
	h.clients[c.AccountID] = c
	h.mu.Unlock()
	logger.Info("ws client connected", "account_id", c.AccountID)
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if cur, ok := h.clients[c.AccountID]; ok && cur == c {
		delete(h.clients, c.AccountID)
	}
	h.mu.Unlock()
	logger.Info("ws client disconnected", "account_id", c.AccountID)
}

// Run pushes progress frames until ctx is cancelled. Start it once
// from main.
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(h.pushEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.pushAll(ctx)
		}
	}
}

func (h *Hub) pushAll(ctx context.Context) {
	h.mu.RLock()
	snapshot := make([]*Client, 0, len(h.clients))
	for _, c := range h.clients {
		snapshot = append(snapshot, c)
	}
	h.mu.RUnlock()

	for _, c := range snapshot {
		h.pushStatus(ctx, c)
	}
}

// pushStatus sends one progress frame. The completed frame is sent
// once per transition; idle accounts get nothing until they start a
// session.
func (h *Hub) pushStatus(ctx context.Context, c *Client) {
	st, err := h.mining.Status(ctx, c.AccountID)
	if err != nil {
		logger.Error("ws status failed", "account_id", c.AccountID, "error", err)
		return
	}

	switch st.State {
	case domain.SessionIdle:
		return
	case domain.SessionCompleted:
		if c.completedSent() {
			return
		}
	}

	completed := st.State == domain.SessionCompleted
	msgType := MsgProgress
	if completed {
		msgType = MsgCompleted
	} else {
		c.clearCompletedSent()
	}

	payload := ProgressPayload{
		Type:              msgType,
		State:             string(st.State),
		Progress:          st.ProgressPercent,
		TimeLeftSeconds:   st.TimeLeftSeconds,
		Earnings:          st.Earnings,
		PotentialEarnings: st.Params.PotentialEarnings,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	h.deliver(c, data, completed)
}

// deliver hands a frame to the client's write pump without blocking.
// The completed flag is latched only on a successful handoff, so a
// dropped frame gets retried on the next tick.
func (h *Hub) deliver(c *Client, data []byte, completed bool) {
	select {
	case c.Send <- data:
		if completed {
			c.markCompletedSent()
		}
	default:
		// slow consumer, drop the frame
	}
}
