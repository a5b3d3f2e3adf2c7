package realtime

import (
	"context"
	"sync"

	"github.com/golang/glog"

	"gomarket/internal/config"
	"gomarket/internal/metrics"
)

const defaultSubscriberBuffer = 64

// Publisher is where the backend sends events after a successful write.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// Source hands out raw envelope streams for one conversation.
type Source interface {
	Subscribe(conversationID string) (<-chan []byte, func())
}

type subscriber struct {
	ch   chan []byte
	once sync.Once
}

// Hub fans encoded envelopes out to the subscribers of a conversation on
// this node. A subscriber whose buffer is full misses the event.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]map[*subscriber]struct{}
	buffer int
}

func NewHub(cfg *config.Config) *Hub {
	buffer := cfg.Chat.SubscriberBuffer
	if buffer <= 0 {
		buffer = defaultSubscriberBuffer
	}
	return &Hub{
		subs:   make(map[string]map[*subscriber]struct{}),
		buffer: buffer,
	}
}

// Publish delivers locally. It is the publisher when no Kafka relay runs.
func (h *Hub) Publish(ctx context.Context, ev Event) error {
	data, err := ev.Encode()
	if err != nil {
		return err
	}
	h.Deliver(ev.ConversationID, data)
	return nil
}

// Deliver returns the number of subscribers that accepted the envelope.
func (h *Hub) Deliver(conversationID string, data []byte) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for sub := range h.subs[conversationID] {
		select {
		case sub.ch <- data:
			delivered++
		default:
			metrics.EventsDropped.WithLabelValues("slow_subscriber").Inc()
			glog.Warningf("hub: subscriber buffer full, dropping event for %s", conversationID)
		}
	}
	return delivered
}

// Subscribe returns the envelope channel and an idempotent cancel func that
// closes it.
func (h *Hub) Subscribe(conversationID string) (<-chan []byte, func()) {
	sub := &subscriber{ch: make(chan []byte, h.buffer)}

	h.mu.Lock()
	if h.subs[conversationID] == nil {
		h.subs[conversationID] = make(map[*subscriber]struct{})
	}
	h.subs[conversationID][sub] = struct{}{}
	h.mu.Unlock()
	metrics.Subscribers.Inc()

	return sub.ch, func() { h.remove(conversationID, sub) }
}

func (h *Hub) remove(conversationID string, sub *subscriber) {
	sub.once.Do(func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		if subs, ok := h.subs[conversationID]; ok {
			delete(subs, sub)
			if len(subs) == 0 {
				delete(h.subs, conversationID)
			}
		}
		close(sub.ch)
		metrics.Subscribers.Dec()
	})
}

// Subscribers reports the live subscriptions for a conversation.
func (h *Hub) Subscribers(conversationID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[conversationID])
}
