package realtime

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang/glog"

	"gomarket/internal/chat/message"
	"gomarket/internal/metrics"
)

type MessageHandler func(m message.Message)

type ReadHandler func(readerID string, at time.Time)

// Listener turns a raw envelope stream into typed callbacks for one
// conversation.
type Listener struct {
	source Source
}

func NewListener(source Source) *Listener {
	return &Listener{source: source}
}

// Subscription is live until Unsubscribe returns or its context ends.
type Subscription struct {
	conversationID string
	cancel         context.CancelFunc
	done           chan struct{}
	once           sync.Once
}

func (s *Subscription) ConversationID() string {
	return s.conversationID
}

// Unsubscribe stops delivery and waits until no callback is running. Safe
// to call more than once.
func (s *Subscription) Unsubscribe() {
	s.once.Do(s.cancel)
	<-s.done
}

// Done is closed once the delivery goroutine has exited.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Subscribe starts delivering events for conversationID. onRead may be nil.
func (l *Listener) Subscribe(ctx context.Context, conversationID string, onMessage MessageHandler, onRead ReadHandler) (*Subscription, error) {
	if conversationID == "" {
		return nil, errors.New("subscribe: conversation id is required")
	}
	if onMessage == nil {
		return nil, errors.New("subscribe: message handler is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ch, cancelSource := l.source.Subscribe(conversationID)
	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{
		conversationID: conversationID,
		cancel:         cancel,
		done:           make(chan struct{}),
	}

	go func() {
		defer close(sub.done)
		defer cancelSource()

		for {
			select {
			case <-ctx.Done():
				glog.V(2).Infof("listener: %s unsubscribed", conversationID)
				return
			case data, ok := <-ch:
				if !ok {
					return
				}
				// a cancel that raced the receive wins
				if ctx.Err() != nil {
					return
				}
				l.dispatch(conversationID, data, onMessage, onRead)
			}
		}
	}()

	return sub, nil
}

func (l *Listener) dispatch(conversationID string, data []byte, onMessage MessageHandler, onRead ReadHandler) {
	ev, err := DecodeEvent(data)
	if err != nil {
		metrics.EventsDropped.WithLabelValues("malformed").Inc()
		glog.Warningf("listener: dropping event for %s: %v", conversationID, err)
		return
	}
	if ev.ConversationID != conversationID {
		metrics.EventsDropped.WithLabelValues("wrong_conversation").Inc()
		glog.Warningf("listener: event for %s arrived on %s", ev.ConversationID, conversationID)
		return
	}

	switch ev.Type {
	case EventMessageInserted:
		if ev.Message.Degraded() {
			glog.V(1).Infof("listener: %s delivered as placeholder", ev.Message)
		}
		onMessage(*ev.Message)
	case EventMessagesRead:
		if onRead != nil {
			onRead(ev.ReaderID, *ev.ReadAt)
		}
	}
}
