// Package realtime carries chat events from the backend to live
// subscribers: an in-process hub, an optional Kafka relay between nodes and
// the listener that decodes envelopes for a single conversation.
package realtime

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gomarket/internal/chat/message"
	"gomarket/internal/common"
)

type EventType string

const (
	EventMessageInserted EventType = "message.inserted"
	EventMessagesRead    EventType = "messages.read"
)

// Event is the push envelope.
type Event struct {
	Type           EventType        `json:"type"`
	ConversationID string           `json:"conversation_id"`
	Message        *message.Message `json:"message,omitempty"`
	ReaderID       string           `json:"reader_id,omitempty"`
	ReadAt         *time.Time       `json:"read_at,omitempty"`
}

func NewMessageInserted(m message.Message) Event {
	return Event{
		Type:           EventMessageInserted,
		ConversationID: m.ConversationID,
		Message:        &m,
	}
}

func NewMessagesRead(conversationID, readerID string, at time.Time) Event {
	return Event{
		Type:           EventMessagesRead,
		ConversationID: conversationID,
		ReaderID:       readerID,
		ReadAt:         &at,
	}
}

func (e Event) Encode() ([]byte, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encode %s event: %w", e.Type, err)
	}
	return b, nil
}

// DecodeEvent returns ErrMalformedEventPayload for anything that is not a
// complete envelope. Payload problems inside a message do not fail decoding.
func DecodeEvent(data []byte) (Event, error) {
	var e Event
	if err := json.Unmarshal(data, &e); err != nil {
		if errors.Is(err, common.ErrMalformedEventPayload) {
			return Event{}, err
		}
		return Event{}, fmt.Errorf("%w: %v", common.ErrMalformedEventPayload, err)
	}
	if e.ConversationID == "" {
		return Event{}, fmt.Errorf("%w: missing conversation_id", common.ErrMalformedEventPayload)
	}

	switch e.Type {
	case EventMessageInserted:
		if e.Message == nil {
			return Event{}, fmt.Errorf("%w: missing message", common.ErrMalformedEventPayload)
		}
		if e.Message.ConversationID != e.ConversationID {
			return Event{}, fmt.Errorf("%w: message belongs to %s", common.ErrMalformedEventPayload, e.Message.ConversationID)
		}
	case EventMessagesRead:
		if e.ReaderID == "" || e.ReadAt == nil {
			return Event{}, fmt.Errorf("%w: read event needs reader_id and read_at", common.ErrMalformedEventPayload)
		}
	default:
		return Event{}, fmt.Errorf("%w: unknown event type %q", common.ErrMalformedEventPayload, e.Type)
	}
	return e, nil
}
