// Package message defines the chat message variant model: a closed set of
// kinds, each with its own payload shape, plus the JSON wire form shared by
// the database layer, the push channel and the gRPC transport.
package message

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gomarket/internal/common"
)

// Kind is the discriminant selecting a message's payload shape.
type Kind string

const (
	KindText        Kind = "text"
	KindImage       Kind = "image"
	KindOffer       Kind = "offer"
	KindMilestone   Kind = "milestone"
	KindSystemEvent Kind = "system_event"
)

// Kinds lists every kind in declaration order.
var Kinds = []Kind{KindText, KindImage, KindOffer, KindMilestone, KindSystemEvent}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindText, KindImage, KindOffer, KindMilestone, KindSystemEvent:
		return true
	}
	return false
}

// Message is one entry of a conversation. Only ReadAt is ever mutated after
// creation.
type Message struct {
	ID             string
	ConversationID string
	SenderID       string
	Kind           Kind
	Content        string
	Payload        Payload
	CreatedAt      time.Time
	ReadAt         *time.Time
}

// Degraded reports whether the payload failed its kind contract and the
// message must render as a placeholder.
func (m Message) Degraded() bool {
	_, ok := m.Payload.(MissingPayload)
	return ok
}

func (m Message) IsRead() bool {
	return m.ReadAt != nil
}

// Before is the store ordering: created_at ascending, ties by id.
func (m Message) Before(other Message) bool {
	if !m.CreatedAt.Equal(other.CreatedAt) {
		return m.CreatedAt.Before(other.CreatedAt)
	}
	return m.ID < other.ID
}

func (m Message) String() string {
	return fmt.Sprintf("message{id=%s conv=%s sender=%s kind=%s}", m.ID, m.ConversationID, m.SenderID, m.Kind)
}

// NewText builds an unsaved text message.
func NewText(conversationID, senderID, content string) Message {
	return Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Kind:           KindText,
		Content:        content,
		Payload:        TextPayload{},
	}
}

// NewImage builds an unsaved image message with an optional caption.
func NewImage(conversationID, senderID, caption string, attachments ...Attachment) Message {
	return Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Kind:           KindImage,
		Content:        caption,
		Payload:        ImagePayload{Attachments: attachments},
	}
}

// ValidateOutgoing checks a message before it is persisted. Unlike decoding,
// which degrades, an invalid outgoing message is an error.
func ValidateOutgoing(m Message) error {
	if m.ConversationID == "" || m.SenderID == "" {
		return fmt.Errorf("%w: conversation and sender are required", common.ErrInvalidParticipants)
	}
	if !m.Kind.IsValid() {
		return fmt.Errorf("unknown message kind %q", m.Kind)
	}
	if m.Kind == KindText {
		if strings.TrimSpace(m.Content) == "" {
			return common.ErrEmptyMessage
		}
		return nil
	}
	if m.Payload == nil || m.Payload.Kind() != m.Kind {
		return fmt.Errorf("payload does not match kind %q", m.Kind)
	}
	if _, ok := m.Payload.(MissingPayload); ok {
		return fmt.Errorf("cannot persist a placeholder payload")
	}
	return validatePayload(m.Payload)
}

type wireMessage struct {
	ID             string          `json:"id"`
	ConversationID string          `json:"conversation_id"`
	SenderID       string          `json:"sender_id"`
	Kind           Kind            `json:"kind"`
	Content        string          `json:"content,omitempty"`
	Payload        json.RawMessage `json:"payload,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	ReadAt         *time.Time      `json:"read_at,omitempty"`
}

func (m Message) MarshalJSON() ([]byte, error) {
	raw, err := EncodePayload(m.Payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(wireMessage{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Kind:           m.Kind,
		Content:        m.Content,
		Payload:        raw,
		CreatedAt:      m.CreatedAt,
		ReadAt:         m.ReadAt,
	})
}

// UnmarshalJSON validates the envelope strictly and the payload leniently:
// a broken envelope is ErrMalformedEventPayload, a broken payload yields a
// MissingPayload placeholder.
func (m *Message) UnmarshalJSON(data []byte) error {
	var w wireMessage
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %v", common.ErrMalformedEventPayload, err)
	}
	switch {
	case w.ID == "":
		return fmt.Errorf("%w: missing id", common.ErrMalformedEventPayload)
	case w.ConversationID == "":
		return fmt.Errorf("%w: missing conversation_id", common.ErrMalformedEventPayload)
	case w.SenderID == "":
		return fmt.Errorf("%w: missing sender_id", common.ErrMalformedEventPayload)
	case !w.Kind.IsValid():
		return fmt.Errorf("%w: unknown kind %q", common.ErrMalformedEventPayload, w.Kind)
	case w.CreatedAt.IsZero():
		return fmt.Errorf("%w: missing created_at", common.ErrMalformedEventPayload)
	}

	*m = Message{
		ID:             w.ID,
		ConversationID: w.ConversationID,
		SenderID:       w.SenderID,
		Kind:           w.Kind,
		Content:        w.Content,
		Payload:        DecodePayload(w.Kind, w.Payload),
		CreatedAt:      w.CreatedAt,
		ReadAt:         w.ReadAt,
	}
	return nil
}
