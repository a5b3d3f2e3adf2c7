package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomarket/internal/chat/message"
	"gomarket/internal/common"
)

func sampleMessage() message.Message {
	m := message.NewText("conv-1", "seller-1", "hello")
	m.ID = "m-1"
	m.CreatedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return m
}

func TestEvent_RoundTrip(t *testing.T) {
	data, err := NewMessageInserted(sampleMessage()).Encode()
	require.NoError(t, err)

	ev, err := DecodeEvent(data)
	require.NoError(t, err)
	assert.Equal(t, EventMessageInserted, ev.Type)
	require.NotNil(t, ev.Message)
	assert.Equal(t, "m-1", ev.Message.ID)
	assert.Equal(t, "hello", ev.Message.Content)

	at := time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC)
	data, err = NewMessagesRead("conv-1", "buyer-1", at).Encode()
	require.NoError(t, err)

	ev, err = DecodeEvent(data)
	require.NoError(t, err)
	assert.Equal(t, EventMessagesRead, ev.Type)
	assert.Equal(t, "buyer-1", ev.ReaderID)
	assert.True(t, ev.ReadAt.Equal(at))
}

func TestDecodeEvent_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: `{"type":`},
		{name: "unknown type", data: `{"type":"typing","conversation_id":"conv-1"}`},
		{name: "missing conversation", data: `{"type":"messages.read","reader_id":"b","read_at":"2024-05-01T12:00:00Z"}`},
		{name: "insert without message", data: `{"type":"message.inserted","conversation_id":"conv-1"}`},
		{name: "message without id", data: `{"type":"message.inserted","conversation_id":"conv-1","message":{"conversation_id":"conv-1","sender_id":"s","kind":"text","created_at":"2024-05-01T12:00:00Z"}}`},
		{name: "message with unknown kind", data: `{"type":"message.inserted","conversation_id":"conv-1","message":{"id":"m","conversation_id":"conv-1","sender_id":"s","kind":"sticker","created_at":"2024-05-01T12:00:00Z"}}`},
		{name: "message for other conversation", data: `{"type":"message.inserted","conversation_id":"conv-1","message":{"id":"m","conversation_id":"conv-2","sender_id":"s","kind":"text","created_at":"2024-05-01T12:00:00Z"}}`},
		{name: "read without timestamp", data: `{"type":"messages.read","conversation_id":"conv-1","reader_id":"b"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeEvent([]byte(tt.data))
			assert.ErrorIs(t, err, common.ErrMalformedEventPayload)
		})
	}
}

func TestDecodeEvent_DegradedPayloadIsDelivered(t *testing.T) {
	data := `{"type":"message.inserted","conversation_id":"conv-1","message":{"id":"m","conversation_id":"conv-1","sender_id":"s","kind":"offer","payload":{"title":"Logo"},"created_at":"2024-05-01T12:00:00Z"}}`

	ev, err := DecodeEvent([]byte(data))
	require.NoError(t, err)
	assert.True(t, ev.Message.Degraded())
}
