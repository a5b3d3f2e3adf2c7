package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomarket/internal/chat/message"
	"gomarket/internal/dbmysql"
)

func TestToRecordToDomain(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	m := message.NewImage("conv-1", "seller-1", "the logo", message.Attachment{
		Name: "logo.png", ByteSize: 1200, URL: "http://media.local/media/abc",
	})
	m.ID = "m-1"
	m.CreatedAt = created

	rec, err := ToRecord(m)
	require.NoError(t, err)
	assert.Equal(t, "image", rec.Kind)
	assert.JSONEq(t, `{"attachments":[{"name":"logo.png","byte_size":1200,"url":"http://media.local/media/abc"}]}`, string(rec.Payload))

	back := ToDomain(rec)
	assert.Equal(t, m.ID, back.ID)
	assert.Equal(t, m.Content, back.Content)
	assert.Equal(t, m.Payload, back.Payload)
	assert.True(t, back.CreatedAt.Equal(created))
}

func TestToRecord_TextHasNoPayload(t *testing.T) {
	rec, err := ToRecord(message.NewText("conv-1", "buyer-1", "hi"))
	require.NoError(t, err)
	assert.Nil(t, rec.Payload)
}

func TestToDomain_Degrades(t *testing.T) {
	tests := []struct {
		name string
		rec  *dbmysql.Message
	}{
		{name: "offer without payload", rec: &dbmysql.Message{ID: "m-1", Kind: "offer"}},
		{name: "milestone without amount", rec: &dbmysql.Message{ID: "m-2", Kind: "milestone", Payload: []byte(`{"title":"M1","currency":"USD"}`)}},
		{name: "unknown kind", rec: &dbmysql.Message{ID: "m-3", Kind: "sticker", Payload: []byte(`{"id":1}`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ToDomain(tt.rec)
			assert.True(t, m.Degraded())
			assert.Equal(t, tt.rec.ID, m.ID)
		})
	}
}
