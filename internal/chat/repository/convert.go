package repository

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"gomarket/internal/chat/message"
	"gomarket/internal/dbmysql"
)

// ToRecord maps a domain message onto its row.
func ToRecord(m message.Message) (*dbmysql.Message, error) {
	raw, err := message.EncodePayload(m.Payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	rec := &dbmysql.Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Kind:           m.Kind.String(),
		Content:        m.Content,
		CreatedAt:      m.CreatedAt,
		ReadAt:         m.ReadAt,
	}
	if len(raw) > 0 {
		rec.Payload = datatypes.JSON(raw)
	}
	return rec, nil
}

// ToDomain never fails: rows whose payload no longer satisfies its kind come
// back as placeholders.
func ToDomain(rec *dbmysql.Message) message.Message {
	kind := message.Kind(rec.Kind)
	m := message.Message{
		ID:             rec.ID,
		ConversationID: rec.ConversationID,
		SenderID:       rec.SenderID,
		Kind:           kind,
		Content:        rec.Content,
		CreatedAt:      rec.CreatedAt.UTC(),
		ReadAt:         rec.ReadAt,
	}
	if !kind.IsValid() {
		m.Payload = message.MissingPayload{Declared: kind, Reason: "unknown kind", Raw: json.RawMessage(rec.Payload)}
		return m
	}
	m.Payload = message.DecodePayload(kind, json.RawMessage(rec.Payload))
	return m
}

func ToDomainList(recs []*dbmysql.Message) []message.Message {
	out := make([]message.Message, 0, len(recs))
	for _, rec := range recs {
		out = append(out, ToDomain(rec))
	}
	return out
}
