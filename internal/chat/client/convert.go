package client

import (
	pb "gomarket/api/v1/chat"
	"gomarket/internal/chat/message"
	"gomarket/internal/chat/realtime"
	"gomarket/internal/chat/service"
)

// FromProtoMessage decodes the payload leniently; a broken payload becomes
// a degraded message rather than an error.
func FromProtoMessage(m *pb.ChatMessage) message.Message {
	if m == nil {
		return message.Message{}
	}
	kind := message.Kind(m.Kind)
	out := message.Message{
		ID:             m.Id,
		ConversationID: m.ConversationId,
		SenderID:       m.SenderId,
		Kind:           kind,
		Content:        m.Content,
		Payload:        message.DecodePayload(kind, m.Payload),
	}
	if m.SentAt != nil {
		out.CreatedAt = m.SentAt.AsTime()
	}
	if m.ReadAt != nil {
		t := m.ReadAt.AsTime()
		out.ReadAt = &t
	}
	return out
}

func FromProtoConversation(c *pb.Conversation) service.Conversation {
	if c == nil {
		return service.Conversation{}
	}
	out := service.Conversation{
		ID:         c.Id,
		BuyerID:    c.BuyerId,
		SellerID:   c.SellerId,
		ContractID: c.ContractId,
	}
	if c.CreatedAt != nil {
		out.CreatedAt = c.CreatedAt.AsTime()
	}
	return out
}

func FromProtoEvent(ev *pb.PushEvent) realtime.Event {
	out := realtime.Event{
		Type:           realtime.EventType(ev.Type),
		ConversationID: ev.ConversationId,
		ReaderID:       ev.ReaderId,
	}
	if ev.Message != nil {
		m := FromProtoMessage(ev.Message)
		out.Message = &m
	}
	if ev.ReadAt != nil {
		t := ev.ReadAt.AsTime()
		out.ReadAt = &t
	}
	return out
}
