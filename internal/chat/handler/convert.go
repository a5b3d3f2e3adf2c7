package handler

import (
	"time"

	"github.com/golang/glog"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "gomarket/api/v1/chat"
	"gomarket/internal/chat/message"
	"gomarket/internal/chat/realtime"
	"gomarket/internal/chat/service"
)

func toProtoMessage(m message.Message) *pb.ChatMessage {
	out := &pb.ChatMessage{
		Id:             m.ID,
		ConversationId: m.ConversationID,
		SenderId:       m.SenderID,
		Kind:           string(m.Kind),
		Content:        m.Content,
		SentAt:         timestamppb.New(m.CreatedAt),
	}
	if m.ReadAt != nil {
		out.ReadAt = timestamppb.New(*m.ReadAt)
	}
	if m.Payload != nil {
		raw, err := message.EncodePayload(m.Payload)
		if err != nil {
			glog.Warningf("message %s: encode payload: %v", m.ID, err)
		} else {
			out.Payload = raw
		}
	}
	return out
}

func toProtoConversation(c service.Conversation) *pb.Conversation {
	return &pb.Conversation{
		Id:         c.ID,
		BuyerId:    c.BuyerID,
		SellerId:   c.SellerID,
		ContractId: c.ContractID,
		CreatedAt:  timestamppb.New(c.CreatedAt),
	}
}

func toMessageInserted(m message.Message) *pb.PushEvent {
	return &pb.PushEvent{
		Type:           string(realtime.EventMessageInserted),
		ConversationId: m.ConversationID,
		Message:        toProtoMessage(m),
	}
}

func toMessagesRead(conversationID, readerID string, at time.Time) *pb.PushEvent {
	return &pb.PushEvent{
		Type:           string(realtime.EventMessagesRead),
		ConversationId: conversationID,
		ReaderId:       readerID,
		ReadAt:         timestamppb.New(at),
	}
}
