// Package handler exposes the chat core over gRPC and WebSocket.
package handler

//go:generate mockgen -destination=mocks/mock_backend.go -package=mocks gomarket/internal/chat/service Backend
//go:generate mockgen -destination=mocks/mock_handler.go -package=mocks gomarket/internal/chat/handler ConversationResolver,MessageSender

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang/glog"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "gomarket/api/v1/chat"
	"gomarket/internal/chat/message"
	"gomarket/internal/chat/realtime"
	"gomarket/internal/chat/service"
	"gomarket/internal/chat/upload"
	"gomarket/internal/common"
	"gomarket/internal/config"
)

const streamBuffer = 32

type ConversationResolver interface {
	Resolve(ctx context.Context, partyA, partyB string, opts ...service.ResolveOption) (service.Conversation, error)
}

type MessageSender interface {
	Send(ctx context.Context, req service.SendRequest) (message.Message, error)
}

type EventListener interface {
	Subscribe(ctx context.Context, conversationID string, onMessage realtime.MessageHandler, onRead realtime.ReadHandler) (*realtime.Subscription, error)
}

type ChatHandler struct {
	pb.UnimplementedChatServiceServer
	resolver     ConversationResolver
	sender       MessageSender
	backend      service.Backend
	listener     EventListener
	historyLimit int

	stopping chan struct{}
	stopOnce sync.Once
}

func NewChatHandler(resolver ConversationResolver, sender MessageSender, backend service.Backend, listener EventListener, cfg *config.Config) *ChatHandler {
	limit := cfg.Chat.HistoryLimit
	if limit <= 0 {
		limit = 500
	}
	return &ChatHandler{
		resolver:     resolver,
		sender:       sender,
		backend:      backend,
		listener:     listener,
		historyLimit: limit,
		stopping:     make(chan struct{}),
	}
}

// Shutdown ends every open StreamMessages call. Call it before
// grpc.Server.GracefulStop, which waits for streams to return.
func (h *ChatHandler) Shutdown() {
	h.stopOnce.Do(func() { close(h.stopping) })
}

func (h *ChatHandler) ResolveConversation(ctx context.Context, req *pb.ResolveConversationRequest) (*pb.ResolveConversationResponse, error) {
	viewerID, err := viewer(ctx)
	if err != nil {
		return nil, err
	}
	if viewerID != req.BuyerId && viewerID != req.SellerId {
		return nil, status.Error(codes.PermissionDenied, "caller is not a party of the conversation")
	}

	conv, err := h.resolver.Resolve(ctx, req.BuyerId, req.SellerId, service.WithContract(req.ContractId))
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ResolveConversationResponse{Conversation: toProtoConversation(conv)}, nil
}

func (h *ChatHandler) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	viewerID, err := h.authorize(ctx, req.ConversationId)
	if err != nil {
		return nil, err
	}

	sendReq := service.SendRequest{
		ConversationID: req.ConversationId,
		SenderID:       viewerID,
		Text:           req.Content,
	}
	if a := req.Attachment; a != nil {
		sendReq.Attachment = &upload.File{
			Name:     a.Name,
			MimeType: a.MimeType,
			Size:     int64(len(a.Data)),
			Content:  bytes.NewReader(a.Data),
		}
	}

	saved, err := h.sender.Send(ctx, sendReq)
	if err != nil {
		glog.Warningf("SendMessage %s by %s: %v", req.ConversationId, viewerID, err)
		return nil, toStatus(err)
	}
	return &pb.SendMessageResponse{Success: true, Message: toProtoMessage(saved)}, nil
}

func (h *ChatHandler) GetChatHistory(ctx context.Context, req *pb.GetChatHistoryRequest) (*pb.GetChatHistoryResponse, error) {
	if req.Offset < 0 || req.Limit < 0 {
		return nil, status.Error(codes.InvalidArgument, "offset and limit must not be negative")
	}
	if _, err := h.authorize(ctx, req.ConversationId); err != nil {
		return nil, err
	}

	limit := int(req.Limit)
	if limit == 0 || limit > h.historyLimit {
		limit = h.historyLimit
	}
	msgs, err := h.backend.History(ctx, req.ConversationId, int(req.Offset), limit)
	if err != nil {
		return nil, toStatus(err)
	}

	out := make([]*pb.ChatMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toProtoMessage(m))
	}
	return &pb.GetChatHistoryResponse{Messages: out}, nil
}

func (h *ChatHandler) MarkRead(ctx context.Context, req *pb.MarkReadRequest) (*pb.MarkReadResponse, error) {
	viewerID, err := h.authorize(ctx, req.ConversationId)
	if err != nil {
		return nil, err
	}
	n, err := h.backend.MarkRead(ctx, req.ConversationId, viewerID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.MarkReadResponse{Updated: n}, nil
}

// StreamMessages pushes inserts and read receipts of one conversation until
// the client goes away. Events that overflow the buffer are dropped; the
// client reloads history to catch up.
func (h *ChatHandler) StreamMessages(req *pb.StreamMessagesRequest, stream grpc.ServerStreamingServer[pb.PushEvent]) error {
	ctx := stream.Context()
	if _, err := h.authorize(ctx, req.ConversationId); err != nil {
		return err
	}

	events := make(chan *pb.PushEvent, streamBuffer)
	push := func(ev *pb.PushEvent) {
		select {
		case events <- ev:
		default:
			glog.Warningf("stream %s: client too slow, dropping %s", req.ConversationId, ev.Type)
		}
	}

	sub, err := h.listener.Subscribe(ctx, req.ConversationId,
		func(m message.Message) { push(toMessageInserted(m)) },
		func(readerID string, at time.Time) { push(toMessagesRead(req.ConversationId, readerID, at)) },
	)
	if err != nil {
		return toStatus(err)
	}
	defer sub.Unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-h.stopping:
			return status.Error(codes.Unavailable, "server shutting down")
		case <-sub.Done():
			return status.Error(codes.Unavailable, "subscription ended")
		case ev := <-events:
			if err := stream.Send(ev); err != nil {
				glog.V(1).Infof("stream %s: send failed: %v", req.ConversationId, err)
				return err
			}
		}
	}
}

// authorize checks that the caller belongs to the conversation.
func (h *ChatHandler) authorize(ctx context.Context, conversationID string) (string, error) {
	viewerID, err := viewer(ctx)
	if err != nil {
		return "", err
	}
	if conversationID == "" {
		return "", status.Error(codes.InvalidArgument, "conversation_id is required")
	}
	conv, err := h.backend.GetConversation(ctx, conversationID)
	if err != nil {
		return "", toStatus(err)
	}
	if !conv.Has(viewerID) {
		return "", status.Error(codes.PermissionDenied, "caller is not a party of the conversation")
	}
	return viewerID, nil
}

func viewer(ctx context.Context) (string, error) {
	id, ok := common.ViewerFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "viewer not authenticated")
	}
	return id, nil
}

func toStatus(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, common.ErrInvalidParticipants),
		errors.Is(err, common.ErrEmptyMessage),
		errors.Is(err, common.ErrAttachmentTooLarge):
		return withReason(codes.InvalidArgument, err)
	case errors.Is(err, common.ErrConversationNotFound):
		return withReason(codes.NotFound, err)
	case errors.Is(err, common.ErrAttachmentUploadFailed),
		errors.Is(err, common.ErrMessagePersistFailed):
		return withReason(codes.Unavailable, err)
	}
	return status.Error(codes.Internal, err.Error())
}

// withReason attaches an ErrorInfo so clients can rebuild the chat error.
func withReason(code codes.Code, err error) error {
	st := status.New(code, err.Error())
	info := &errdetails.ErrorInfo{Reason: common.ErrorReason(err), Domain: common.ErrorDomain}
	if detailed, derr := st.WithDetails(info); derr == nil {
		st = detailed
	}
	return st.Err()
}
