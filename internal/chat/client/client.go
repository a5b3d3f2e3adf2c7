// Package client adapts the gRPC ChatService to the collaborators a
// session.View needs, so a remote process can mount conversations.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/golang/glog"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "gomarket/api/v1/chat"
	"gomarket/internal/chat/message"
	"gomarket/internal/chat/realtime"
	"gomarket/internal/chat/service"
	"gomarket/internal/chat/upload"
	"gomarket/internal/common"
	"gomarket/internal/config"
)

const (
	markReadTimeout = 5 * time.Second
	streamBuffer    = 64
)

// Client calls ChatService with a bearer token on every request.
type Client struct {
	api      pb.ChatServiceClient
	token    string
	maxBytes int64

	wg sync.WaitGroup
}

type Option func(*Client)

// WithMaxAttachmentBytes sets the attachment cap checked before any call.
// It should match the server's CHAT_MAX_ATTACHMENT_BYTES.
func WithMaxAttachmentBytes(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBytes = n
		}
	}
}

func New(conn grpc.ClientConnInterface, token string, opts ...Option) *Client {
	c := &Client{
		api:      pb.NewChatServiceClient(conn),
		token:    token,
		maxBytes: config.DefaultMaxAttachmentBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) authed(ctx context.Context) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+c.token)
}

func (c *Client) Resolve(ctx context.Context, buyerID, sellerID, contractID string) (service.Conversation, error) {
	resp, err := c.api.ResolveConversation(c.authed(ctx), &pb.ResolveConversationRequest{
		BuyerId:    buyerID,
		SellerId:   sellerID,
		ContractId: contractID,
	})
	if err != nil {
		return service.Conversation{}, fromStatus(err)
	}
	return FromProtoConversation(resp.Conversation), nil
}

func (c *Client) History(ctx context.Context, conversationID string, offset, limit int) ([]message.Message, error) {
	resp, err := c.api.GetChatHistory(c.authed(ctx), &pb.GetChatHistoryRequest{
		ConversationId: conversationID,
		Offset:         int32(offset),
		Limit:          int32(limit),
	})
	if err != nil {
		return nil, fromStatus(err)
	}
	out := make([]message.Message, 0, len(resp.Messages))
	for _, m := range resp.Messages {
		out = append(out, FromProtoMessage(m))
	}
	return out, nil
}

// Send uploads the attachment inline with the message. Empty and oversized
// input is rejected without a call.
func (c *Client) Send(ctx context.Context, req service.SendRequest) (message.Message, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" && req.Attachment == nil {
		return message.Message{}, common.ErrEmptyMessage
	}

	in := &pb.SendMessageRequest{ConversationId: req.ConversationID, Content: text}
	if f := req.Attachment; f != nil {
		data, err := c.readAttachment(f)
		if err != nil {
			return message.Message{}, err
		}
		in.Attachment = &pb.AttachmentUpload{Name: f.Name, MimeType: f.MimeType, Data: data}
	}

	resp, err := c.api.SendMessage(c.authed(ctx), in)
	if err != nil {
		return message.Message{}, fromStatus(err)
	}
	return FromProtoMessage(resp.Message), nil
}

func (c *Client) readAttachment(f *upload.File) ([]byte, error) {
	if f.Content == nil {
		return nil, fmt.Errorf("%w: no content", common.ErrAttachmentUploadFailed)
	}
	if f.Size > c.maxBytes {
		return nil, c.tooLarge(f.Size)
	}
	data, err := io.ReadAll(io.LimitReader(f.Content, c.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", common.ErrAttachmentUploadFailed, f.Name, err)
	}
	if int64(len(data)) > c.maxBytes {
		return nil, c.tooLarge(int64(len(data)))
	}
	return data, nil
}

func (c *Client) tooLarge(size int64) error {
	return fmt.Errorf("%w: %w (%d > %d bytes)", common.ErrAttachmentUploadFailed, common.ErrAttachmentTooLarge, size, c.maxBytes)
}

// MarkRead fires the RPC in the background.
func (c *Client) MarkRead(conversationID, viewerID string) bool {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), markReadTimeout)
		defer cancel()
		if _, err := c.api.MarkRead(c.authed(ctx), &pb.MarkReadRequest{ConversationId: conversationID}); err != nil {
			glog.Warningf("client: mark read %s: %v", conversationID, err)
		}
	}()
	return true
}

// Subscribe opens a StreamMessages call and re-encodes every push event as
// a realtime envelope, so a realtime.Listener can sit on top.
func (c *Client) Subscribe(conversationID string) (<-chan []byte, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan []byte, streamBuffer)

	stream, err := c.api.StreamMessages(c.authed(ctx), &pb.StreamMessagesRequest{ConversationId: conversationID})
	if err != nil {
		glog.Errorf("client: stream %s: %v", conversationID, err)
		close(out)
		return out, cancel
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer close(out)
		for {
			ev, err := stream.Recv()
			if err != nil {
				if status.Code(err) != codes.Canceled && !errors.Is(err, io.EOF) {
					glog.Warningf("client: stream %s ended: %v", conversationID, err)
				}
				return
			}
			data, err := FromProtoEvent(ev).Encode()
			if err != nil {
				glog.Warningf("client: re-encode %s event: %v", ev.Type, err)
				continue
			}
			select {
			case out <- data:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, cancel
}

// Wait blocks until background calls and streams have finished.
func (c *Client) Wait() {
	c.wg.Wait()
}

// statusError keeps the server's message and matches the chat errors the
// server reported, as well as the original status.
type statusError struct {
	msg  string
	errs []error
}

func (e *statusError) Error() string   { return e.msg }
func (e *statusError) Unwrap() []error { return e.errs }

// fromStatus maps gRPC errors back onto the chat error taxonomy. The
// ErrorInfo reason wins; the code is the fallback.
func fromStatus(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != common.ErrorDomain {
			continue
		}
		if errs := common.ErrorsForReason(info.GetReason()); len(errs) > 0 {
			return &statusError{msg: st.Message(), errs: append(errs, err)}
		}
	}

	switch st.Code() {
	case codes.NotFound:
		return &statusError{msg: st.Message(), errs: []error{common.ErrConversationNotFound, err}}
	case codes.Unavailable:
		// the message did not make it to storage
		return &statusError{msg: st.Message(), errs: []error{common.ErrMessagePersistFailed, err}}
	case codes.Canceled:
		return &statusError{msg: st.Message(), errs: []error{context.Canceled, err}}
	case codes.DeadlineExceeded:
		return &statusError{msg: st.Message(), errs: []error{context.DeadlineExceeded, err}}
	}
	return err
}

var _ realtime.Source = (*Client)(nil)
