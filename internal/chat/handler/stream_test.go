package handler

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	pb "gomarket/api/v1/chat"
	"gomarket/internal/chat/handler/mocks"
	"gomarket/internal/chat/message"
	"gomarket/internal/chat/realtime"
	"gomarket/internal/chat/service"
	"gomarket/internal/common"
	"gomarket/internal/config"
)

const bufSize = 1024 * 1024

type grpcFixture struct {
	client    pb.ChatServiceClient
	handler   *ChatHandler
	server    *grpc.Server
	hub       *realtime.Hub
	sender    *mocks.MockMessageSender
	validator *common.TokenValidator
}

func setupGRPCTest(t *testing.T) *grpcFixture {
	lis := bufconn.Listen(bufSize)

	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	backend.EXPECT().GetConversation(gomock.Any(), testConversation.ID).Return(testConversation, nil).AnyTimes()
	sender := mocks.NewMockMessageSender(ctrl)

	cfg := &config.Config{}
	hub := realtime.NewHub(cfg)
	validator := common.NewTokenValidator("test-secret")
	h := NewChatHandler(mocks.NewMockConversationResolver(ctrl), sender, backend, realtime.NewListener(hub), cfg)

	s := grpc.NewServer(
		grpc.UnaryInterceptor(common.AuthInterceptor(validator)),
		grpc.StreamInterceptor(common.StreamAuthInterceptor(validator)),
	)
	pb.RegisterChatServiceServer(s, h)
	go func() {
		if err := s.Serve(lis); err != nil {
			t.Errorf("Server exited with error: %v", err)
		}
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return lis.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		s.Stop()
	})

	return &grpcFixture{
		client:    pb.NewChatServiceClient(conn),
		handler:   h,
		server:    s,
		hub:       hub,
		sender:    sender,
		validator: validator,
	}
}

func (f *grpcFixture) authed(t *testing.T, ctx context.Context, viewerID string) context.Context {
	t.Helper()
	token, err := f.validator.GenerateToken(viewerID, viewerID, time.Hour)
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}

func TestChatHandler_StreamMessages_RealGRPC(t *testing.T) {
	f := setupGRPCTest(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := f.client.StreamMessages(f.authed(t, ctx, "buyer-1"), &pb.StreamMessagesRequest{ConversationId: testConversation.ID})
	require.NoError(t, err)
	require.Eventually(t, func() bool { return f.hub.Subscribers(testConversation.ID) == 1 }, 2*time.Second, 10*time.Millisecond)

	m := message.NewText(testConversation.ID, "seller-1", "Hello from stream!")
	m.ID = "msg-1"
	m.CreatedAt = time.Now().UTC()
	require.NoError(t, f.hub.Publish(ctx, realtime.NewMessageInserted(m)))

	received, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, "message.inserted", received.Type)
	require.NotNil(t, received.Message)
	assert.Equal(t, "Hello from stream!", received.Message.Content)
	assert.Equal(t, "seller-1", received.Message.SenderId)

	readAt := time.Now().UTC()
	require.NoError(t, f.hub.Publish(ctx, realtime.NewMessagesRead(testConversation.ID, "seller-1", readAt)))

	received, err = stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, "messages.read", received.Type)
	assert.Equal(t, "seller-1", received.ReaderId)
	assert.True(t, readAt.Equal(received.ReadAt.AsTime()))

	cancel()
	require.Eventually(t, func() bool { return f.hub.Subscribers(testConversation.ID) == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestChatHandler_ShutdownEndsStreams(t *testing.T) {
	f := setupGRPCTest(t)

	stream, err := f.client.StreamMessages(f.authed(t, context.Background(), "buyer-1"), &pb.StreamMessagesRequest{ConversationId: testConversation.ID})
	require.NoError(t, err)
	require.Eventually(t, func() bool { return f.hub.Subscribers(testConversation.ID) == 1 }, 2*time.Second, 10*time.Millisecond)

	f.handler.Shutdown()
	f.handler.Shutdown()

	_, err = stream.Recv()
	assert.Equal(t, codes.Unavailable, status.Code(err))

	stopped := make(chan struct{})
	go func() {
		f.server.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(3 * time.Second):
		t.Fatal("GracefulStop blocked with a stream open")
	}
	assert.Equal(t, 0, f.hub.Subscribers(testConversation.ID))
}

func TestChatHandler_StreamMessages_Unauthorized(t *testing.T) {
	f := setupGRPCTest(t)

	t.Run("missing_token", func(t *testing.T) {
		stream, err := f.client.StreamMessages(context.Background(), &pb.StreamMessagesRequest{ConversationId: testConversation.ID})
		require.NoError(t, err)
		_, err = stream.Recv()
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("not_a_member", func(t *testing.T) {
		stream, err := f.client.StreamMessages(f.authed(t, context.Background(), "mallory"), &pb.StreamMessagesRequest{ConversationId: testConversation.ID})
		require.NoError(t, err)
		_, err = stream.Recv()
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})
}

func TestChatHandler_SendMessage_RealGRPC(t *testing.T) {
	f := setupGRPCTest(t)

	f.sender.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req service.SendRequest) (message.Message, error) {
			m := message.NewText(req.ConversationID, req.SenderID, req.Text)
			m.ID = "msg-7"
			m.CreatedAt = time.Now().UTC()
			return m, nil
		})

	resp, err := f.client.SendMessage(f.authed(t, context.Background(), "seller-1"), &pb.SendMessageRequest{
		ConversationId: testConversation.ID,
		Content:        "deal",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "msg-7", resp.Message.Id)
	assert.Equal(t, "seller-1", resp.Message.SenderId)

	_, err = f.client.SendMessage(context.Background(), &pb.SendMessageRequest{ConversationId: testConversation.ID, Content: "x"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}
