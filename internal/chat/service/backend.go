package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"

	"gomarket/internal/chat/message"
	"gomarket/internal/chat/realtime"
	"gomarket/internal/chat/repository"
	"gomarket/internal/common"
	"gomarket/internal/dbmysql"
)

// Conversation pairs a buyer-role and a seller-role party.
type Conversation struct {
	ID         string
	BuyerID    string
	SellerID   string
	ContractID string
	CreatedAt  time.Time
}

// Has reports whether userID is one of the two participants.
func (c Conversation) Has(userID string) bool {
	return userID != "" && (c.BuyerID == userID || c.SellerID == userID)
}

// Other returns the participant that is not userID.
func (c Conversation) Other(userID string) string {
	if c.BuyerID == userID {
		return c.SellerID
	}
	return c.BuyerID
}

// Backend is the relational store with push: every successful write is
// re-emitted on the push channel.
type Backend interface {
	InsertMessage(ctx context.Context, m message.Message) (message.Message, error)
	History(ctx context.Context, conversationID string, offset, limit int) ([]message.Message, error)
	MarkRead(ctx context.Context, conversationID, viewerID string) (int64, error)
	FindOrCreateConversation(ctx context.Context, buyerID, sellerID, contractID string) (Conversation, error)
	GetConversation(ctx context.Context, conversationID string) (Conversation, error)
}

type chatBackend struct {
	repo      repository.ChatRepository
	publisher realtime.Publisher
	now       func() time.Time
}

func NewBackend(repo repository.ChatRepository, publisher realtime.Publisher) Backend {
	return &chatBackend{
		repo:      repo,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// InsertMessage assigns id and created_at, persists, then publishes.
func (b *chatBackend) InsertMessage(ctx context.Context, m message.Message) (message.Message, error) {
	if err := message.ValidateOutgoing(m); err != nil {
		return message.Message{}, err
	}

	m.ID = uuid.NewString()
	m.CreatedAt = b.now().Truncate(time.Microsecond)
	m.ReadAt = nil

	rec, err := repository.ToRecord(m)
	if err != nil {
		return message.Message{}, fmt.Errorf("%w: %v", common.ErrMessagePersistFailed, err)
	}
	if err := b.repo.InsertMessage(ctx, rec); err != nil {
		return message.Message{}, fmt.Errorf("%w: %v", common.ErrMessagePersistFailed, err)
	}

	b.publish(ctx, realtime.NewMessageInserted(m))
	glog.V(2).Infof("backend: inserted %s", m)
	return m, nil
}

func (b *chatBackend) History(ctx context.Context, conversationID string, offset, limit int) ([]message.Message, error) {
	if conversationID == "" {
		return nil, errors.New("conversation ID is required")
	}
	recs, err := b.repo.FetchHistory(ctx, conversationID, offset, limit)
	if err != nil {
		return nil, err
	}
	return repository.ToDomainList(recs), nil
}

func (b *chatBackend) MarkRead(ctx context.Context, conversationID, viewerID string) (int64, error) {
	if conversationID == "" || viewerID == "" {
		return 0, common.ErrInvalidParticipants
	}
	at := b.now().Truncate(time.Microsecond)
	n, err := b.repo.MarkRead(ctx, conversationID, viewerID, at)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		b.publish(ctx, realtime.NewMessagesRead(conversationID, viewerID, at))
	}
	return n, nil
}

// FindOrCreateConversation converges concurrent creators on one row: the
// loser of the unique index race re-reads the winner's record.
func (b *chatBackend) FindOrCreateConversation(ctx context.Context, buyerID, sellerID, contractID string) (Conversation, error) {
	rec, err := b.repo.FindConversation(ctx, buyerID, sellerID)
	if err == nil {
		return toConversation(rec), nil
	}
	if !errors.Is(err, common.ErrConversationNotFound) {
		return Conversation{}, err
	}

	rec = &dbmysql.Conversation{
		ID:        uuid.NewString(),
		BuyerID:   buyerID,
		SellerID:  sellerID,
		CreatedAt: b.now(),
	}
	if contractID != "" {
		rec.ContractID = &contractID
	}

	err = b.repo.CreateConversation(ctx, rec)
	if errors.Is(err, repository.ErrDuplicateConversation) {
		glog.V(1).Infof("backend: conversation %s/%s created concurrently, re-reading", buyerID, sellerID)
		existing, err := b.repo.FindConversation(ctx, buyerID, sellerID)
		if err != nil {
			return Conversation{}, err
		}
		return toConversation(existing), nil
	}
	if err != nil {
		return Conversation{}, err
	}
	return toConversation(rec), nil
}

func (b *chatBackend) GetConversation(ctx context.Context, conversationID string) (Conversation, error) {
	rec, err := b.repo.GetConversation(ctx, conversationID)
	if err != nil {
		return Conversation{}, err
	}
	return toConversation(rec), nil
}

// publish failures do not undo the write; subscribers catch up on the next
// history load.
func (b *chatBackend) publish(ctx context.Context, ev realtime.Event) {
	if b.publisher == nil {
		return
	}
	if err := b.publisher.Publish(ctx, ev); err != nil {
		glog.Errorf("backend: publish %s for %s failed: %v", ev.Type, ev.ConversationID, err)
	}
}

func toConversation(rec *dbmysql.Conversation) Conversation {
	c := Conversation{
		ID:        rec.ID,
		BuyerID:   rec.BuyerID,
		SellerID:  rec.SellerID,
		CreatedAt: rec.CreatedAt,
	}
	if rec.ContractID != nil {
		c.ContractID = *rec.ContractID
	}
	return c
}
