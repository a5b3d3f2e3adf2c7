package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"gomarket/internal/common"
	"gomarket/internal/dbmysql"
)

// ErrDuplicateConversation is returned by CreateConversation when the pair
// already has a conversation.
var ErrDuplicateConversation = errors.New("conversation already exists")

const mysqlDuplicateEntry = 1062

type ChatRepository interface {
	InsertMessage(ctx context.Context, msg *dbmysql.Message) error
	// FetchHistory returns up to limit messages in ascending order, skipping
	// the offset newest ones. limit <= 0 means no limit.
	FetchHistory(ctx context.Context, conversationID string, offset, limit int) ([]*dbmysql.Message, error)
	// MarkRead sets read_at on unread messages the viewer did not author.
	MarkRead(ctx context.Context, conversationID, viewerID string, at time.Time) (int64, error)
	FindConversation(ctx context.Context, partyA, partyB string) (*dbmysql.Conversation, error)
	GetConversation(ctx context.Context, id string) (*dbmysql.Conversation, error)
	CreateConversation(ctx context.Context, conv *dbmysql.Conversation) error
}

type chatRepo struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepo{db: db}
}

func (r *chatRepo) InsertMessage(ctx context.Context, msg *dbmysql.Message) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

func (r *chatRepo) FetchHistory(ctx context.Context, conversationID string, offset, limit int) ([]*dbmysql.Message, error) {
	q := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC").
		Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}

	var messages []*dbmysql.Message
	if err := q.Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("fetch history: %w", err)
	}

	// newest-first from the query, callers get chat order
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *chatRepo) MarkRead(ctx context.Context, conversationID, viewerID string, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&dbmysql.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND read_at IS NULL AND created_at <= ?", conversationID, viewerID, at).
		Update("read_at", at)
	if res.Error != nil {
		return 0, fmt.Errorf("mark read: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *chatRepo) FindConversation(ctx context.Context, partyA, partyB string) (*dbmysql.Conversation, error) {
	low, high := dbmysql.OrderedPair(partyA, partyB)

	var conv dbmysql.Conversation
	err := r.db.WithContext(ctx).
		Where("participant_low = ? AND participant_high = ?", low, high).
		First(&conv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrConversationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find conversation: %w", err)
	}
	return &conv, nil
}

func (r *chatRepo) GetConversation(ctx context.Context, id string) (*dbmysql.Conversation, error) {
	var conv dbmysql.Conversation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&conv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrConversationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get conversation: %w", err)
	}
	return &conv, nil
}

func (r *chatRepo) CreateConversation(ctx context.Context, conv *dbmysql.Conversation) error {
	conv.ParticipantLow, conv.ParticipantHigh = dbmysql.OrderedPair(conv.BuyerID, conv.SellerID)

	err := r.db.WithContext(ctx).Create(conv).Error
	if isDuplicateKey(err) {
		return fmt.Errorf("%w: %v", ErrDuplicateConversation, err)
	}
	if err != nil {
		return fmt.Errorf("create conversation: %w", err)
	}
	return nil
}

func isDuplicateKey(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
