package dbmysql

import (
	"time"

	"gorm.io/datatypes"
)

type Message struct {
	ID             string         `gorm:"primaryKey;size:36"`
	ConversationID string         `gorm:"size:36;index:idx_messages_conversation_created,priority:1"`
	SenderID       string         `gorm:"size:36;index"`
	Kind           string         `gorm:"size:32;not null"`
	Content        string         `gorm:"type:text"`
	Payload        datatypes.JSON `gorm:"type:json"`
	CreatedAt      time.Time      `gorm:"precision:6;index:idx_messages_conversation_created,priority:2"`
	ReadAt         *time.Time     `gorm:"precision:6"`
}

func (Message) TableName() string {
	return "messages"
}
