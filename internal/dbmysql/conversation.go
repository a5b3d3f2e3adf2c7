package dbmysql

import (
	"time"
)

// Conversation is the unique pairing of two marketplace parties. The pair is
// stored twice: as given (buyer/seller roles) and in sorted order, which
// carries the unique index.
type Conversation struct {
	ID              string  `gorm:"primaryKey;size:36"`
	BuyerID         string  `gorm:"size:36;index"`
	SellerID        string  `gorm:"size:36;index"`
	ParticipantLow  string  `gorm:"size:36;uniqueIndex:idx_conversation_pair"`
	ParticipantHigh string  `gorm:"size:36;uniqueIndex:idx_conversation_pair"`
	ContractID      *string `gorm:"size:36"`
	CreatedAt       time.Time
}

func (Conversation) TableName() string {
	return "conversations"
}

// OrderedPair returns the two ids in the order used by the unique index.
func OrderedPair(a, b string) (low, high string) {
	if a < b {
		return a, b
	}
	return b, a
}
