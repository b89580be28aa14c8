package models

import "time"

// Message - a direct message between two users. The table is migrated so
// the schema is forward-compatible, but the chat view is client-side only
// and no endpoint reads or writes these rows.
type Message struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SenderID   int64     `gorm:"column:sender_id;index" json:"sender_id"`
	ReceiverID int64     `gorm:"column:receiver_id;index" json:"receiver_id"`
	Content    string    `gorm:"type:text" json:"content"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}
