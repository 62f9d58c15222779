package model

import "time"

type MessageType string

const (
	MessageTypeText  MessageType = "text"
	MessageTypeImage MessageType = "image"
)

// A nil EventID places the message in the "general" room.
type Message struct {
	ID          int64       `gorm:"primaryKey;autoIncrement;column:id;<-:create" json:"id"`
	Content     *string     `gorm:"column:content;type:text" json:"content"`
	ImageURL    *string     `gorm:"column:image_url;type:varchar(255)" json:"image_url"`
	ImageName   *string     `gorm:"column:image_name;type:varchar(255)" json:"image_name"`
	MessageType MessageType `gorm:"column:message_type;type:enum('text','image');not null;default:'text'" json:"message_type"`
	EventID     *int64      `gorm:"column:event_id;index" json:"event_id"`
	UserID      int64       `gorm:"column:user_id;not null;index" json:"user_id"`
	CreatedAt   time.Time   `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time   `gorm:"column:updated_at" json:"updatedAt"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Message) TableName() string {
	return "messages"
}
