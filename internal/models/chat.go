package models

import "time"

type ChatType string

const (
	ChatPrivate    ChatType = "private"
	ChatGroup      ChatType = "group"
	ChatSupergroup ChatType = "supergroup"
	ChatChannel    ChatType = "channel"
)

type Chat struct {
	ChatID          int64     `gorm:"column:chat_id;primaryKey;autoIncrement:false" json:"chat_id"`
	Type            ChatType  `gorm:"column:type;type:varchar(16)" json:"type"`
	Title           *string   `gorm:"column:title;type:varchar(255)" json:"title"`
	LastInteraction time.Time `gorm:"column:last_interaction" json:"last_interaction"`
}

func (Chat) TableName() string { return "chats" }
