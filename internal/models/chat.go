package models

import "time"

// Chat is a conversation between two users, or a named group.
type Chat struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100" json:"name"`
	IsGroup      bool      `gorm:"not null;default:false" json:"is_group"`
	CreationDate time.Time `gorm:"autoCreateTime" json:"creation_date"`
}

func (Chat) TableName() string { return "chats" }

// ChatParticipant records membership of a user in a chat.
type ChatParticipant struct {
	ChatID uint  `gorm:"primaryKey;autoIncrement:false" json:"chat_id"`
	Chat   *Chat `gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE" json:"-"`
	UserID uint  `gorm:"primaryKey;autoIncrement:false;index" json:"user_id"`
	User   *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ChatParticipant) TableName() string { return "chat_participants" }

type Message struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	ChatID   uint      `gorm:"not null;index" json:"chat_id"`
	Chat     *Chat     `gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE" json:"-"`
	UserID   uint      `gorm:"not null;index" json:"user_id"`
	User     *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Content  string    `gorm:"type:text;not null" json:"content"`
	SentDate time.Time `gorm:"autoCreateTime" json:"sent_date"`
}

func (Message) TableName() string { return "messages" }
