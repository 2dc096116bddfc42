package models

import "time"

// Post is a short piece of user content that others can comment on.
type Post struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	User         *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	CreationDate time.Time `gorm:"autoCreateTime" json:"creation_date"`
}

func (Post) TableName() string { return "posts" }

type Comment struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PostID       uint      `gorm:"not null;index" json:"post_id"`
	Post         *Post     `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	User         *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	CreationDate time.Time `gorm:"autoCreateTime" json:"creation_date"`
}

func (Comment) TableName() string { return "comments" }

// Notification tells a user that something happened to them.
type Notification struct {
	ID      uint             `gorm:"primaryKey" json:"id"`
	UserID  uint             `gorm:"not null;index" json:"user_id"`
	User    *User            `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Type    NotificationType `gorm:"size:20;not null;check:type IN ('comment','message','new_follower','other')" json:"type"`
	Content string           `gorm:"size:255" json:"content"`
	Read    bool             `gorm:"not null;default:false" json:"read"`
	Date    time.Time        `gorm:"autoCreateTime" json:"date"`
}

func (Notification) TableName() string { return "notifications" }

// Follow is a directed edge from follower to followed.
type Follow struct {
	FollowerID uint      `gorm:"primaryKey;autoIncrement:false;check:chk_follows_not_self,follower_id <> followed_id" json:"follower_id"`
	Follower   *User     `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"-"`
	FollowedID uint      `gorm:"primaryKey;autoIncrement:false;index" json:"followed_id"`
	Followed   *User     `gorm:"foreignKey:FollowedID;constraint:OnDelete:CASCADE" json:"-"`
	Date       time.Time `gorm:"autoCreateTime" json:"date"`
}

func (Follow) TableName() string { return "follows" }
