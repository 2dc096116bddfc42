// Package models contains data structures for the application's domain models.
package models

import "time"

// User is an account that owns recipes, favorites, pairings and social content.
type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"size:100;not null" json:"name"`
	Username         string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email            string    `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Password         string    `gorm:"size:255;not null" json:"-"`
	RegistrationDate time.Time `gorm:"autoCreateTime" json:"registration_date"`
	ProfileInfo      string    `gorm:"type:text" json:"profile_info"`
	AvatarURL        string    `gorm:"size:255" json:"avatar_url"`
}

func (User) TableName() string { return "users" }
