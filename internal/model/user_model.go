package model

import "gorm.io/gorm"

// DefaultAvatarURL is applied when a user registers without an avatar.
const DefaultAvatarURL = "https://cdn.pixabay.com/photo/2016/08/08/09/17/avatar-1577909_960_720.png"

type UserModel struct {
	ID             uint   `gorm:"primaryKey"`
	Username       string `gorm:"uniqueIndex;not null"`
	Email          string `gorm:"uniqueIndex;not null"`
	HashedPassword string `gorm:"not null"`
	Avatar         string
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.Avatar == "" {
		u.Avatar = DefaultAvatarURL
	}
	return nil
}
