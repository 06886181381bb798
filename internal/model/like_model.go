package model

import "time"

// LikeModel is the join row for "user likes haiku". The composite primary
// key guarantees at most one row per (user, haiku) pair even when two
// toggles race; the second insert fails on the key.
type LikeModel struct {
	UserID    uint `gorm:"primaryKey;autoIncrement:false"`
	HaikuID   uint `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time
}

func (LikeModel) TableName() string {
	return "likes"
}
