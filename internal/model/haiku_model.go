package model

import (
	"time"

	"gorm.io/gorm"
)

// DefaultColor is the color tag a haiku gets when none is supplied.
const DefaultColor = "bg-white/70"

type HaikuModel struct {
	ID      uint   `gorm:"primaryKey"`
	Text    string `gorm:"type:text;not null"`
	Color   string `gorm:"default:bg-white/70"`
	Tags    string `gorm:"type:text"`
	Date    time.Time
	IsDraft bool `gorm:"default:false"`
	OwnerID uint `gorm:"not null;index"`
}

func (HaikuModel) TableName() string {
	return "haikus"
}

func (h *HaikuModel) BeforeCreate(tx *gorm.DB) error {
	if h.Color == "" {
		h.Color = DefaultColor
	}
	if h.Date.IsZero() {
		h.Date = time.Now().UTC()
	}
	return nil
}
