package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FusionConfig struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CollectionID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	MinNfts         uint8     `gorm:"not null"`
	MaxNfts         uint8     `gorm:"not null"`
	BaseSuccessRate uint8     `gorm:"not null"`
	BurnPercent     uint8     `gorm:"not null;default:0"`
	CooldownPeriod  int64     `gorm:"not null;default:0"`
	IsActive        bool      `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}
