package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlatformConfig struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Authority        string    `gorm:"type:varchar(64);not null"`
	PlatformFeeBps   uint16    `gorm:"not null"`
	PlatformTreasury string    `gorm:"type:varchar(64);not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}
