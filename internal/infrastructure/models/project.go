package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Authority       string    `gorm:"type:varchar(64);not null;index"`
	ProjectID       string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	ProjectTreasury string    `gorm:"type:varchar(64);not null"`
	RoyaltyWallet   *string   `gorm:"type:varchar(64)"`
	RoyaltyBps      uint16    `gorm:"not null;default:0"`
	LastActivityTs  int64     `gorm:"not null"`
	IsActive        bool      `gorm:"not null;default:true;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}
