package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LiquidityPool struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProjectID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	TokenMint             string    `gorm:"type:varchar(64);not null"`
	LpTokenAccount        string    `gorm:"type:varchar(128);not null"`
	OraclePriceUsd        *uint64
	OraclePriceLastUpdate int64  `gorm:"not null;default:0"`
	RedemptionLocked      bool   `gorm:"not null;default:true"`
	PriceSource           string `gorm:"type:varchar(32);not null;default:'NONE'"`
	LastActivity          int64  `gorm:"not null"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             gorm.DeletedAt `gorm:"index"`
}
