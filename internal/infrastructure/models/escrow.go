package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TokenEscrow struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Owner              string    `gorm:"type:varchar(64);not null;index"`
	NftMint            string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	TokenMint          string    `gorm:"type:varchar(64);not null"`
	TokenAmount        uint64    `gorm:"not null"`
	EscrowTokenAccount string    `gorm:"type:varchar(128);not null"`
	DiscountPercent    *uint16
	VestingEndTs       *int64
	IsActive           bool `gorm:"not null;default:true"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}
