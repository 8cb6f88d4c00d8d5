package models

import (
	"time"

	"github.com/google/uuid"
)

type TokenAccount struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Owner     string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_token_accounts_owner_mint"`
	Mint      string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_token_accounts_owner_mint"`
	Balance   uint64    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
