package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Nft struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Owner           string    `gorm:"type:varchar(64);not null;index"`
	CollectionID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Mint            string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	MetadataURI     string    `gorm:"type:varchar(512);not null"`
	MintedAt        int64     `gorm:"not null"`
	CooldownEndTs   *int64
	DiscountPercent *uint16
	FusionLevel     uint8  `gorm:"not null;default:0"`
	ParentNfts      string `gorm:"type:text;default:'[]'"` // JSON array of mints
	RarityScore     uint16 `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

type NftListing struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Owner           string    `gorm:"type:varchar(64);not null;index"`
	NftMint         string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Price           uint64    `gorm:"not null"`
	DiscountPercent *uint16
	CooldownPeriod  *int64
	IsActive        bool `gorm:"not null;default:true;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}
