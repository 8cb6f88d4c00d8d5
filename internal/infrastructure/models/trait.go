package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TraitType struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CollectionID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_trait_types_collection_name"`
	Name         string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_trait_types_collection_name"`
	IsRequired   bool      `gorm:"not null;default:false"`
	Position     int       `gorm:"not null;default:0"`
	Values       string    `gorm:"type:text;not null;default:'[]'"` // JSON array of trait values
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

type CollectionTraitConfig struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CollectionID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	BaseURI               string    `gorm:"type:varchar(255);not null"`
	AutoGenerationEnabled bool      `gorm:"not null;default:false"`
	MetadataFormat        string    `gorm:"type:varchar(32);not null"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             gorm.DeletedAt `gorm:"index"`
}

type NftTraits struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	NftMint         string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	CollectionID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Traits          string    `gorm:"type:text;not null;default:'[]'"` // JSON array of selected traits
	IsAutoGenerated bool      `gorm:"not null;default:false"`
	GenerationSeed  []byte    `gorm:"type:blob"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}
