package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Collection struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProjectID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_collections_project_collection"`
	CollectionID string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_collections_project_collection"`
	MetadataURI  string    `gorm:"type:varchar(255);not null"`
	TokenMint    *string   `gorm:"type:varchar(64)"`
	IsCompressed bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}
