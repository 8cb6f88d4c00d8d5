package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Collection represents an NFT collection owned by a project
type Collection struct {
	ID           uuid.UUID   `json:"id"`
	ProjectID    uuid.UUID   `json:"projectId"`
	CollectionID string      `json:"collectionId"`
	MetadataURI  string      `json:"metadataUri"`
	TokenMint    null.String `json:"tokenMint,omitempty"`
	IsCompressed bool        `json:"isCompressed"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}
