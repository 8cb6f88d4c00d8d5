package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// MetadataFormat controls how metadata URIs are generated for a collection
type MetadataFormat string

const (
	MetadataFormatStandardJson   MetadataFormat = "STANDARD_JSON"
	MetadataFormatCompressedJson MetadataFormat = "COMPRESSED_JSON"
	MetadataFormatCustom         MetadataFormat = "CUSTOM"
)

// TraitValue is one selectable value inside a trait type. Lower rarity
// weight means rarer; a null available supply means uncapped.
type TraitValue struct {
	Name            string      `json:"name"`
	URIPostfix      string      `json:"uriPostfix"`
	RarityWeight    uint16      `json:"rarityWeight"`
	AvailableSupply null.Uint32 `json:"availableSupply,omitempty"`
	UsedSupply      uint32      `json:"usedSupply"`
}

// HasRemainingSupply reports whether the value can still be sampled
func (v *TraitValue) HasRemainingSupply() bool {
	return !v.AvailableSupply.Valid || v.UsedSupply < v.AvailableSupply.Uint32
}

// TraitType groups the ordered values a collection can sample from.
// Position fixes the declaration order used by weighted sampling.
type TraitType struct {
	ID           uuid.UUID    `json:"id"`
	CollectionID uuid.UUID    `json:"collectionId"`
	Name         string       `json:"name"`
	IsRequired   bool         `json:"isRequired"`
	Position     int          `json:"position"`
	Values       []TraitValue `json:"values"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// CollectionTraitConfig holds per-collection trait generation settings
type CollectionTraitConfig struct {
	ID                    uuid.UUID      `json:"id"`
	CollectionID          uuid.UUID      `json:"collectionId"`
	BaseURI               string         `json:"baseUri"`
	AutoGenerationEnabled bool           `json:"autoGenerationEnabled"`
	MetadataFormat        MetadataFormat `json:"metadataFormat"`
	CreatedAt             time.Time      `json:"createdAt"`
	UpdatedAt             time.Time      `json:"updatedAt"`
}

// SelectedTrait is one (trait type, trait value) pair chosen for an NFT
type SelectedTrait struct {
	TraitType  string `json:"traitType"`
	TraitValue string `json:"traitValue"`
}

// NftTraits records the trait selection stored alongside an NFT
type NftTraits struct {
	ID              uuid.UUID       `json:"id"`
	NftMint         string          `json:"nftMint"`
	CollectionID    uuid.UUID       `json:"collectionId"`
	Traits          []SelectedTrait `json:"traits"`
	IsAutoGenerated bool            `json:"isAutoGenerated"`
	GenerationSeed  []byte          `json:"generationSeed,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
