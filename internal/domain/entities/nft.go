package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// NftData represents a minted NFT record
type NftData struct {
	ID              uuid.UUID   `json:"id"`
	Owner           string      `json:"owner"`
	CollectionID    uuid.UUID   `json:"collectionId"`
	Mint            string      `json:"mint"`
	MetadataURI     string      `json:"metadataUri"`
	MintedAt        int64       `json:"mintedAt"`
	CooldownEndTs   null.Int64  `json:"cooldownEndTs,omitempty"`
	DiscountPercent null.Uint16 `json:"discountPercent,omitempty"`
	FusionLevel     uint8       `json:"fusionLevel"`
	ParentNfts      []string    `json:"parentNfts,omitempty"`
	RarityScore     uint16      `json:"rarityScore"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// RemainingCooldown returns the seconds left before the NFT can be redeemed,
// zero when no cooldown is set or it has elapsed.
func (n *NftData) RemainingCooldown(now int64) int64 {
	if !n.CooldownEndTs.Valid || n.CooldownEndTs.Int64 <= now {
		return 0
	}
	return n.CooldownEndTs.Int64 - now
}

// NftListing is an asking-price listing for an NFT
type NftListing struct {
	ID              uuid.UUID   `json:"id"`
	Owner           string      `json:"owner"`
	NftMint         string      `json:"nftMint"`
	Price           uint64      `json:"price"`
	DiscountPercent null.Uint16 `json:"discountPercent,omitempty"`
	CooldownPeriod  null.Int64  `json:"cooldownPeriod,omitempty"`
	IsActive        bool        `json:"isActive"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}
