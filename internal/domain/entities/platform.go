package entities

import (
	"time"

	"github.com/google/uuid"
)

// PlatformConfig is the singleton marketplace configuration. Only its
// authority may mutate it, and platform fee basis points stay below 10000.
type PlatformConfig struct {
	ID               uuid.UUID `json:"id"`
	Authority        string    `json:"authority"`
	PlatformFeeBps   uint16    `json:"platformFeeBps"`
	PlatformTreasury string    `json:"platformTreasury"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
