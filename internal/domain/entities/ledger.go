package entities

import (
	"time"

	"github.com/google/uuid"
)

// TokenAccount is a ledger balance for one (owner, mint) pair. Custody
// accounts carry the owning component's derived authority as their owner.
type TokenAccount struct {
	ID        uuid.UUID `json:"id"`
	Owner     string    `json:"owner"`
	Mint      string    `json:"mint"`
	Balance   uint64    `json:"balance"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
