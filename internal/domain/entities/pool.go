package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PriceSource identifies where a pool's oracle price came from
type PriceSource string

const (
	PriceSourcePyth   PriceSource = "PYTH"
	PriceSourceDex    PriceSource = "DEX_LIQUIDITY"
	PriceSourceManual PriceSource = "MANUAL"
	PriceSourceNone   PriceSource = "NONE"
)

// LiquidityPool holds a project's token reserves and its oracle price state.
// The pool is the sole authority over its custody account; redemption stays
// locked whenever the price is absent or stale.
type LiquidityPool struct {
	ID                    uuid.UUID   `json:"id"`
	ProjectID             uuid.UUID   `json:"projectId"`
	TokenMint             string      `json:"tokenMint"`
	LpTokenAccount        string      `json:"lpTokenAccount"`
	OraclePriceUsd        null.Uint64 `json:"oraclePriceUsd,omitempty"`
	OraclePriceLastUpdate int64       `json:"oraclePriceLastUpdate"`
	RedemptionLocked      bool        `json:"redemptionLocked"`
	PriceSource           PriceSource `json:"priceSource"`
	LastActivity          int64       `json:"lastActivity"`
	CreatedAt             time.Time   `json:"createdAt"`
	UpdatedAt             time.Time   `json:"updatedAt"`
}

// CustodyAuthority returns the authority name under which the pool signs
// transfers out of its custody account.
func (p *LiquidityPool) CustodyAuthority() string {
	return "liquidity_pool/" + p.ProjectID.String()
}
