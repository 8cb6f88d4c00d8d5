package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// TokenEscrow holds tokens against a specific NFT mint. At most one active
// escrow exists per mint, and the escrow itself is the only authority allowed
// to debit its custody account.
type TokenEscrow struct {
	ID                 uuid.UUID   `json:"id"`
	Owner              string      `json:"owner"`
	NftMint            string      `json:"nftMint"`
	TokenMint          string      `json:"tokenMint"`
	TokenAmount        uint64      `json:"tokenAmount"`
	EscrowTokenAccount string      `json:"escrowTokenAccount"`
	DiscountPercent    null.Uint16 `json:"discountPercent,omitempty"`
	VestingEndTs       null.Int64  `json:"vestingEndTs,omitempty"`
	IsActive           bool        `json:"isActive"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

// CustodyAuthority returns the authority name under which the escrow signs
// transfers out of its custody account.
func (e *TokenEscrow) CustodyAuthority() string {
	return "token_escrow/" + e.NftMint
}

// VestingComplete reports whether the vesting gate allows withdrawal at now
func (e *TokenEscrow) VestingComplete(now int64) bool {
	return !e.VestingEndTs.Valid || now >= e.VestingEndTs.Int64
}
