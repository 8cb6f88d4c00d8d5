package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volatiletech/null/v8"

	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/interfaces/http/response"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/usecases"
)

// EscrowHandler handles token escrow endpoints
type EscrowHandler struct {
	escrowUsecase *usecases.EscrowUsecase
}

// NewEscrowHandler creates a new escrow handler
func NewEscrowHandler(escrowUsecase *usecases.EscrowUsecase) *EscrowHandler {
	return &EscrowHandler{escrowUsecase: escrowUsecase}
}

// CreateTokenEscrow locks the caller's tokens against an NFT
// POST /api/v1/escrows
func (h *EscrowHandler) CreateTokenEscrow(c *gin.Context) {
	var input struct {
		NftMint         string  `json:"nftMint" binding:"required"`
		TokenMint       string  `json:"tokenMint" binding:"required"`
		TokenAmount     uint64  `json:"tokenAmount" binding:"required"`
		VestingPeriod   *int64  `json:"vestingPeriod"`
		DiscountPercent *uint16 `json:"discountPercent"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	escrow, err := h.escrowUsecase.CreateTokenEscrow(c.Request.Context(), callerAccount(c), usecases.CreateTokenEscrowInput{
		NftMint:         input.NftMint,
		TokenMint:       input.TokenMint,
		TokenAmount:     input.TokenAmount,
		VestingPeriod:   null.Int64FromPtr(input.VestingPeriod),
		DiscountPercent: null.Uint16FromPtr(input.DiscountPercent),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"escrow": escrow})
}

// CloseTokenEscrow returns the custody balance to the owner
// POST /api/v1/escrows/:nftMint/close
func (h *EscrowHandler) CloseTokenEscrow(c *gin.Context) {
	refunded, err := h.escrowUsecase.CloseTokenEscrow(c.Request.Context(), callerAccount(c), c.Param("nftMint"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"refunded": refunded})
}

// RedeemEscrowToken pays the escrowed amount out minus fees
// POST /api/v1/escrows/:nftMint/redeem
func (h *EscrowHandler) RedeemEscrowToken(c *gin.Context) {
	fees, ownerAmount, err := h.escrowUsecase.RedeemEscrowToken(c.Request.Context(), callerAccount(c), c.Param("nftMint"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"ownerAmount": ownerAmount,
		"fees":        fees,
	})
}
