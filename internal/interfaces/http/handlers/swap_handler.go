package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volatiletech/null/v8"

	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/interfaces/http/response"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/usecases"
)

// SwapHandler handles pool-backed mint and redemption endpoints
type SwapHandler struct {
	swapUsecase *usecases.SwapUsecase
}

// NewSwapHandler creates a new swap handler
func NewSwapHandler(swapUsecase *usecases.SwapUsecase) *SwapHandler {
	return &SwapHandler{swapUsecase: swapUsecase}
}

// SwapTokenForNft takes tokens from the caller and mints the NFT record
// POST /api/v1/swaps
func (h *SwapHandler) SwapTokenForNft(c *gin.Context) {
	var input struct {
		ProjectID       string  `json:"projectId" binding:"required"`
		CollectionID    string  `json:"collectionId" binding:"required"`
		TokenAmount     uint64  `json:"tokenAmount" binding:"required"`
		DiscountPercent *uint16 `json:"discountPercent"`
		CooldownPeriod  *int64  `json:"cooldownPeriod"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	nft, err := h.swapUsecase.SwapTokenForNft(c.Request.Context(), callerAccount(c), usecases.SwapTokenForNftInput{
		ProjectID:       input.ProjectID,
		CollectionID:    input.CollectionID,
		TokenAmount:     input.TokenAmount,
		DiscountPercent: null.Uint16FromPtr(input.DiscountPercent),
		CooldownPeriod:  null.Int64FromPtr(input.CooldownPeriod),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"nft": nft})
}

// RedeemNftForToken burns the NFT record and pays out the redemption unit
// POST /api/v1/nfts/:mint/redeem
func (h *SwapHandler) RedeemNftForToken(c *gin.Context) {
	amount, err := h.swapUsecase.RedeemNftForToken(c.Request.Context(), callerAccount(c), c.Param("mint"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"redeemed": amount})
}

// GetRemainingCooldown returns seconds left before the NFT can be redeemed
// GET /api/v1/nfts/:mint/cooldown
func (h *SwapHandler) GetRemainingCooldown(c *gin.Context) {
	remaining, err := h.swapUsecase.GetRemainingCooldown(c.Request.Context(), c.Param("mint"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"remainingCooldown": remaining})
}
