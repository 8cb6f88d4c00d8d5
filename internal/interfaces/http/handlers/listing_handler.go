package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/volatiletech/null/v8"

	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/interfaces/http/response"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/usecases"
	"github.com/JupiterRain123/nft-fusion-marketplace/pkg/utils"
)

// ListingHandler handles NFT listing endpoints
type ListingHandler struct {
	listingUsecase *usecases.ListingUsecase
}

// NewListingHandler creates a new listing handler
func NewListingHandler(listingUsecase *usecases.ListingUsecase) *ListingHandler {
	return &ListingHandler{listingUsecase: listingUsecase}
}

// CreateListing lists the caller's NFT at an asking price
// POST /api/v1/listings
func (h *ListingHandler) CreateListing(c *gin.Context) {
	var input struct {
		NftMint         string  `json:"nftMint" binding:"required"`
		Price           uint64  `json:"price" binding:"required"`
		DiscountPercent *uint16 `json:"discountPercent"`
		CooldownPeriod  *int64  `json:"cooldownPeriod"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	listing, err := h.listingUsecase.CreateListing(c.Request.Context(), callerAccount(c), usecases.CreateListingInput{
		NftMint:         input.NftMint,
		Price:           input.Price,
		DiscountPercent: null.Uint16FromPtr(input.DiscountPercent),
		CooldownPeriod:  null.Int64FromPtr(input.CooldownPeriod),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"listing": listing})
}

// CancelListing deactivates the caller's active listing
// POST /api/v1/listings/:nftMint/cancel
func (h *ListingHandler) CancelListing(c *gin.Context) {
	if err := h.listingUsecase.CancelListing(c.Request.Context(), callerAccount(c), c.Param("nftMint")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Listing cancelled"})
}

// ListActiveListings returns a page of active listings
// GET /api/v1/listings?page=N&limit=M
func (h *ListingHandler) ListActiveListings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	pagination := utils.GetPaginationParams(page, limit)

	items, total, err := h.listingUsecase.ListActive(c.Request.Context(), pagination.Limit, pagination.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"items": items,
		"meta":  utils.CalculateMeta(int64(total), pagination.Page, pagination.Limit),
	})
}
