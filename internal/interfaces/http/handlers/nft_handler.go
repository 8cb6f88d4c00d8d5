package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mr-tron/base58"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/repositories"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/interfaces/http/response"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/usecases"
	"github.com/JupiterRain123/nft-fusion-marketplace/pkg/utils"
)

// NftHandler handles NFT minting, fusion, and lookup endpoints
type NftHandler struct {
	mintUsecase *usecases.MintUsecase
	nftRepo     repositories.NftRepository
}

// NewNftHandler creates a new NFT handler
func NewNftHandler(mintUsecase *usecases.MintUsecase, nftRepo repositories.NftRepository) *NftHandler {
	return &NftHandler{mintUsecase: mintUsecase, nftRepo: nftRepo}
}

// decodeEntropy accepts an optional base58-encoded entropy string
func decodeEntropy(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	return base58.Decode(s)
}

// MintNft mints a level-zero NFT with manual or auto-generated traits
// POST /api/v1/nfts
func (h *NftHandler) MintNft(c *gin.Context) {
	var input struct {
		CollectionID string                   `json:"collectionId" binding:"required"`
		Slot         uint64                   `json:"slot"`
		Entropy      string                   `json:"entropy"`
		Traits       []entities.SelectedTrait `json:"traits"`
		MetadataURI  string                   `json:"metadataUri"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	collectionID, err := uuid.Parse(input.CollectionID)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid collection id"))
		return
	}
	entropy, err := decodeEntropy(input.Entropy)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("entropy must be base58 encoded"))
		return
	}

	nft, err := h.mintUsecase.MintNft(c.Request.Context(), callerAccount(c), usecases.MintNftInput{
		CollectionID: collectionID,
		Slot:         input.Slot,
		Entropy:      entropy,
		Traits:       input.Traits,
		MetadataURI:  input.MetadataURI,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"nft": nft})
}

// FuseNfts burns the parent NFTs and mints a higher-level NFT
// POST /api/v1/nfts/fuse
func (h *NftHandler) FuseNfts(c *gin.Context) {
	var input struct {
		CollectionID string   `json:"collectionId" binding:"required"`
		ParentMints  []string `json:"parentMints" binding:"required"`
		Slot         uint64   `json:"slot"`
		Entropy      string   `json:"entropy"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	collectionID, err := uuid.Parse(input.CollectionID)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid collection id"))
		return
	}
	entropy, err := decodeEntropy(input.Entropy)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("entropy must be base58 encoded"))
		return
	}

	fused, err := h.mintUsecase.FuseNfts(c.Request.Context(), callerAccount(c), usecases.FuseNftsInput{
		CollectionID: collectionID,
		ParentMints:  input.ParentMints,
		Slot:         input.Slot,
		Entropy:      entropy,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"nft": fused})
}

// GetNft returns the NFT record for a mint
// GET /api/v1/nfts/:mint
func (h *NftHandler) GetNft(c *gin.Context) {
	nft, err := h.nftRepo.GetByMint(c.Request.Context(), c.Param("mint"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"nft": nft})
}

// GetNftTraits returns the stored trait selection for an NFT
// GET /api/v1/nfts/:mint/traits
func (h *NftHandler) GetNftTraits(c *gin.Context) {
	traits, err := h.mintUsecase.GetNftTraits(c.Request.Context(), c.Param("mint"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"traits": traits})
}

// ListMyNfts returns a page of the caller's NFTs
// GET /api/v1/nfts?page=N&limit=M
func (h *NftHandler) ListMyNfts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	pagination := utils.GetPaginationParams(page, limit)

	items, total, err := h.nftRepo.GetByOwner(c.Request.Context(), callerAccount(c), pagination.Limit, pagination.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"items": items,
		"meta":  utils.CalculateMeta(int64(total), pagination.Page, pagination.Limit),
	})
}
