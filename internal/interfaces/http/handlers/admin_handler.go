package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/interfaces/http/response"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/usecases"
)

// AdminHandler handles platform, project, collection, and fusion config
// administration endpoints
type AdminHandler struct {
	adminUsecase *usecases.AdminUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase *usecases.AdminUsecase) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

// InitializePlatform creates the singleton platform configuration
// POST /api/v1/admin/platform
func (h *AdminHandler) InitializePlatform(c *gin.Context) {
	var input struct {
		PlatformFeeBps   uint16 `json:"platformFeeBps"`
		PlatformTreasury string `json:"platformTreasury" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	config, err := h.adminUsecase.InitializePlatform(c.Request.Context(), callerAccount(c), input.PlatformFeeBps, input.PlatformTreasury)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"platform": config})
}

// UpdatePlatformFee changes the platform cut
// PATCH /api/v1/admin/platform/fee
func (h *AdminHandler) UpdatePlatformFee(c *gin.Context) {
	var input struct {
		PlatformFeeBps uint16 `json:"platformFeeBps"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	config, err := h.adminUsecase.UpdatePlatformFee(c.Request.Context(), callerAccount(c), input.PlatformFeeBps)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"platform": config})
}

// CreateProject registers a project under the calling authority
// POST /api/v1/admin/projects
func (h *AdminHandler) CreateProject(c *gin.Context) {
	var input struct {
		ProjectID       string  `json:"projectId" binding:"required"`
		ProjectTreasury string  `json:"projectTreasury" binding:"required"`
		RoyaltyWallet   *string `json:"royaltyWallet"`
		RoyaltyBps      uint16  `json:"royaltyBps"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	project, err := h.adminUsecase.CreateProject(c.Request.Context(), callerAccount(c), usecases.CreateProjectInput{
		ProjectID:       input.ProjectID,
		ProjectTreasury: input.ProjectTreasury,
		RoyaltyWallet:   null.StringFromPtr(input.RoyaltyWallet),
		RoyaltyBps:      input.RoyaltyBps,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"project": project})
}

// CreateCollection adds a collection to the caller's project
// POST /api/v1/admin/projects/:projectId/collections
func (h *AdminHandler) CreateCollection(c *gin.Context) {
	var input struct {
		CollectionID string  `json:"collectionId" binding:"required"`
		MetadataURI  string  `json:"metadataUri" binding:"required"`
		TokenMint    *string `json:"tokenMint"`
		IsCompressed bool    `json:"isCompressed"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	collection, err := h.adminUsecase.CreateCollection(c.Request.Context(), callerAccount(c), usecases.CreateCollectionInput{
		ProjectID:    c.Param("projectId"),
		CollectionID: input.CollectionID,
		MetadataURI:  input.MetadataURI,
		TokenMint:    null.StringFromPtr(input.TokenMint),
		IsCompressed: input.IsCompressed,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"collection": collection})
}

// CreateFusionConfig enables fusion for a collection
// POST /api/v1/admin/collections/:collectionId/fusion-config
func (h *AdminHandler) CreateFusionConfig(c *gin.Context) {
	collectionID, err := uuid.Parse(c.Param("collectionId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid collection id"))
		return
	}

	var input struct {
		MinNfts         uint8 `json:"minNfts" binding:"required"`
		MaxNfts         uint8 `json:"maxNfts" binding:"required"`
		BaseSuccessRate uint8 `json:"baseSuccessRate"`
		BurnPercent     uint8 `json:"burnPercent"`
		CooldownPeriod  int64 `json:"cooldownPeriod"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	config, err := h.adminUsecase.CreateFusionConfig(c.Request.Context(), callerAccount(c), usecases.CreateFusionConfigInput{
		CollectionID:    collectionID,
		MinNfts:         input.MinNfts,
		MaxNfts:         input.MaxNfts,
		BaseSuccessRate: input.BaseSuccessRate,
		BurnPercent:     input.BurnPercent,
		CooldownPeriod:  input.CooldownPeriod,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"fusionConfig": config})
}
