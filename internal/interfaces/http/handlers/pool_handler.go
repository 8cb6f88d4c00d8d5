package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/interfaces/http/response"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/usecases"
)

// PoolHandler handles liquidity pool endpoints
type PoolHandler struct {
	poolUsecase *usecases.PoolUsecase
}

// NewPoolHandler creates a new pool handler
func NewPoolHandler(poolUsecase *usecases.PoolUsecase) *PoolHandler {
	return &PoolHandler{poolUsecase: poolUsecase}
}

// SetupLiquidityPool creates and seeds the project's pool
// POST /api/v1/projects/:projectId/pool
func (h *PoolHandler) SetupLiquidityPool(c *gin.Context) {
	var input struct {
		TokenMint        string `json:"tokenMint" binding:"required"`
		InitialLiquidity uint64 `json:"initialLiquidity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	pool, err := h.poolUsecase.SetupLiquidityPool(c.Request.Context(), callerAccount(c), c.Param("projectId"), input.TokenMint, input.InitialLiquidity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"pool": pool})
}

// CheckLpInactivity reclaims an abandoned pool
// POST /api/v1/projects/:projectId/pool/inactivity-check
func (h *PoolHandler) CheckLpInactivity(c *gin.Context) {
	reclaimed, err := h.poolUsecase.CheckLpInactivity(c.Request.Context(), callerAccount(c), c.Param("projectId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reclaimed": reclaimed})
}
