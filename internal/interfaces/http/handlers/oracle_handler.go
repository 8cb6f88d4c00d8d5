package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/interfaces/http/response"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/usecases"
)

// OracleHandler handles price ingestion and freshness endpoints
type OracleHandler struct {
	oracleUsecase *usecases.OracleUsecase
}

// NewOracleHandler creates a new oracle handler
func NewOracleHandler(oracleUsecase *usecases.OracleUsecase) *OracleHandler {
	return &OracleHandler{oracleUsecase: oracleUsecase}
}

// UpdatePriceFromFeed ingests the latest push-oracle round
// POST /api/v1/projects/:projectId/price/feed
func (h *OracleHandler) UpdatePriceFromFeed(c *gin.Context) {
	var input struct {
		FeedAddress string `json:"feedAddress" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	pool, err := h.oracleUsecase.UpdatePriceFromFeed(c.Request.Context(), c.Param("projectId"), input.FeedAddress)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"pool": pool})
}

// UpdatePriceFromDex derives the price from pool reserves
// POST /api/v1/projects/:projectId/price/dex
func (h *OracleHandler) UpdatePriceFromDex(c *gin.Context) {
	var input struct {
		BaseReserves  uint64 `json:"baseReserves"`
		TokenReserves uint64 `json:"tokenReserves"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	pool, err := h.oracleUsecase.UpdatePriceFromDex(c.Request.Context(), c.Param("projectId"), input.BaseReserves, input.TokenReserves)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"pool": pool})
}

// SetManualPrice stores a caller-supplied price
// POST /api/v1/projects/:projectId/price/manual
func (h *OracleHandler) SetManualPrice(c *gin.Context) {
	var input struct {
		PriceUsdMicro uint64 `json:"priceUsdMicro" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	pool, err := h.oracleUsecase.SetManualPrice(c.Request.Context(), c.Param("projectId"), input.PriceUsdMicro)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"pool": pool})
}

// CheckFresh reports whether the project's pool price is fresh
// GET /api/v1/projects/:projectId/price/fresh
func (h *OracleHandler) CheckFresh(c *gin.Context) {
	if err := h.oracleUsecase.CheckFresh(c.Request.Context(), c.Param("projectId")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"fresh": true})
}

// ConvertUsdToTokens converts micro-USD to token base units
// GET /api/v1/projects/:projectId/price/usd-to-tokens?usdMicro=N
func (h *OracleHandler) ConvertUsdToTokens(c *gin.Context) {
	var query struct {
		UsdMicro uint64 `form:"usdMicro" binding:"required"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	tokens, err := h.oracleUsecase.UsdToTokens(c.Request.Context(), c.Param("projectId"), query.UsdMicro)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tokens": tokens})
}

// ConvertTokensToUsd converts token base units to micro-USD
// GET /api/v1/projects/:projectId/price/tokens-to-usd?tokens=N
func (h *OracleHandler) ConvertTokensToUsd(c *gin.Context) {
	var query struct {
		Tokens uint64 `form:"tokens" binding:"required"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	usdMicro, err := h.oracleUsecase.TokensToUsd(c.Request.Context(), c.Param("projectId"), query.Tokens)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"usdMicro": usdMicro})
}
