package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/interfaces/http/response"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/usecases"
)

// TraitHandler handles trait type and trait config endpoints
type TraitHandler struct {
	traitUsecase *usecases.TraitUsecase
}

// NewTraitHandler creates a new trait handler
func NewTraitHandler(traitUsecase *usecases.TraitUsecase) *TraitHandler {
	return &TraitHandler{traitUsecase: traitUsecase}
}

// CreateTraitType registers a trait type with its ordered value pool
// POST /api/v1/collections/:collectionId/trait-types
func (h *TraitHandler) CreateTraitType(c *gin.Context) {
	collectionID, err := uuid.Parse(c.Param("collectionId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid collection id"))
		return
	}

	var input struct {
		Name       string                `json:"name" binding:"required"`
		IsRequired bool                  `json:"isRequired"`
		Position   int                   `json:"position"`
		Values     []entities.TraitValue `json:"values" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	traitType, err := h.traitUsecase.CreateTraitType(c.Request.Context(), callerAccount(c), usecases.CreateTraitTypeInput{
		CollectionID: collectionID,
		Name:         input.Name,
		IsRequired:   input.IsRequired,
		Position:     input.Position,
		Values:       input.Values,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"traitType": traitType})
}

// CreateTraitConfig stores the collection's trait generation settings
// POST /api/v1/collections/:collectionId/trait-config
func (h *TraitHandler) CreateTraitConfig(c *gin.Context) {
	collectionID, err := uuid.Parse(c.Param("collectionId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid collection id"))
		return
	}

	var input struct {
		BaseURI               string `json:"baseUri" binding:"required"`
		AutoGenerationEnabled bool   `json:"autoGenerationEnabled"`
		MetadataFormat        string `json:"metadataFormat" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	config, err := h.traitUsecase.CreateTraitConfig(c.Request.Context(), callerAccount(c), usecases.CreateTraitConfigInput{
		CollectionID:          collectionID,
		BaseURI:               input.BaseURI,
		AutoGenerationEnabled: input.AutoGenerationEnabled,
		MetadataFormat:        entities.MetadataFormat(input.MetadataFormat),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"traitConfig": config})
}

// ListTraitTypes returns the collection's trait types in declaration order
// GET /api/v1/collections/:collectionId/trait-types
func (h *TraitHandler) ListTraitTypes(c *gin.Context) {
	collectionID, err := uuid.Parse(c.Param("collectionId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid collection id"))
		return
	}

	traitTypes, err := h.traitUsecase.ListTraitTypes(c.Request.Context(), collectionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"traitTypes": traitTypes})
}
