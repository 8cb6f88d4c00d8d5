package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response, translating domain errors to HTTP status
// codes.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		})
		return
	}

	status := statusFor(err)
	c.JSON(status, gin.H{
		"code":    status,
		"message": err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound),
		errors.Is(err, domainerrors.ErrTraitTypeNotFound),
		errors.Is(err, domainerrors.ErrTraitValueNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domainerrors.ErrForbidden),
		errors.Is(err, domainerrors.ErrNotNftOwner):
		return http.StatusForbidden
	case errors.Is(err, domainerrors.ErrAlreadyExists),
		errors.Is(err, domainerrors.ErrNftInCooldown),
		errors.Is(err, domainerrors.ErrVestingPeriodActive),
		errors.Is(err, domainerrors.ErrEscrowNotActive),
		errors.Is(err, domainerrors.ErrListingNotActive),
		errors.Is(err, domainerrors.ErrPoolNotInactive),
		errors.Is(err, domainerrors.ErrProjectInactive),
		errors.Is(err, domainerrors.ErrFusionNotActive),
		errors.Is(err, domainerrors.ErrRedemptionLocked),
		errors.Is(err, domainerrors.ErrStaleOracleFeed),
		errors.Is(err, domainerrors.ErrAutoGenerationDisabled):
		return http.StatusConflict
	case errors.Is(err, domainerrors.ErrInsufficientLiquidity),
		errors.Is(err, domainerrors.ErrInsufficientTokenAmount),
		errors.Is(err, domainerrors.ErrInsufficientPoolFunds),
		errors.Is(err, domainerrors.ErrTraitSupplyExceeded):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainerrors.ErrBadRequest),
		errors.Is(err, domainerrors.ErrInvalidInput),
		errors.Is(err, domainerrors.ErrInvalidFeePercentage),
		errors.Is(err, domainerrors.ErrInvalidRoyaltyPercentage),
		errors.Is(err, domainerrors.ErrInvalidDiscount),
		errors.Is(err, domainerrors.ErrInvalidCooldownPeriod),
		errors.Is(err, domainerrors.ErrTokenPriceTooLow),
		errors.Is(err, domainerrors.ErrInvalidVestingPeriod),
		errors.Is(err, domainerrors.ErrInvalidMetadataURI),
		errors.Is(err, domainerrors.ErrInvalidTraitConfig),
		errors.Is(err, domainerrors.ErrInvalidTraitsSelection),
		errors.Is(err, domainerrors.ErrRequiredTraitMissing),
		errors.Is(err, domainerrors.ErrInvalidFusionInput),
		errors.Is(err, domainerrors.ErrCalculationOverflow):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
