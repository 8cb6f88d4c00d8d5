package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrBadRequest    = errors.New("bad request")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
)

// Oracle and pricing errors
var (
	ErrStaleOracleFeed       = errors.New("oracle price feed is stale")
	ErrRedemptionLocked      = errors.New("redemption is locked")
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")
	ErrCalculationOverflow   = errors.New("calculation overflow")
)

// Pool, swap and fee errors
var (
	ErrInvalidFeePercentage     = errors.New("invalid fee percentage")
	ErrInvalidRoyaltyPercentage = errors.New("invalid royalty percentage")
	ErrInsufficientTokenAmount  = errors.New("insufficient token amount")
	ErrInsufficientPoolFunds    = errors.New("insufficient pool funds")
	ErrInvalidDiscount          = errors.New("invalid discount percentage")
	ErrInvalidCooldownPeriod    = errors.New("invalid cooldown period")
	ErrNftInCooldown            = errors.New("nft is still in cooldown")
	ErrPoolNotInactive          = errors.New("pool has not reached the inactivity window")
	ErrProjectInactive          = errors.New("project is inactive")
)

// Escrow errors
var (
	ErrTokenPriceTooLow     = errors.New("token amount too low")
	ErrInvalidVestingPeriod = errors.New("invalid vesting period")
	ErrVestingPeriodActive  = errors.New("vesting period is still active")
	ErrEscrowNotActive      = errors.New("escrow is not active")
)

// NFT and listing errors
var (
	ErrNotNftOwner        = errors.New("caller is not the nft owner")
	ErrListingNotActive   = errors.New("listing is not active")
	ErrInvalidMetadataURI = errors.New("invalid metadata uri")
)

// Trait errors
var (
	ErrTraitTypeNotFound      = errors.New("trait type not found")
	ErrTraitValueNotFound     = errors.New("trait value not found")
	ErrRequiredTraitMissing   = errors.New("required trait missing")
	ErrTraitSupplyExceeded    = errors.New("trait supply exceeded")
	ErrInvalidTraitConfig     = errors.New("invalid trait configuration")
	ErrInvalidTraitsSelection = errors.New("invalid traits selection")
	ErrAutoGenerationDisabled = errors.New("auto generation is disabled")
)

// Fusion errors
var (
	ErrFusionNotActive    = errors.New("fusion is not active for collection")
	ErrInvalidFusionInput = errors.New("invalid fusion input")
)

// AppError represents application error with HTTP status
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrAlreadyExists)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}

// NewError creates a new error with a custom message wrapping an existing error
func NewError(message string, err error) error {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
		Err:     err,
	}
}
