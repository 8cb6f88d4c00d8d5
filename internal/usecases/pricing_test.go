package usecases_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/volatiletech/null/v8"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/usecases"
)

func freshPool(priceMicro uint64, now int64) *entities.LiquidityPool {
	return &entities.LiquidityPool{
		OraclePriceUsd:        null.Uint64From(priceMicro),
		OraclePriceLastUpdate: now,
		RedemptionLocked:      false,
		PriceSource:           entities.PriceSourceManual,
	}
}

func TestCheckFresh_LockedBeatsStaleness(t *testing.T) {
	now := int64(1_700_000_000)
	pool := freshPool(2_000_000, now)
	pool.RedemptionLocked = true

	err := usecases.CheckFresh(pool, now)
	assert.ErrorIs(t, err, domainerrors.ErrRedemptionLocked)
}

func TestCheckFresh_NoPrice(t *testing.T) {
	now := int64(1_700_000_000)
	pool := &entities.LiquidityPool{OraclePriceLastUpdate: now}

	err := usecases.CheckFresh(pool, now)
	assert.ErrorIs(t, err, domainerrors.ErrStaleOracleFeed)
}

func TestCheckFresh_StalePrice(t *testing.T) {
	now := int64(1_700_000_000)
	pool := freshPool(2_000_000, now-usecases.PriceStalenessWindow-1)

	err := usecases.CheckFresh(pool, now)
	assert.ErrorIs(t, err, domainerrors.ErrStaleOracleFeed)
}

func TestCheckFresh_ExactlyAtWindowBoundary(t *testing.T) {
	now := int64(1_700_000_000)
	pool := freshPool(2_000_000, now-usecases.PriceStalenessWindow)

	assert.NoError(t, usecases.CheckFresh(pool, now))
}

func TestUsdToTokens(t *testing.T) {
	now := int64(1_700_000_000)
	// 2 USD per token
	pool := freshPool(2_000_000, now)

	tokens, err := usecases.UsdToTokens(pool, 4_000_000, now)
	assert.NoError(t, err)
	assert.Equal(t, uint64(2_000_000_000), tokens)
}

func TestUsdToTokens_ZeroPrice(t *testing.T) {
	now := int64(1_700_000_000)
	pool := freshPool(0, now)

	_, err := usecases.UsdToTokens(pool, 1_000_000, now)
	assert.ErrorIs(t, err, domainerrors.ErrStaleOracleFeed)
}

func TestTokensToUsd(t *testing.T) {
	now := int64(1_700_000_000)
	pool := freshPool(2_000_000, now)

	usd, err := usecases.TokensToUsd(pool, 2_000_000_000, now)
	assert.NoError(t, err)
	assert.Equal(t, uint64(4_000_000), usd)
}

func TestUsdTokensRoundTrip(t *testing.T) {
	now := int64(1_700_000_000)
	pool := freshPool(3_141_592, now)

	tokens, err := usecases.UsdToTokens(pool, 10_000_000, now)
	assert.NoError(t, err)
	usd, err := usecases.TokensToUsd(pool, tokens, now)
	assert.NoError(t, err)
	assert.InDelta(t, 10_000_000, usd, 1)
}

func TestConversions_RefuseStalePool(t *testing.T) {
	now := int64(1_700_000_000)
	pool := freshPool(2_000_000, now-usecases.PriceStalenessWindow-10)

	_, err := usecases.UsdToTokens(pool, 1_000_000, now)
	assert.ErrorIs(t, err, domainerrors.ErrStaleOracleFeed)

	_, err = usecases.TokensToUsd(pool, 1_000_000, now)
	assert.ErrorIs(t, err, domainerrors.ErrStaleOracleFeed)
}
