package usecases

import (
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
)

// CheckFresh verifies the pool's oracle price is usable at the given time.
// A locked pool fails before staleness is even considered.
func CheckFresh(pool *entities.LiquidityPool, now int64) error {
	if pool.RedemptionLocked {
		return domainerrors.ErrRedemptionLocked
	}
	if !pool.OraclePriceUsd.Valid {
		return domainerrors.ErrStaleOracleFeed
	}
	if now-pool.OraclePriceLastUpdate > PriceStalenessWindow {
		return domainerrors.ErrStaleOracleFeed
	}
	return nil
}

// UsdToTokens converts a micro-USD amount into token base units at the
// pool's current price. Requires a fresh price.
func UsdToTokens(pool *entities.LiquidityPool, usdMicro uint64, now int64) (uint64, error) {
	if err := CheckFresh(pool, now); err != nil {
		return 0, err
	}
	price := pool.OraclePriceUsd.Uint64
	if price == 0 {
		return 0, domainerrors.ErrStaleOracleFeed
	}
	return mulDiv(usdMicro, TokenBaseScale, price)
}

// TokensToUsd converts token base units into micro-USD at the pool's
// current price. Requires a fresh price.
func TokensToUsd(pool *entities.LiquidityPool, tokens uint64, now int64) (uint64, error) {
	if err := CheckFresh(pool, now); err != nil {
		return 0, err
	}
	return mulDiv(tokens, pool.OraclePriceUsd.Uint64, TokenBaseScale)
}
