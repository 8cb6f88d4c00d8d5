package usecases

import (
	"context"
	"math/big"

	"github.com/jonboulle/clockwork"
	"github.com/volatiletech/null/v8"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/repositories"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/infrastructure/pricefeed"
	"github.com/JupiterRain123/nft-fusion-marketplace/pkg/logger"
)

// PriceFeedReader reads the latest round of an external push oracle
type PriceFeedReader interface {
	LatestRound(ctx context.Context, feedAddress string) (*pricefeed.RoundData, error)
}

// OracleUsecase handles oracle price ingestion and freshness queries
type OracleUsecase struct {
	projectRepo repositories.ProjectRepository
	poolRepo    repositories.LiquidityPoolRepository
	feedReader  PriceFeedReader
	clock       clockwork.Clock
}

// NewOracleUsecase creates a new oracle usecase
func NewOracleUsecase(
	projectRepo repositories.ProjectRepository,
	poolRepo repositories.LiquidityPoolRepository,
	feedReader PriceFeedReader,
	clock clockwork.Clock,
) *OracleUsecase {
	return &OracleUsecase{
		projectRepo: projectRepo,
		poolRepo:    poolRepo,
		feedReader:  feedReader,
		clock:       clock,
	}
}

// UpdatePriceFromFeed ingests the latest push-oracle round for a project's
// pool. A stale or negative round locks redemption and keeps the last known
// price; a fresh round stores the normalized price and clears the lock.
func (u *OracleUsecase) UpdatePriceFromFeed(ctx context.Context, projectID, feedAddress string) (*entities.LiquidityPool, error) {
	project, pool, err := u.loadProjectPool(ctx, projectID)
	if err != nil {
		return nil, err
	}

	round, err := u.feedReader.LatestRound(ctx, feedAddress)
	if err != nil {
		return nil, err
	}
	if round.Answer.Sign() < 0 {
		return nil, domainerrors.ErrStaleOracleFeed
	}

	now := u.clock.Now().Unix()
	if now-round.PublishedAt > PriceStalenessWindow {
		logger.Warn(ctx, "stale oracle round, locking redemption")
		pool.RedemptionLocked = true
	} else {
		priceMicro, err := normalizeFeedPrice(round.Answer, round.Expo)
		if err != nil {
			return nil, err
		}
		pool.OraclePriceUsd = null.Uint64From(priceMicro)
		pool.RedemptionLocked = false
		pool.PriceSource = entities.PriceSourcePyth
	}
	pool.OraclePriceLastUpdate = now

	return pool, u.persistPriceUpdate(ctx, project, pool, now)
}

// UpdatePriceFromDex derives the price from pool reserves. Both reserve
// figures must be nonzero; a ratio price is definitionally fresh, so the
// redemption lock always clears.
func (u *OracleUsecase) UpdatePriceFromDex(ctx context.Context, projectID string, baseReserves, tokenReserves uint64) (*entities.LiquidityPool, error) {
	if baseReserves == 0 || tokenReserves == 0 {
		return nil, domainerrors.ErrInsufficientLiquidity
	}

	project, pool, err := u.loadProjectPool(ctx, projectID)
	if err != nil {
		return nil, err
	}

	price, err := mulDiv(baseReserves, TokenBaseScale, tokenReserves)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now().Unix()
	pool.OraclePriceUsd = null.Uint64From(price)
	pool.OraclePriceLastUpdate = now
	pool.RedemptionLocked = false
	pool.PriceSource = entities.PriceSourceDex

	return pool, u.persistPriceUpdate(ctx, project, pool, now)
}

// SetManualPrice stores a caller-supplied price and clears the lock
func (u *OracleUsecase) SetManualPrice(ctx context.Context, projectID string, priceUsdMicro uint64) (*entities.LiquidityPool, error) {
	project, pool, err := u.loadProjectPool(ctx, projectID)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now().Unix()
	pool.OraclePriceUsd = null.Uint64From(priceUsdMicro)
	pool.OraclePriceLastUpdate = now
	pool.RedemptionLocked = false
	pool.PriceSource = entities.PriceSourceManual

	return pool, u.persistPriceUpdate(ctx, project, pool, now)
}

// CheckFresh reports whether the project's pool price is fresh right now
func (u *OracleUsecase) CheckFresh(ctx context.Context, projectID string) error {
	_, pool, err := u.loadProjectPool(ctx, projectID)
	if err != nil {
		return err
	}
	return CheckFresh(pool, u.clock.Now().Unix())
}

// UsdToTokens converts micro-USD to token base units at the pool price
func (u *OracleUsecase) UsdToTokens(ctx context.Context, projectID string, usdMicro uint64) (uint64, error) {
	_, pool, err := u.loadProjectPool(ctx, projectID)
	if err != nil {
		return 0, err
	}
	return UsdToTokens(pool, usdMicro, u.clock.Now().Unix())
}

// TokensToUsd converts token base units to micro-USD at the pool price
func (u *OracleUsecase) TokensToUsd(ctx context.Context, projectID string, tokens uint64) (uint64, error) {
	_, pool, err := u.loadProjectPool(ctx, projectID)
	if err != nil {
		return 0, err
	}
	return TokensToUsd(pool, tokens, u.clock.Now().Unix())
}

func (u *OracleUsecase) loadProjectPool(ctx context.Context, projectID string) (*entities.Project, *entities.LiquidityPool, error) {
	project, err := u.projectRepo.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}
	pool, err := u.poolRepo.GetByProjectID(ctx, project.ID)
	if err != nil {
		return nil, nil, err
	}
	return project, pool, nil
}

func (u *OracleUsecase) persistPriceUpdate(ctx context.Context, project *entities.Project, pool *entities.LiquidityPool, now int64) error {
	pool.LastActivity = now
	if err := u.poolRepo.Update(ctx, pool); err != nil {
		return err
	}
	project.LastActivityTs = now
	return u.projectRepo.Update(ctx, project)
}

// normalizeFeedPrice scales an exponent-quoted feed answer to micro-USD
func normalizeFeedPrice(answer *big.Int, expo int32) (uint64, error) {
	factor := expo
	if factor < 0 {
		factor = -factor
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(factor)), nil)
	price := new(big.Int).Mul(answer, scale)
	if price.Sign() < 0 || price.Cmp(maxUint64) > 0 {
		return 0, domainerrors.ErrCalculationOverflow
	}
	return price.Uint64(), nil
}
