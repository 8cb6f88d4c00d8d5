package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/repositories"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/infrastructure/models"
)

// liquidityPoolRepo implements repositories.LiquidityPoolRepository
type liquidityPoolRepo struct {
	db *gorm.DB
}

// NewLiquidityPoolRepository creates a new liquidity pool repository
func NewLiquidityPoolRepository(db *gorm.DB) repositories.LiquidityPoolRepository {
	return &liquidityPoolRepo{db: db}
}

func (r *liquidityPoolRepo) Create(ctx context.Context, pool *entities.LiquidityPool) error {
	db := GetDB(ctx, r.db)

	m := toLiquidityPoolModel(pool)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	pool.CreatedAt = m.CreatedAt
	pool.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *liquidityPoolRepo) GetByProjectID(ctx context.Context, projectID uuid.UUID) (*entities.LiquidityPool, error) {
	db := GetDB(ctx, r.db)

	var m models.LiquidityPool
	if err := db.WithContext(ctx).Where("project_id = ?", projectID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toLiquidityPoolEntity(&m), nil
}

func (r *liquidityPoolRepo) Update(ctx context.Context, pool *entities.LiquidityPool) error {
	db := GetDB(ctx, r.db)

	res := db.WithContext(ctx).Model(&models.LiquidityPool{}).
		Where("id = ?", pool.ID).
		Updates(map[string]interface{}{
			"oracle_price_usd":         pool.OraclePriceUsd.Ptr(),
			"oracle_price_last_update": pool.OraclePriceLastUpdate,
			"redemption_locked":        pool.RedemptionLocked,
			"price_source":             string(pool.PriceSource),
			"last_activity":            pool.LastActivity,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toLiquidityPoolModel(e *entities.LiquidityPool) *models.LiquidityPool {
	return &models.LiquidityPool{
		ID:                    e.ID,
		ProjectID:             e.ProjectID,
		TokenMint:             e.TokenMint,
		LpTokenAccount:        e.LpTokenAccount,
		OraclePriceUsd:        e.OraclePriceUsd.Ptr(),
		OraclePriceLastUpdate: e.OraclePriceLastUpdate,
		RedemptionLocked:      e.RedemptionLocked,
		PriceSource:           string(e.PriceSource),
		LastActivity:          e.LastActivity,
	}
}

func toLiquidityPoolEntity(m *models.LiquidityPool) *entities.LiquidityPool {
	return &entities.LiquidityPool{
		ID:                    m.ID,
		ProjectID:             m.ProjectID,
		TokenMint:             m.TokenMint,
		LpTokenAccount:        m.LpTokenAccount,
		OraclePriceUsd:        null.Uint64FromPtr(m.OraclePriceUsd),
		OraclePriceLastUpdate: m.OraclePriceLastUpdate,
		RedemptionLocked:      m.RedemptionLocked,
		PriceSource:           entities.PriceSource(m.PriceSource),
		LastActivity:          m.LastActivity,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}
