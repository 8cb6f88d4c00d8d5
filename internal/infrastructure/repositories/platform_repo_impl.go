package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/repositories"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/infrastructure/models"
)

// platformConfigRepo implements repositories.PlatformConfigRepository
type platformConfigRepo struct {
	db *gorm.DB
}

// NewPlatformConfigRepository creates a new platform config repository
func NewPlatformConfigRepository(db *gorm.DB) repositories.PlatformConfigRepository {
	return &platformConfigRepo{db: db}
}

func (r *platformConfigRepo) Create(ctx context.Context, config *entities.PlatformConfig) error {
	db := GetDB(ctx, r.db)

	var count int64
	if err := db.WithContext(ctx).Model(&models.PlatformConfig{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return domainerrors.ErrAlreadyExists
	}

	m := toPlatformConfigModel(config)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	config.CreatedAt = m.CreatedAt
	config.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *platformConfigRepo) Get(ctx context.Context) (*entities.PlatformConfig, error) {
	db := GetDB(ctx, r.db)

	var m models.PlatformConfig
	if err := db.WithContext(ctx).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toPlatformConfigEntity(&m), nil
}

func (r *platformConfigRepo) Update(ctx context.Context, config *entities.PlatformConfig) error {
	db := GetDB(ctx, r.db)

	res := db.WithContext(ctx).Model(&models.PlatformConfig{}).
		Where("id = ?", config.ID).
		Updates(map[string]interface{}{
			"authority":         config.Authority,
			"platform_fee_bps":  config.PlatformFeeBps,
			"platform_treasury": config.PlatformTreasury,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toPlatformConfigModel(e *entities.PlatformConfig) *models.PlatformConfig {
	return &models.PlatformConfig{
		ID:               e.ID,
		Authority:        e.Authority,
		PlatformFeeBps:   e.PlatformFeeBps,
		PlatformTreasury: e.PlatformTreasury,
	}
}

func toPlatformConfigEntity(m *models.PlatformConfig) *entities.PlatformConfig {
	return &entities.PlatformConfig{
		ID:               m.ID,
		Authority:        m.Authority,
		PlatformFeeBps:   m.PlatformFeeBps,
		PlatformTreasury: m.PlatformTreasury,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
