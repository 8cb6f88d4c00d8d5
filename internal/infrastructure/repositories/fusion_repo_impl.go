package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/repositories"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/infrastructure/models"
)

// fusionConfigRepo implements repositories.FusionConfigRepository
type fusionConfigRepo struct {
	db *gorm.DB
}

// NewFusionConfigRepository creates a new fusion config repository
func NewFusionConfigRepository(db *gorm.DB) repositories.FusionConfigRepository {
	return &fusionConfigRepo{db: db}
}

func (r *fusionConfigRepo) Create(ctx context.Context, config *entities.FusionConfig) error {
	db := GetDB(ctx, r.db)

	m := toFusionConfigModel(config)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	config.CreatedAt = m.CreatedAt
	config.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *fusionConfigRepo) GetByCollection(ctx context.Context, collectionID uuid.UUID) (*entities.FusionConfig, error) {
	db := GetDB(ctx, r.db)

	var m models.FusionConfig
	if err := db.WithContext(ctx).Where("collection_id = ?", collectionID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toFusionConfigEntity(&m), nil
}

func (r *fusionConfigRepo) Update(ctx context.Context, config *entities.FusionConfig) error {
	db := GetDB(ctx, r.db)

	res := db.WithContext(ctx).Model(&models.FusionConfig{}).
		Where("id = ?", config.ID).
		Updates(map[string]interface{}{
			"min_nfts":          config.MinNfts,
			"max_nfts":          config.MaxNfts,
			"base_success_rate": config.BaseSuccessRate,
			"burn_percent":      config.BurnPercent,
			"cooldown_period":   config.CooldownPeriod,
			"is_active":         config.IsActive,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toFusionConfigModel(e *entities.FusionConfig) *models.FusionConfig {
	return &models.FusionConfig{
		ID:              e.ID,
		CollectionID:    e.CollectionID,
		MinNfts:         e.MinNfts,
		MaxNfts:         e.MaxNfts,
		BaseSuccessRate: e.BaseSuccessRate,
		BurnPercent:     e.BurnPercent,
		CooldownPeriod:  e.CooldownPeriod,
		IsActive:        e.IsActive,
	}
}

func toFusionConfigEntity(m *models.FusionConfig) *entities.FusionConfig {
	return &entities.FusionConfig{
		ID:              m.ID,
		CollectionID:    m.CollectionID,
		MinNfts:         m.MinNfts,
		MaxNfts:         m.MaxNfts,
		BaseSuccessRate: m.BaseSuccessRate,
		BurnPercent:     m.BurnPercent,
		CooldownPeriod:  m.CooldownPeriod,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
