package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/repositories"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/infrastructure/models"
)

// traitTypeRepo implements repositories.TraitTypeRepository
type traitTypeRepo struct {
	db *gorm.DB
}

// NewTraitTypeRepository creates a new trait type repository
func NewTraitTypeRepository(db *gorm.DB) repositories.TraitTypeRepository {
	return &traitTypeRepo{db: db}
}

func (r *traitTypeRepo) Create(ctx context.Context, traitType *entities.TraitType) error {
	db := GetDB(ctx, r.db)

	m, err := toTraitTypeModel(traitType)
	if err != nil {
		return err
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	traitType.CreatedAt = m.CreatedAt
	traitType.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *traitTypeRepo) GetByName(ctx context.Context, collectionID uuid.UUID, name string) (*entities.TraitType, error) {
	db := GetDB(ctx, r.db)

	var m models.TraitType
	err := db.WithContext(ctx).
		Where("collection_id = ? AND name = ?", collectionID, name).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrTraitTypeNotFound
		}
		return nil, err
	}
	return toTraitTypeEntity(&m)
}

func (r *traitTypeRepo) ListByCollection(ctx context.Context, collectionID uuid.UUID) ([]*entities.TraitType, error) {
	db := GetDB(ctx, r.db)

	var ms []models.TraitType
	err := db.WithContext(ctx).
		Where("collection_id = ?", collectionID).
		Order("position ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	traitTypes := make([]*entities.TraitType, 0, len(ms))
	for i := range ms {
		tt, err := toTraitTypeEntity(&ms[i])
		if err != nil {
			return nil, err
		}
		traitTypes = append(traitTypes, tt)
	}
	return traitTypes, nil
}

func (r *traitTypeRepo) Update(ctx context.Context, traitType *entities.TraitType) error {
	db := GetDB(ctx, r.db)

	values, err := json.Marshal(traitType.Values)
	if err != nil {
		return err
	}

	res := db.WithContext(ctx).Model(&models.TraitType{}).
		Where("id = ?", traitType.ID).
		Updates(map[string]interface{}{
			"is_required": traitType.IsRequired,
			"position":    traitType.Position,
			"values":      string(values),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrTraitTypeNotFound
	}
	return nil
}

func toTraitTypeModel(e *entities.TraitType) (*models.TraitType, error) {
	values, err := json.Marshal(e.Values)
	if err != nil {
		return nil, err
	}
	return &models.TraitType{
		ID:           e.ID,
		CollectionID: e.CollectionID,
		Name:         e.Name,
		IsRequired:   e.IsRequired,
		Position:     e.Position,
		Values:       string(values),
	}, nil
}

func toTraitTypeEntity(m *models.TraitType) (*entities.TraitType, error) {
	var values []entities.TraitValue
	if m.Values != "" {
		if err := json.Unmarshal([]byte(m.Values), &values); err != nil {
			return nil, err
		}
	}
	return &entities.TraitType{
		ID:           m.ID,
		CollectionID: m.CollectionID,
		Name:         m.Name,
		IsRequired:   m.IsRequired,
		Position:     m.Position,
		Values:       values,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}

// traitConfigRepo implements repositories.CollectionTraitConfigRepository
type traitConfigRepo struct {
	db *gorm.DB
}

// NewCollectionTraitConfigRepository creates a new trait config repository
func NewCollectionTraitConfigRepository(db *gorm.DB) repositories.CollectionTraitConfigRepository {
	return &traitConfigRepo{db: db}
}

func (r *traitConfigRepo) Create(ctx context.Context, config *entities.CollectionTraitConfig) error {
	db := GetDB(ctx, r.db)

	m := &models.CollectionTraitConfig{
		ID:                    config.ID,
		CollectionID:          config.CollectionID,
		BaseURI:               config.BaseURI,
		AutoGenerationEnabled: config.AutoGenerationEnabled,
		MetadataFormat:        string(config.MetadataFormat),
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	config.CreatedAt = m.CreatedAt
	config.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *traitConfigRepo) GetByCollection(ctx context.Context, collectionID uuid.UUID) (*entities.CollectionTraitConfig, error) {
	db := GetDB(ctx, r.db)

	var m models.CollectionTraitConfig
	if err := db.WithContext(ctx).Where("collection_id = ?", collectionID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.CollectionTraitConfig{
		ID:                    m.ID,
		CollectionID:          m.CollectionID,
		BaseURI:               m.BaseURI,
		AutoGenerationEnabled: m.AutoGenerationEnabled,
		MetadataFormat:        entities.MetadataFormat(m.MetadataFormat),
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}, nil
}

func (r *traitConfigRepo) Update(ctx context.Context, config *entities.CollectionTraitConfig) error {
	db := GetDB(ctx, r.db)

	res := db.WithContext(ctx).Model(&models.CollectionTraitConfig{}).
		Where("id = ?", config.ID).
		Updates(map[string]interface{}{
			"base_uri":                config.BaseURI,
			"auto_generation_enabled": config.AutoGenerationEnabled,
			"metadata_format":         string(config.MetadataFormat),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// nftTraitsRepo implements repositories.NftTraitsRepository
type nftTraitsRepo struct {
	db *gorm.DB
}

// NewNftTraitsRepository creates a new NFT traits repository
func NewNftTraitsRepository(db *gorm.DB) repositories.NftTraitsRepository {
	return &nftTraitsRepo{db: db}
}

func (r *nftTraitsRepo) Create(ctx context.Context, traits *entities.NftTraits) error {
	db := GetDB(ctx, r.db)

	selected, err := json.Marshal(traits.Traits)
	if err != nil {
		return err
	}
	m := &models.NftTraits{
		ID:              traits.ID,
		NftMint:         traits.NftMint,
		CollectionID:    traits.CollectionID,
		Traits:          string(selected),
		IsAutoGenerated: traits.IsAutoGenerated,
		GenerationSeed:  traits.GenerationSeed,
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	traits.CreatedAt = m.CreatedAt
	traits.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *nftTraitsRepo) GetByNftMint(ctx context.Context, nftMint string) (*entities.NftTraits, error) {
	db := GetDB(ctx, r.db)

	var m models.NftTraits
	if err := db.WithContext(ctx).Where("nft_mint = ?", nftMint).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	var selected []entities.SelectedTrait
	if m.Traits != "" {
		if err := json.Unmarshal([]byte(m.Traits), &selected); err != nil {
			return nil, err
		}
	}
	return &entities.NftTraits{
		ID:              m.ID,
		NftMint:         m.NftMint,
		CollectionID:    m.CollectionID,
		Traits:          selected,
		IsAutoGenerated: m.IsAutoGenerated,
		GenerationSeed:  m.GenerationSeed,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}, nil
}
