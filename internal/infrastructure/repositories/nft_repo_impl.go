package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/repositories"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/infrastructure/models"
)

// nftRepo implements repositories.NftRepository
type nftRepo struct {
	db *gorm.DB
}

// NewNftRepository creates a new NFT repository
func NewNftRepository(db *gorm.DB) repositories.NftRepository {
	return &nftRepo{db: db}
}

func (r *nftRepo) Create(ctx context.Context, nft *entities.NftData) error {
	db := GetDB(ctx, r.db)

	m, err := toNftModel(nft)
	if err != nil {
		return err
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	nft.CreatedAt = m.CreatedAt
	nft.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *nftRepo) GetByMint(ctx context.Context, mint string) (*entities.NftData, error) {
	db := GetDB(ctx, r.db)

	var m models.Nft
	if err := db.WithContext(ctx).Where("mint = ?", mint).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toNftEntity(&m)
}

func (r *nftRepo) GetByOwner(ctx context.Context, owner string, limit, offset int) ([]*entities.NftData, int, error) {
	db := GetDB(ctx, r.db)

	var totalCount int64
	query := db.WithContext(ctx).Model(&models.Nft{}).Where("owner = ?", owner)
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Nft
	if err := query.Order("minted_at DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	nfts := make([]*entities.NftData, 0, len(ms))
	for i := range ms {
		nft, err := toNftEntity(&ms[i])
		if err != nil {
			return nil, 0, err
		}
		nfts = append(nfts, nft)
	}
	return nfts, int(totalCount), nil
}

func (r *nftRepo) Update(ctx context.Context, nft *entities.NftData) error {
	db := GetDB(ctx, r.db)

	parents, err := json.Marshal(parentList(nft.ParentNfts))
	if err != nil {
		return err
	}

	res := db.WithContext(ctx).Model(&models.Nft{}).
		Where("mint = ?", nft.Mint).
		Updates(map[string]interface{}{
			"owner":            nft.Owner,
			"metadata_uri":     nft.MetadataURI,
			"cooldown_end_ts":  nft.CooldownEndTs.Ptr(),
			"discount_percent": nft.DiscountPercent.Ptr(),
			"fusion_level":     nft.FusionLevel,
			"parent_nfts":      string(parents),
			"rarity_score":     nft.RarityScore,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *nftRepo) Delete(ctx context.Context, mint string) error {
	db := GetDB(ctx, r.db)

	res := db.WithContext(ctx).Where("mint = ?", mint).Delete(&models.Nft{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func parentList(parents []string) []string {
	if parents == nil {
		return []string{}
	}
	return parents
}

func toNftModel(e *entities.NftData) (*models.Nft, error) {
	parents, err := json.Marshal(parentList(e.ParentNfts))
	if err != nil {
		return nil, err
	}
	return &models.Nft{
		ID:              e.ID,
		Owner:           e.Owner,
		CollectionID:    e.CollectionID,
		Mint:            e.Mint,
		MetadataURI:     e.MetadataURI,
		MintedAt:        e.MintedAt,
		CooldownEndTs:   e.CooldownEndTs.Ptr(),
		DiscountPercent: e.DiscountPercent.Ptr(),
		FusionLevel:     e.FusionLevel,
		ParentNfts:      string(parents),
		RarityScore:     e.RarityScore,
	}, nil
}

func toNftEntity(m *models.Nft) (*entities.NftData, error) {
	var parents []string
	if m.ParentNfts != "" {
		if err := json.Unmarshal([]byte(m.ParentNfts), &parents); err != nil {
			return nil, err
		}
	}
	return &entities.NftData{
		ID:              m.ID,
		Owner:           m.Owner,
		CollectionID:    m.CollectionID,
		Mint:            m.Mint,
		MetadataURI:     m.MetadataURI,
		MintedAt:        m.MintedAt,
		CooldownEndTs:   null.Int64FromPtr(m.CooldownEndTs),
		DiscountPercent: null.Uint16FromPtr(m.DiscountPercent),
		FusionLevel:     m.FusionLevel,
		ParentNfts:      parents,
		RarityScore:     m.RarityScore,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}, nil
}
