package repositories

import (
	"context"
	"errors"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/repositories"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/infrastructure/models"
)

// nftListingRepo implements repositories.NftListingRepository
type nftListingRepo struct {
	db *gorm.DB
}

// NewNftListingRepository creates a new NFT listing repository
func NewNftListingRepository(db *gorm.DB) repositories.NftListingRepository {
	return &nftListingRepo{db: db}
}

func (r *nftListingRepo) Create(ctx context.Context, listing *entities.NftListing) error {
	db := GetDB(ctx, r.db)

	m := toNftListingModel(listing)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	listing.CreatedAt = m.CreatedAt
	listing.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *nftListingRepo) GetByNftMint(ctx context.Context, nftMint string) (*entities.NftListing, error) {
	db := GetDB(ctx, r.db)

	var m models.NftListing
	if err := db.WithContext(ctx).Where("nft_mint = ?", nftMint).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toNftListingEntity(&m), nil
}

func (r *nftListingRepo) ListActive(ctx context.Context, limit, offset int) ([]*entities.NftListing, int, error) {
	db := GetDB(ctx, r.db)

	var totalCount int64
	query := db.WithContext(ctx).Model(&models.NftListing{}).Where("is_active = ?", true)
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.NftListing
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	listings := make([]*entities.NftListing, 0, len(ms))
	for i := range ms {
		listings = append(listings, toNftListingEntity(&ms[i]))
	}
	return listings, int(totalCount), nil
}

func (r *nftListingRepo) Update(ctx context.Context, listing *entities.NftListing) error {
	db := GetDB(ctx, r.db)

	res := db.WithContext(ctx).Model(&models.NftListing{}).
		Where("id = ?", listing.ID).
		Updates(map[string]interface{}{
			"price":            listing.Price,
			"discount_percent": listing.DiscountPercent.Ptr(),
			"cooldown_period":  listing.CooldownPeriod.Ptr(),
			"is_active":        listing.IsActive,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toNftListingModel(e *entities.NftListing) *models.NftListing {
	return &models.NftListing{
		ID:              e.ID,
		Owner:           e.Owner,
		NftMint:         e.NftMint,
		Price:           e.Price,
		DiscountPercent: e.DiscountPercent.Ptr(),
		CooldownPeriod:  e.CooldownPeriod.Ptr(),
		IsActive:        e.IsActive,
	}
}

func toNftListingEntity(m *models.NftListing) *entities.NftListing {
	return &entities.NftListing{
		ID:              m.ID,
		Owner:           m.Owner,
		NftMint:         m.NftMint,
		Price:           m.Price,
		DiscountPercent: null.Uint16FromPtr(m.DiscountPercent),
		CooldownPeriod:  null.Int64FromPtr(m.CooldownPeriod),
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
