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

// tokenEscrowRepo implements repositories.TokenEscrowRepository
type tokenEscrowRepo struct {
	db *gorm.DB
}

// NewTokenEscrowRepository creates a new token escrow repository
func NewTokenEscrowRepository(db *gorm.DB) repositories.TokenEscrowRepository {
	return &tokenEscrowRepo{db: db}
}

func (r *tokenEscrowRepo) Create(ctx context.Context, escrow *entities.TokenEscrow) error {
	db := GetDB(ctx, r.db)

	m := toTokenEscrowModel(escrow)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	escrow.CreatedAt = m.CreatedAt
	escrow.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *tokenEscrowRepo) GetByNftMint(ctx context.Context, nftMint string) (*entities.TokenEscrow, error) {
	db := GetDB(ctx, r.db)

	var m models.TokenEscrow
	if err := db.WithContext(ctx).Where("nft_mint = ?", nftMint).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toTokenEscrowEntity(&m), nil
}

func (r *tokenEscrowRepo) Update(ctx context.Context, escrow *entities.TokenEscrow) error {
	db := GetDB(ctx, r.db)

	res := db.WithContext(ctx).Model(&models.TokenEscrow{}).
		Where("id = ?", escrow.ID).
		Updates(map[string]interface{}{
			"token_amount": escrow.TokenAmount,
			"is_active":    escrow.IsActive,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *tokenEscrowRepo) Delete(ctx context.Context, nftMint string) error {
	db := GetDB(ctx, r.db)

	res := db.WithContext(ctx).Where("nft_mint = ?", nftMint).Delete(&models.TokenEscrow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toTokenEscrowModel(e *entities.TokenEscrow) *models.TokenEscrow {
	return &models.TokenEscrow{
		ID:                 e.ID,
		Owner:              e.Owner,
		NftMint:            e.NftMint,
		TokenMint:          e.TokenMint,
		TokenAmount:        e.TokenAmount,
		EscrowTokenAccount: e.EscrowTokenAccount,
		DiscountPercent:    e.DiscountPercent.Ptr(),
		VestingEndTs:       e.VestingEndTs.Ptr(),
		IsActive:           e.IsActive,
	}
}

func toTokenEscrowEntity(m *models.TokenEscrow) *entities.TokenEscrow {
	return &entities.TokenEscrow{
		ID:                 m.ID,
		Owner:              m.Owner,
		NftMint:            m.NftMint,
		TokenMint:          m.TokenMint,
		TokenAmount:        m.TokenAmount,
		EscrowTokenAccount: m.EscrowTokenAccount,
		DiscountPercent:    null.Uint16FromPtr(m.DiscountPercent),
		VestingEndTs:       null.Int64FromPtr(m.VestingEndTs),
		IsActive:           m.IsActive,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}
