package usecases

import (
	"context"
	"errors"

	"github.com/jonboulle/clockwork"
	"github.com/volatiletech/null/v8"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/repositories"
	"github.com/JupiterRain123/nft-fusion-marketplace/pkg/utils"
)

// ListingUsecase manages asking-price listings for minted NFTs
type ListingUsecase struct {
	nftRepo     repositories.NftRepository
	listingRepo repositories.NftListingRepository
	clock       clockwork.Clock
}

// NewListingUsecase creates a new listing usecase
func NewListingUsecase(
	nftRepo repositories.NftRepository,
	listingRepo repositories.NftListingRepository,
	clock clockwork.Clock,
) *ListingUsecase {
	return &ListingUsecase{
		nftRepo:     nftRepo,
		listingRepo: listingRepo,
		clock:       clock,
	}
}

// CreateListingInput carries the caller-validated listing parameters
type CreateListingInput struct {
	NftMint         string
	Price           uint64
	DiscountPercent null.Uint16
	CooldownPeriod  null.Int64
}

// CreateListing lists the caller's NFT at an asking price. Only one active
// listing per mint is allowed.
func (u *ListingUsecase) CreateListing(ctx context.Context, caller string, in CreateListingInput) (*entities.NftListing, error) {
	if in.Price == 0 {
		return nil, domainerrors.ErrInvalidInput
	}
	if in.DiscountPercent.Valid && in.DiscountPercent.Uint16 > 100 {
		return nil, domainerrors.ErrInvalidDiscount
	}
	if in.CooldownPeriod.Valid && in.CooldownPeriod.Int64 <= 0 {
		return nil, domainerrors.ErrInvalidCooldownPeriod
	}

	nft, err := u.nftRepo.GetByMint(ctx, in.NftMint)
	if err != nil {
		return nil, err
	}
	if nft.Owner != caller {
		return nil, domainerrors.ErrNotNftOwner
	}

	existing, err := u.listingRepo.GetByNftMint(ctx, in.NftMint)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil && existing.IsActive {
		return nil, domainerrors.ErrAlreadyExists
	}

	id, err := utils.GenerateUUIDv7()
	if err != nil {
		return nil, err
	}
	listing := &entities.NftListing{
		ID:              id,
		Owner:           caller,
		NftMint:         in.NftMint,
		Price:           in.Price,
		DiscountPercent: in.DiscountPercent,
		CooldownPeriod:  in.CooldownPeriod,
		IsActive:        true,
	}
	if err := u.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// CancelListing deactivates the caller's active listing
func (u *ListingUsecase) CancelListing(ctx context.Context, caller string, nftMint string) error {
	listing, err := u.listingRepo.GetByNftMint(ctx, nftMint)
	if err != nil {
		return err
	}
	if listing.Owner != caller {
		return domainerrors.ErrUnauthorized
	}
	if !listing.IsActive {
		return domainerrors.ErrListingNotActive
	}

	listing.IsActive = false
	return u.listingRepo.Update(ctx, listing)
}

// ListActive returns a page of active listings with the total count
func (u *ListingUsecase) ListActive(ctx context.Context, limit, offset int) ([]*entities.NftListing, int, error) {
	return u.listingRepo.ListActive(ctx, limit, offset)
}
