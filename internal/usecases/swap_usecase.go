package usecases

import (
	"context"

	"github.com/jonboulle/clockwork"
	"github.com/volatiletech/null/v8"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/repositories"
	"github.com/JupiterRain123/nft-fusion-marketplace/pkg/logger"
	"github.com/JupiterRain123/nft-fusion-marketplace/pkg/utils"
)

var newMintAddress = utils.GenerateMintAddress

// SwapUsecase orchestrates pool-backed NFT minting and redemption
type SwapUsecase struct {
	platformRepo   repositories.PlatformConfigRepository
	projectRepo    repositories.ProjectRepository
	collectionRepo repositories.CollectionRepository
	poolRepo       repositories.LiquidityPoolRepository
	nftRepo        repositories.NftRepository
	ledger         repositories.TokenLedger
	uow            repositories.UnitOfWork
	clock          clockwork.Clock
}

// NewSwapUsecase creates a new swap usecase
func NewSwapUsecase(
	platformRepo repositories.PlatformConfigRepository,
	projectRepo repositories.ProjectRepository,
	collectionRepo repositories.CollectionRepository,
	poolRepo repositories.LiquidityPoolRepository,
	nftRepo repositories.NftRepository,
	ledger repositories.TokenLedger,
	uow repositories.UnitOfWork,
	clock clockwork.Clock,
) *SwapUsecase {
	return &SwapUsecase{
		platformRepo:   platformRepo,
		projectRepo:    projectRepo,
		collectionRepo: collectionRepo,
		poolRepo:       poolRepo,
		nftRepo:        nftRepo,
		ledger:         ledger,
		uow:            uow,
		clock:          clock,
	}
}

// SwapTokenForNftInput carries the caller-validated swap parameters
type SwapTokenForNftInput struct {
	ProjectID       string
	CollectionID    string
	TokenAmount     uint64
	DiscountPercent null.Uint16
	CooldownPeriod  null.Int64
}

// SwapTokenForNft takes the (optionally discounted) token amount from the
// caller into the pool, distributes fees, and mints the NFT record.
// Requires a fresh oracle price.
func (u *SwapUsecase) SwapTokenForNft(ctx context.Context, caller string, in SwapTokenForNftInput) (*entities.NftData, error) {
	project, err := u.projectRepo.GetByProjectID(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if !project.IsActive {
		return nil, domainerrors.ErrProjectInactive
	}

	collection, err := u.collectionRepo.GetByCollectionID(ctx, project.ID, in.CollectionID)
	if err != nil {
		return nil, err
	}
	if !collection.TokenMint.Valid || collection.TokenMint.String == "" {
		return nil, domainerrors.ErrInvalidInput
	}
	tokenMint := collection.TokenMint.String

	pool, err := u.poolRepo.GetByProjectID(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now().Unix()
	if err := CheckFresh(pool, now); err != nil {
		return nil, err
	}

	discounted := in.TokenAmount
	if in.DiscountPercent.Valid {
		if in.DiscountPercent.Uint16 > 100 {
			return nil, domainerrors.ErrInvalidDiscount
		}
		discounted, err = mulDiv(in.TokenAmount, uint64(100-in.DiscountPercent.Uint16), 100)
		if err != nil {
			return nil, err
		}
	}

	balance, err := u.ledger.Balance(ctx, caller, tokenMint)
	if err != nil {
		return nil, err
	}
	if balance < discounted {
		return nil, domainerrors.ErrInsufficientTokenAmount
	}

	var cooldownEnd null.Int64
	if in.CooldownPeriod.Valid {
		if in.CooldownPeriod.Int64 <= 0 {
			return nil, domainerrors.ErrInvalidCooldownPeriod
		}
		if in.DiscountPercent.Valid {
			cooldownEnd = null.Int64From(now + in.CooldownPeriod.Int64)
		}
	}

	platform, err := u.platformRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	fees, err := SplitSwapFees(discounted, platform.PlatformFeeBps, project.RoyaltyBps, project.HasRoyaltyWallet())
	if err != nil {
		return nil, err
	}

	mintAddress, err := newMintAddress()
	if err != nil {
		return nil, err
	}
	id, err := utils.GenerateUUIDv7()
	if err != nil {
		return nil, err
	}
	nft := &entities.NftData{
		ID:              id,
		Owner:           caller,
		CollectionID:    collection.ID,
		Mint:            mintAddress,
		MetadataURI:     collection.MetadataURI,
		MintedAt:        now,
		CooldownEndTs:   cooldownEnd,
		DiscountPercent: in.DiscountPercent,
	}

	custody := pool.CustodyAuthority()
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.ledger.Transfer(txCtx, caller, custody, tokenMint, caller, discounted); err != nil {
			return err
		}
		if fees.PlatformFee > 0 {
			if err := u.ledger.Transfer(txCtx, custody, platform.PlatformTreasury, tokenMint, custody, fees.PlatformFee); err != nil {
				return err
			}
		}
		if fees.ProjectFee > 0 {
			if err := u.ledger.Transfer(txCtx, custody, project.ProjectTreasury, tokenMint, custody, fees.ProjectFee); err != nil {
				return err
			}
		}
		if fees.RoyaltyFee > 0 {
			if err := u.ledger.Transfer(txCtx, custody, project.RoyaltyWallet.String, tokenMint, custody, fees.RoyaltyFee); err != nil {
				return err
			}
		}

		if err := u.nftRepo.Create(txCtx, nft); err != nil {
			return err
		}

		pool.LastActivity = now
		if err := u.poolRepo.Update(txCtx, pool); err != nil {
			return err
		}
		project.LastActivityTs = now
		return u.projectRepo.Update(txCtx, project)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "token swapped for nft")
	return nft, nil
}

// RedeemNftForToken burns the NFT record and pays the fixed redemption unit
// out of the pool to the owner. Requires a fresh price and an elapsed
// cooldown.
func (u *SwapUsecase) RedeemNftForToken(ctx context.Context, caller, nftMint string) (uint64, error) {
	nft, err := u.nftRepo.GetByMint(ctx, nftMint)
	if err != nil {
		return 0, err
	}
	if nft.Owner != caller {
		return 0, domainerrors.ErrNotNftOwner
	}

	collection, err := u.collectionRepo.GetByID(ctx, nft.CollectionID)
	if err != nil {
		return 0, err
	}
	project, err := u.projectRepo.GetByID(ctx, collection.ProjectID)
	if err != nil {
		return 0, err
	}
	pool, err := u.poolRepo.GetByProjectID(ctx, project.ID)
	if err != nil {
		return 0, err
	}

	now := u.clock.Now().Unix()
	if err := CheckFresh(pool, now); err != nil {
		return 0, err
	}
	if nft.RemainingCooldown(now) > 0 {
		return 0, domainerrors.ErrNftInCooldown
	}

	custody := pool.CustodyAuthority()
	balance, err := u.ledger.Balance(ctx, custody, pool.TokenMint)
	if err != nil {
		return 0, err
	}
	if balance < RedemptionUnit {
		return 0, domainerrors.ErrInsufficientPoolFunds
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.ledger.Transfer(txCtx, custody, caller, pool.TokenMint, custody, RedemptionUnit); err != nil {
			return err
		}
		if err := u.nftRepo.Delete(txCtx, nftMint); err != nil {
			return err
		}

		pool.LastActivity = now
		if err := u.poolRepo.Update(txCtx, pool); err != nil {
			return err
		}
		project.LastActivityTs = now
		return u.projectRepo.Update(txCtx, project)
	})
	if err != nil {
		return 0, err
	}

	logger.Info(ctx, "nft redeemed for tokens")
	return RedemptionUnit, nil
}

// GetRemainingCooldown returns the seconds left before the NFT can be
// redeemed, zero when none.
func (u *SwapUsecase) GetRemainingCooldown(ctx context.Context, nftMint string) (int64, error) {
	nft, err := u.nftRepo.GetByMint(ctx, nftMint)
	if err != nil {
		return 0, err
	}
	return nft.RemainingCooldown(u.clock.Now().Unix()), nil
}
