package usecases

import (
	"context"
	"errors"

	"github.com/jonboulle/clockwork"
	"github.com/volatiletech/null/v8"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/repositories"
	"github.com/JupiterRain123/nft-fusion-marketplace/pkg/logger"
	"github.com/JupiterRain123/nft-fusion-marketplace/pkg/utils"
)

// EscrowUsecase handles token escrow creation, early close, and redemption
type EscrowUsecase struct {
	platformRepo   repositories.PlatformConfigRepository
	projectRepo    repositories.ProjectRepository
	collectionRepo repositories.CollectionRepository
	nftRepo        repositories.NftRepository
	escrowRepo     repositories.TokenEscrowRepository
	ledger         repositories.TokenLedger
	uow            repositories.UnitOfWork
	clock          clockwork.Clock
}

// NewEscrowUsecase creates a new escrow usecase
func NewEscrowUsecase(
	platformRepo repositories.PlatformConfigRepository,
	projectRepo repositories.ProjectRepository,
	collectionRepo repositories.CollectionRepository,
	nftRepo repositories.NftRepository,
	escrowRepo repositories.TokenEscrowRepository,
	ledger repositories.TokenLedger,
	uow repositories.UnitOfWork,
	clock clockwork.Clock,
) *EscrowUsecase {
	return &EscrowUsecase{
		platformRepo:   platformRepo,
		projectRepo:    projectRepo,
		collectionRepo: collectionRepo,
		nftRepo:        nftRepo,
		escrowRepo:     escrowRepo,
		ledger:         ledger,
		uow:            uow,
		clock:          clock,
	}
}

// CreateTokenEscrowInput carries the caller-validated escrow parameters
type CreateTokenEscrowInput struct {
	NftMint         string
	TokenMint       string
	TokenAmount     uint64
	VestingPeriod   null.Int64
	DiscountPercent null.Uint16
}

// CreateTokenEscrow locks the caller's tokens against an NFT. The escrow's
// own derived authority takes custody; at most one active escrow exists per
// mint.
func (u *EscrowUsecase) CreateTokenEscrow(ctx context.Context, caller string, in CreateTokenEscrowInput) (*entities.TokenEscrow, error) {
	if in.TokenAmount == 0 {
		return nil, domainerrors.ErrTokenPriceTooLow
	}
	if in.DiscountPercent.Valid && in.DiscountPercent.Uint16 > 100 {
		return nil, domainerrors.ErrInvalidDiscount
	}

	nft, err := u.nftRepo.GetByMint(ctx, in.NftMint)
	if err != nil {
		return nil, err
	}
	if nft.Owner != caller {
		return nil, domainerrors.ErrNotNftOwner
	}

	if _, err := u.escrowRepo.GetByNftMint(ctx, in.NftMint); err == nil {
		return nil, domainerrors.ErrAlreadyExists
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	now := u.clock.Now().Unix()
	var vestingEnd null.Int64
	if in.VestingPeriod.Valid {
		if in.VestingPeriod.Int64 <= 0 {
			return nil, domainerrors.ErrInvalidVestingPeriod
		}
		vestingEnd = null.Int64From(now + in.VestingPeriod.Int64)
	}

	id, err := utils.GenerateUUIDv7()
	if err != nil {
		return nil, err
	}
	escrow := &entities.TokenEscrow{
		ID:              id,
		Owner:           caller,
		NftMint:         in.NftMint,
		TokenMint:       in.TokenMint,
		TokenAmount:     in.TokenAmount,
		DiscountPercent: in.DiscountPercent,
		VestingEndTs:    vestingEnd,
		IsActive:        true,
	}
	escrow.EscrowTokenAccount = escrow.CustodyAuthority()

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.escrowRepo.Create(txCtx, escrow); err != nil {
			return err
		}
		if err := u.ledger.EnsureAccount(txCtx, escrow.CustodyAuthority(), in.TokenMint); err != nil {
			return err
		}
		return u.ledger.Transfer(txCtx, caller, escrow.CustodyAuthority(), in.TokenMint, caller, in.TokenAmount)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "token escrow created")
	return escrow, nil
}

// CloseTokenEscrow returns the full custody balance to the owner and
// destroys the escrow record. Only the original owner may close, and only
// once vesting (if any) has completed.
func (u *EscrowUsecase) CloseTokenEscrow(ctx context.Context, caller, nftMint string) (uint64, error) {
	escrow, err := u.escrowRepo.GetByNftMint(ctx, nftMint)
	if err != nil {
		return 0, err
	}
	if escrow.Owner != caller {
		return 0, domainerrors.ErrUnauthorized
	}
	if !escrow.IsActive {
		return 0, domainerrors.ErrEscrowNotActive
	}
	if !escrow.VestingComplete(u.clock.Now().Unix()) {
		return 0, domainerrors.ErrVestingPeriodActive
	}

	balance, err := u.ledger.Balance(ctx, escrow.CustodyAuthority(), escrow.TokenMint)
	if err != nil {
		return 0, err
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if balance > 0 {
			if err := u.ledger.Transfer(txCtx, escrow.CustodyAuthority(), escrow.Owner, escrow.TokenMint, escrow.CustodyAuthority(), balance); err != nil {
				return err
			}
		}
		return u.escrowRepo.Delete(txCtx, nftMint)
	})
	if err != nil {
		return 0, err
	}

	logger.Info(ctx, "token escrow closed")
	return balance, nil
}

// RedeemEscrowToken pays the escrowed amount out to the owner minus the
// platform and project cuts, marks the escrow inactive, and hands the NFT
// record to the project as a redemption marker.
func (u *EscrowUsecase) RedeemEscrowToken(ctx context.Context, caller, nftMint string) (*FeeBreakdown, uint64, error) {
	escrow, err := u.escrowRepo.GetByNftMint(ctx, nftMint)
	if err != nil {
		return nil, 0, err
	}
	if !escrow.IsActive {
		return nil, 0, domainerrors.ErrEscrowNotActive
	}
	if escrow.Owner != caller {
		return nil, 0, domainerrors.ErrUnauthorized
	}
	if !escrow.VestingComplete(u.clock.Now().Unix()) {
		return nil, 0, domainerrors.ErrVestingPeriodActive
	}

	nft, err := u.nftRepo.GetByMint(ctx, nftMint)
	if err != nil {
		return nil, 0, err
	}
	collection, err := u.collectionRepo.GetByID(ctx, nft.CollectionID)
	if err != nil {
		return nil, 0, err
	}
	project, err := u.projectRepo.GetByID(ctx, collection.ProjectID)
	if err != nil {
		return nil, 0, err
	}
	platform, err := u.platformRepo.Get(ctx)
	if err != nil {
		return nil, 0, err
	}

	fees, err := SplitRedemptionFees(escrow.TokenAmount, platform.PlatformFeeBps, project.RoyaltyBps)
	if err != nil {
		return nil, 0, err
	}
	totalFees, err := fees.Total()
	if err != nil {
		return nil, 0, err
	}
	ownerAmount, err := checkedSub(escrow.TokenAmount, totalFees)
	if err != nil {
		return nil, 0, err
	}

	custody := escrow.CustodyAuthority()
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if ownerAmount > 0 {
			if err := u.ledger.Transfer(txCtx, custody, escrow.Owner, escrow.TokenMint, custody, ownerAmount); err != nil {
				return err
			}
		}
		if fees.PlatformFee > 0 {
			if err := u.ledger.Transfer(txCtx, custody, platform.PlatformTreasury, escrow.TokenMint, custody, fees.PlatformFee); err != nil {
				return err
			}
		}
		if fees.ProjectFee > 0 {
			if err := u.ledger.Transfer(txCtx, custody, project.ProjectTreasury, escrow.TokenMint, custody, fees.ProjectFee); err != nil {
				return err
			}
		}

		escrow.IsActive = false
		if err := u.escrowRepo.Update(txCtx, escrow); err != nil {
			return err
		}

		nft.Owner = "project/" + project.ProjectID
		return u.nftRepo.Update(txCtx, nft)
	})
	if err != nil {
		return nil, 0, err
	}

	logger.Info(ctx, "escrow redeemed for tokens")
	return &fees, ownerAmount, nil
}
