package usecases

import (
	"context"
	"errors"

	"github.com/jonboulle/clockwork"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/repositories"
	"github.com/JupiterRain123/nft-fusion-marketplace/pkg/logger"
	"github.com/JupiterRain123/nft-fusion-marketplace/pkg/utils"
)

// PoolUsecase handles liquidity pool lifecycle
type PoolUsecase struct {
	platformRepo repositories.PlatformConfigRepository
	projectRepo  repositories.ProjectRepository
	poolRepo     repositories.LiquidityPoolRepository
	ledger       repositories.TokenLedger
	uow          repositories.UnitOfWork
	clock        clockwork.Clock
}

// NewPoolUsecase creates a new pool usecase
func NewPoolUsecase(
	platformRepo repositories.PlatformConfigRepository,
	projectRepo repositories.ProjectRepository,
	poolRepo repositories.LiquidityPoolRepository,
	ledger repositories.TokenLedger,
	uow repositories.UnitOfWork,
	clock clockwork.Clock,
) *PoolUsecase {
	return &PoolUsecase{
		platformRepo: platformRepo,
		projectRepo:  projectRepo,
		poolRepo:     poolRepo,
		ledger:       ledger,
		uow:          uow,
		clock:        clock,
	}
}

// SetupLiquidityPool creates the project's pool, its custody account, and
// seeds it with initial liquidity from the caller's balance. Only the
// project authority may do this, and only once per project.
func (u *PoolUsecase) SetupLiquidityPool(ctx context.Context, caller, projectID, tokenMint string, initialLiquidity uint64) (*entities.LiquidityPool, error) {
	project, err := u.projectRepo.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.Authority != caller {
		return nil, domainerrors.ErrUnauthorized
	}
	if !project.IsActive {
		return nil, domainerrors.ErrProjectInactive
	}

	if _, err := u.poolRepo.GetByProjectID(ctx, project.ID); err == nil {
		return nil, domainerrors.ErrAlreadyExists
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	id, err := utils.GenerateUUIDv7()
	if err != nil {
		return nil, err
	}

	now := u.clock.Now().Unix()
	pool := &entities.LiquidityPool{
		ID:               id,
		ProjectID:        project.ID,
		TokenMint:        tokenMint,
		RedemptionLocked: true,
		PriceSource:      entities.PriceSourceNone,
		LastActivity:     now,
	}
	pool.LpTokenAccount = pool.CustodyAuthority()

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.poolRepo.Create(txCtx, pool); err != nil {
			return err
		}
		if err := u.ledger.EnsureAccount(txCtx, pool.CustodyAuthority(), tokenMint); err != nil {
			return err
		}
		if initialLiquidity > 0 {
			if err := u.ledger.Transfer(txCtx, caller, pool.CustodyAuthority(), tokenMint, caller, initialLiquidity); err != nil {
				return err
			}
		}
		project.LastActivityTs = now
		return u.projectRepo.Update(txCtx, project)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "liquidity pool created")
	return pool, nil
}

// CheckLpInactivity reclaims an abandoned pool. Only the platform authority
// may call it; unless the pool has been silent for the full inactivity
// window it fails, otherwise the custody balance is swept to the platform
// treasury and the project is deactivated.
func (u *PoolUsecase) CheckLpInactivity(ctx context.Context, caller, projectID string) (uint64, error) {
	platform, err := u.platformRepo.Get(ctx)
	if err != nil {
		return 0, err
	}
	if platform.Authority != caller {
		return 0, domainerrors.ErrUnauthorized
	}

	project, err := u.projectRepo.GetByProjectID(ctx, projectID)
	if err != nil {
		return 0, err
	}
	pool, err := u.poolRepo.GetByProjectID(ctx, project.ID)
	if err != nil {
		return 0, err
	}

	now := u.clock.Now().Unix()
	if now-pool.LastActivity < PoolInactivityWindow {
		return 0, domainerrors.ErrPoolNotInactive
	}

	balance, err := u.ledger.Balance(ctx, pool.CustodyAuthority(), pool.TokenMint)
	if err != nil {
		return 0, err
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if balance > 0 {
			if err := u.ledger.Transfer(txCtx, pool.CustodyAuthority(), platform.PlatformTreasury, pool.TokenMint, pool.CustodyAuthority(), balance); err != nil {
				return err
			}
		}
		project.IsActive = false
		return u.projectRepo.Update(txCtx, project)
	})
	if err != nil {
		return 0, err
	}

	logger.Info(ctx, "inactive pool reclaimed")
	return balance, nil
}
