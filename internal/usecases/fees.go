package usecases

import (
	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
)

// FeeBreakdown is the result of splitting an amount across the three
// marketplace parties.
type FeeBreakdown struct {
	PlatformFee uint64
	ProjectFee  uint64
	RoyaltyFee  uint64
}

// SplitSwapFees splits a swap payment. Platform and royalty take their
// basis-point cuts and the project treasury receives the entire remainder,
// so the three fees always sum exactly to the input amount.
func SplitSwapFees(amount uint64, platformBps, royaltyBps uint16, hasRoyaltyWallet bool) (FeeBreakdown, error) {
	if platformBps >= MaxBps || royaltyBps >= MaxBps || platformBps+royaltyBps > MaxBps {
		return FeeBreakdown{}, domainerrors.ErrInvalidFeePercentage
	}

	platformFee, err := mulDiv(amount, uint64(platformBps), uint64(MaxBps))
	if err != nil {
		return FeeBreakdown{}, err
	}

	var royaltyFee uint64
	if hasRoyaltyWallet {
		royaltyFee, err = mulDiv(amount, uint64(royaltyBps), uint64(MaxBps))
		if err != nil {
			return FeeBreakdown{}, err
		}
	}

	rest, err := checkedSub(amount, platformFee)
	if err != nil {
		return FeeBreakdown{}, err
	}
	projectFee, err := checkedSub(rest, royaltyFee)
	if err != nil {
		return FeeBreakdown{}, err
	}

	return FeeBreakdown{
		PlatformFee: platformFee,
		ProjectFee:  projectFee,
		RoyaltyFee:  royaltyFee,
	}, nil
}

// SplitRedemptionFees splits an escrow redemption. The platform takes its
// basis-point cut and the project receives half of the non-platform,
// non-royalty remainder; the rest stays with the redeeming owner. The
// halving happens on the basis points before multiplying, matching the
// redemption flow's historical rounding.
func SplitRedemptionFees(amount uint64, platformBps, royaltyBps uint16) (FeeBreakdown, error) {
	if platformBps >= MaxBps || royaltyBps >= MaxBps || platformBps+royaltyBps > MaxBps {
		return FeeBreakdown{}, domainerrors.ErrInvalidFeePercentage
	}

	platformFee, err := mulDiv(amount, uint64(platformBps), uint64(MaxBps))
	if err != nil {
		return FeeBreakdown{}, err
	}

	projectBps := (MaxBps - platformBps - royaltyBps) / 2
	projectFee, err := mulDiv(amount, uint64(projectBps), uint64(MaxBps))
	if err != nil {
		return FeeBreakdown{}, err
	}

	return FeeBreakdown{
		PlatformFee: platformFee,
		ProjectFee:  projectFee,
	}, nil
}

// Total returns the sum of all fees in the breakdown
func (f FeeBreakdown) Total() (uint64, error) {
	sum, err := checkedAdd(f.PlatformFee, f.ProjectFee)
	if err != nil {
		return 0, err
	}
	return checkedAdd(sum, f.RoyaltyFee)
}
