package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
)

func TestNftListingRepository_CreateGetUpdate(t *testing.T) {
	db := newTestDB(t)
	createNftTables(t, db)
	repo := NewNftListingRepository(db)
	ctx := context.Background()

	listing := &entities.NftListing{
		ID:              uuid.New(),
		Owner:           "alice",
		NftMint:         "nft-mint-1",
		Price:           5_000_000_000,
		DiscountPercent: null.Uint16From(10),
		CooldownPeriod:  null.Int64From(3600),
		IsActive:        true,
	}
	require.NoError(t, repo.Create(ctx, listing))

	got, err := repo.GetByNftMint(ctx, "nft-mint-1")
	require.NoError(t, err)
	require.Equal(t, "alice", got.Owner)
	require.Equal(t, uint64(5_000_000_000), got.Price)
	require.Equal(t, uint16(10), got.DiscountPercent.Uint16)
	require.True(t, got.IsActive)

	got.Price = 4_000_000_000
	got.DiscountPercent = null.Uint16{}
	got.IsActive = false
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.GetByNftMint(ctx, "nft-mint-1")
	require.NoError(t, err)
	require.Equal(t, uint64(4_000_000_000), updated.Price)
	require.False(t, updated.DiscountPercent.Valid)
	require.False(t, updated.IsActive)
}

func TestNftListingRepository_GetByNftMint_NotFound(t *testing.T) {
	db := newTestDB(t)
	createNftTables(t, db)
	repo := NewNftListingRepository(db)

	_, err := repo.GetByNftMint(context.Background(), "missing")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestNftListingRepository_ListActive(t *testing.T) {
	db := newTestDB(t)
	createNftTables(t, db)
	repo := NewNftListingRepository(db)
	ctx := context.Background()

	for i, mint := range []string{"m1", "m2", "m3"} {
		listing := &entities.NftListing{
			ID:       uuid.New(),
			Owner:    "alice",
			NftMint:  mint,
			Price:    uint64(1_000_000_000 * (i + 1)),
			IsActive: i != 2,
		}
		require.NoError(t, repo.Create(ctx, listing))
	}

	listings, total, err := repo.ListActive(ctx, 10, 0)
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Len(t, listings, 2)
	for _, l := range listings {
		require.True(t, l.IsActive)
		require.NotEqual(t, "m3", l.NftMint)
	}

	page, total, err := repo.ListActive(ctx, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Len(t, page, 1)
}

func TestNftListingRepository_Update_NotFound(t *testing.T) {
	db := newTestDB(t)
	createNftTables(t, db)
	repo := NewNftListingRepository(db)

	err := repo.Update(context.Background(), &entities.NftListing{
		ID:      uuid.New(),
		Owner:   "alice",
		NftMint: "missing",
		Price:   1,
	})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
