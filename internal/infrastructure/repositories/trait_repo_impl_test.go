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

func TestTraitTypeRepository_CreateGetUpdate(t *testing.T) {
	db := newTestDB(t)
	createTraitTables(t, db)
	repo := NewTraitTypeRepository(db)
	ctx := context.Background()

	collection := uuid.New()
	tt := &entities.TraitType{
		ID:           uuid.New(),
		CollectionID: collection,
		Name:         "Background",
		IsRequired:   true,
		Position:     0,
		Values: []entities.TraitValue{
			{Name: "Blue", URIPostfix: "bg-blue", RarityWeight: 100},
			{Name: "Gold", URIPostfix: "bg-gold", RarityWeight: 10, AvailableSupply: null.Uint32From(50)},
		},
	}
	require.NoError(t, repo.Create(ctx, tt))

	got, err := repo.GetByName(ctx, collection, "Background")
	require.NoError(t, err)
	require.Len(t, got.Values, 2)
	require.Equal(t, uint16(10), got.Values[1].RarityWeight)
	require.True(t, got.Values[1].AvailableSupply.Valid)
	require.True(t, got.Values[1].HasRemainingSupply())

	got.Values[1].UsedSupply = 50
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.GetByName(ctx, collection, "Background")
	require.NoError(t, err)
	require.False(t, updated.Values[1].HasRemainingSupply())
}

func TestTraitTypeRepository_ListByCollectionOrder(t *testing.T) {
	db := newTestDB(t)
	createTraitTables(t, db)
	repo := NewTraitTypeRepository(db)
	ctx := context.Background()

	collection := uuid.New()
	for i, name := range []string{"Eyes", "Background", "Hat"} {
		tt := &entities.TraitType{
			ID:           uuid.New(),
			CollectionID: collection,
			Name:         name,
			Position:     2 - i,
			Values:       []entities.TraitValue{{Name: "v", RarityWeight: 1}},
		}
		require.NoError(t, repo.Create(ctx, tt))
	}

	traitTypes, err := repo.ListByCollection(ctx, collection)
	require.NoError(t, err)
	require.Len(t, traitTypes, 3)
	require.Equal(t, "Hat", traitTypes[0].Name)
	require.Equal(t, "Background", traitTypes[1].Name)
	require.Equal(t, "Eyes", traitTypes[2].Name)
}

func TestTraitTypeRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	createTraitTables(t, db)
	repo := NewTraitTypeRepository(db)
	ctx := context.Background()

	_, err := repo.GetByName(ctx, uuid.New(), "missing")
	require.ErrorIs(t, err, domainerrors.ErrTraitTypeNotFound)
}

func TestCollectionTraitConfigRepository_CreateGetUpdate(t *testing.T) {
	db := newTestDB(t)
	createTraitTables(t, db)
	repo := NewCollectionTraitConfigRepository(db)
	ctx := context.Background()

	collection := uuid.New()
	cfg := &entities.CollectionTraitConfig{
		ID:                    uuid.New(),
		CollectionID:          collection,
		BaseURI:               "https://example.com/meta",
		AutoGenerationEnabled: true,
		MetadataFormat:        entities.MetadataFormatStandardJson,
	}
	require.NoError(t, repo.Create(ctx, cfg))

	got, err := repo.GetByCollection(ctx, collection)
	require.NoError(t, err)
	require.Equal(t, entities.MetadataFormatStandardJson, got.MetadataFormat)
	require.True(t, got.AutoGenerationEnabled)

	got.AutoGenerationEnabled = false
	got.MetadataFormat = entities.MetadataFormatCustom
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.GetByCollection(ctx, collection)
	require.NoError(t, err)
	require.False(t, updated.AutoGenerationEnabled)
	require.Equal(t, entities.MetadataFormatCustom, updated.MetadataFormat)
}

func TestNftTraitsRepository_CreateGet(t *testing.T) {
	db := newTestDB(t)
	createTraitTables(t, db)
	repo := NewNftTraitsRepository(db)
	ctx := context.Background()

	seed := make([]byte, 32)
	seed[0] = 7
	traits := &entities.NftTraits{
		ID:           uuid.New(),
		NftMint:      "nft-mint-1",
		CollectionID: uuid.New(),
		Traits: []entities.SelectedTrait{
			{TraitType: "Background", TraitValue: "Blue"},
			{TraitType: "Eyes", TraitValue: "Laser"},
		},
		IsAutoGenerated: true,
		GenerationSeed:  seed,
	}
	require.NoError(t, repo.Create(ctx, traits))

	got, err := repo.GetByNftMint(ctx, "nft-mint-1")
	require.NoError(t, err)
	require.Len(t, got.Traits, 2)
	require.Equal(t, "Laser", got.Traits[1].TraitValue)
	require.Equal(t, seed, got.GenerationSeed)
	require.True(t, got.IsAutoGenerated)

	_, err = repo.GetByNftMint(ctx, "missing")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
