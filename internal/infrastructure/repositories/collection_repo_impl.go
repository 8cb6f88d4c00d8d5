package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/repositories"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/infrastructure/models"
)

// collectionRepo implements repositories.CollectionRepository
type collectionRepo struct {
	db *gorm.DB
}

// NewCollectionRepository creates a new collection repository
func NewCollectionRepository(db *gorm.DB) repositories.CollectionRepository {
	return &collectionRepo{db: db}
}

func (r *collectionRepo) Create(ctx context.Context, collection *entities.Collection) error {
	db := GetDB(ctx, r.db)

	m := toCollectionModel(collection)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	collection.CreatedAt = m.CreatedAt
	collection.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *collectionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Collection, error) {
	db := GetDB(ctx, r.db)

	var m models.Collection
	if err := db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toCollectionEntity(&m), nil
}

func (r *collectionRepo) GetByCollectionID(ctx context.Context, projectID uuid.UUID, collectionID string) (*entities.Collection, error) {
	db := GetDB(ctx, r.db)

	var m models.Collection
	err := db.WithContext(ctx).
		Where("project_id = ? AND collection_id = ?", projectID, collectionID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toCollectionEntity(&m), nil
}

func (r *collectionRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*entities.Collection, error) {
	db := GetDB(ctx, r.db)

	var ms []models.Collection
	if err := db.WithContext(ctx).Where("project_id = ?", projectID).Find(&ms).Error; err != nil {
		return nil, err
	}

	collections := make([]*entities.Collection, 0, len(ms))
	for i := range ms {
		collections = append(collections, toCollectionEntity(&ms[i]))
	}
	return collections, nil
}

func (r *collectionRepo) Update(ctx context.Context, collection *entities.Collection) error {
	db := GetDB(ctx, r.db)

	res := db.WithContext(ctx).Model(&models.Collection{}).
		Where("id = ?", collection.ID).
		Updates(map[string]interface{}{
			"metadata_uri":  collection.MetadataURI,
			"token_mint":    collection.TokenMint.Ptr(),
			"is_compressed": collection.IsCompressed,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toCollectionModel(e *entities.Collection) *models.Collection {
	return &models.Collection{
		ID:           e.ID,
		ProjectID:    e.ProjectID,
		CollectionID: e.CollectionID,
		MetadataURI:  e.MetadataURI,
		TokenMint:    e.TokenMint.Ptr(),
		IsCompressed: e.IsCompressed,
	}
}

func toCollectionEntity(m *models.Collection) *entities.Collection {
	return &entities.Collection{
		ID:           m.ID,
		ProjectID:    m.ProjectID,
		CollectionID: m.CollectionID,
		MetadataURI:  m.MetadataURI,
		TokenMint:    null.StringFromPtr(m.TokenMint),
		IsCompressed: m.IsCompressed,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
