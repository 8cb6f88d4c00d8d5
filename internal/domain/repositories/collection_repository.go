package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
)

// CollectionRepository defines collection data operations
type CollectionRepository interface {
	Create(ctx context.Context, collection *entities.Collection) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Collection, error)
	GetByCollectionID(ctx context.Context, projectID uuid.UUID, collectionID string) (*entities.Collection, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*entities.Collection, error)
	Update(ctx context.Context, collection *entities.Collection) error
}
