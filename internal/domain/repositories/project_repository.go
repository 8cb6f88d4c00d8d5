package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
)

// ProjectRepository defines project data operations
type ProjectRepository interface {
	Create(ctx context.Context, project *entities.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Project, error)
	GetByProjectID(ctx context.Context, projectID string) (*entities.Project, error)
	ListActive(ctx context.Context) ([]*entities.Project, error)
	Update(ctx context.Context, project *entities.Project) error
}
