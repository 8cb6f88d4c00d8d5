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

// projectRepo implements repositories.ProjectRepository
type projectRepo struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) repositories.ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, project *entities.Project) error {
	db := GetDB(ctx, r.db)

	m := toProjectModel(project)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	project.CreatedAt = m.CreatedAt
	project.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *projectRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	db := GetDB(ctx, r.db)

	var m models.Project
	if err := db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toProjectEntity(&m), nil
}

func (r *projectRepo) GetByProjectID(ctx context.Context, projectID string) (*entities.Project, error) {
	db := GetDB(ctx, r.db)

	var m models.Project
	if err := db.WithContext(ctx).Where("project_id = ?", projectID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toProjectEntity(&m), nil
}

func (r *projectRepo) ListActive(ctx context.Context) ([]*entities.Project, error) {
	db := GetDB(ctx, r.db)

	var ms []models.Project
	if err := db.WithContext(ctx).Where("is_active = ?", true).Find(&ms).Error; err != nil {
		return nil, err
	}

	projects := make([]*entities.Project, 0, len(ms))
	for i := range ms {
		projects = append(projects, toProjectEntity(&ms[i]))
	}
	return projects, nil
}

func (r *projectRepo) Update(ctx context.Context, project *entities.Project) error {
	db := GetDB(ctx, r.db)

	res := db.WithContext(ctx).Model(&models.Project{}).
		Where("id = ?", project.ID).
		Updates(map[string]interface{}{
			"project_treasury": project.ProjectTreasury,
			"royalty_wallet":   project.RoyaltyWallet.Ptr(),
			"royalty_bps":      project.RoyaltyBps,
			"last_activity_ts": project.LastActivityTs,
			"is_active":        project.IsActive,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toProjectModel(e *entities.Project) *models.Project {
	return &models.Project{
		ID:              e.ID,
		Authority:       e.Authority,
		ProjectID:       e.ProjectID,
		ProjectTreasury: e.ProjectTreasury,
		RoyaltyWallet:   e.RoyaltyWallet.Ptr(),
		RoyaltyBps:      e.RoyaltyBps,
		LastActivityTs:  e.LastActivityTs,
		IsActive:        e.IsActive,
	}
}

func toProjectEntity(m *models.Project) *entities.Project {
	return &entities.Project{
		ID:              m.ID,
		Authority:       m.Authority,
		ProjectID:       m.ProjectID,
		ProjectTreasury: m.ProjectTreasury,
		RoyaltyWallet:   null.StringFromPtr(m.RoyaltyWallet),
		RoyaltyBps:      m.RoyaltyBps,
		LastActivityTs:  m.LastActivityTs,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
