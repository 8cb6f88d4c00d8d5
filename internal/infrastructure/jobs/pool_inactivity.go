package jobs

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
)

// inactivitySweeper reclaims a single project's abandoned pool
type inactivitySweeper interface {
	CheckLpInactivity(ctx context.Context, caller, projectID string) (uint64, error)
}

// activeProjectLister enumerates projects still marked active
type activeProjectLister interface {
	ListActive(ctx context.Context) ([]*entities.Project, error)
}

// PoolInactivityJob periodically sweeps abandoned liquidity pools back to
// the platform treasury under the platform authority.
type PoolInactivityJob struct {
	sweeper   inactivitySweeper
	projects  activeProjectLister
	authority string
	interval  time.Duration
	stop      chan struct{}
}

func NewPoolInactivityJob(sweeper inactivitySweeper, projects activeProjectLister, authority string, interval time.Duration) *PoolInactivityJob {
	if interval <= 0 {
		interval = time.Hour
	}
	return &PoolInactivityJob{
		sweeper:   sweeper,
		projects:  projects,
		authority: authority,
		interval:  interval,
		stop:      make(chan struct{}),
	}
}

func (j *PoolInactivityJob) Start(ctx context.Context) {
	log.Println("🕐 Starting pool inactivity job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Pool inactivity job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Pool inactivity job stopped")
			return
		case <-ticker.C:
			j.sweepInactivePools(ctx)
		}
	}
}

func (j *PoolInactivityJob) Stop() {
	close(j.stop)
}

func (j *PoolInactivityJob) sweepInactivePools(ctx context.Context) {
	projects, err := j.projects.ListActive(ctx)
	if err != nil {
		log.Printf("❌ Error listing active projects: %v", err)
		return
	}

	for _, project := range projects {
		reclaimed, err := j.sweeper.CheckLpInactivity(ctx, j.authority, project.ProjectID)
		if err != nil {
			// Pools inside their activity window are expected; anything
			// without a pool yet is skipped too.
			if errors.Is(err, domainerrors.ErrPoolNotInactive) || errors.Is(err, domainerrors.ErrNotFound) {
				continue
			}
			log.Printf("❌ Error reclaiming pool for project %s: %v", project.ProjectID, err)
			continue
		}
		log.Printf("✅ Reclaimed %d tokens from inactive pool of project %s", reclaimed, project.ProjectID)
	}
}
