package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"brandscope/api/internal/metrics"
	"brandscope/api/internal/repository"
)

// Scheduler periodically snapshots the in-memory stores: gauges for
// Prometheus, one log line for anyone tailing the dev server.
type Scheduler struct {
	cron     *cron.Cron
	schedule string
	users    *repository.UserRepository
	sessions *repository.SessionRepository
	projects *repository.ProjectRepository
	stats    *metrics.Collector
	log      zerolog.Logger
}

func NewScheduler(
	schedule string,
	users *repository.UserRepository,
	sessions *repository.SessionRepository,
	projects *repository.ProjectRepository,
	stats *metrics.Collector,
	log zerolog.Logger,
) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		users:    users,
		sessions: sessions,
		projects: projects,
		stats:    stats,
		log:      log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.snapshotStores); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop waits briefly for any running job to finish.
func (s *Scheduler) Stop() {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-time.After(5 * time.Second):
	}
}

func (s *Scheduler) snapshotStores() {
	ctx := context.Background()
	users := s.users.Count(ctx)
	sessions := s.sessions.Count(ctx)
	projects := s.projects.Count(ctx)

	s.stats.SetStoreSizes(users, sessions, projects)
	s.log.Debug().
		Int("users", users).
		Int("sessions", sessions).
		Int("projects", projects).
		Msg("store snapshot")
}
