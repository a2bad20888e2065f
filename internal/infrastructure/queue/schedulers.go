package queue

import (
	"time"

	"github.com/hibiken/asynq"

	"cuadros-neon-backend/internal/domains/catalog/job"
	"cuadros-neon-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddress string) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{scheduler: scheduler}
}

func (s *Scheduler) RegisterCatalogJobs() error {
	return s.registerImageRefreshJob()
}

// ================================================
// Image reference refresh (daily at 4 AM)
// ================================================
// Los documentos legacy traen paths locales en vez de keys del bucket;
// la pasada diaria los deja normalizados para el resolver.
func (s *Scheduler) registerImageRefreshJob() error {
	task := job.NewImageRefreshTask()

	_, err := s.scheduler.Register(
		"0 4 * * *", // Daily at 4 AM
		task,
	)
	if err != nil {
		logger.Error("Failed to register ImageRefresh job", err)
		return err
	}

	logger.Info("✓ Registered ImageRefresh: daily at 4 AM", map[string]interface{}{})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
