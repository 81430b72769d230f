package scheduler

import (
	"context"
	"fmt"

	"FXBridge/internal/model"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Runner executes one batch.
type Runner interface {
	Run(ctx context.Context) (*model.Result, error)
}

// Scheduler re-runs the batch on a cron spec. Scheduled runs and RunNow share
// one job, so runs never overlap.
type Scheduler struct {
	Cron   *cron.Cron
	Runner Runner
	Logger *zap.Logger
	Ctx    context.Context

	job cron.Job
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, runner Runner, lg *zap.Logger) *Scheduler {
	s := &Scheduler{
		Cron:   cron.New(cron.WithSeconds()),
		Runner: runner,
		Logger: lg,
		Ctx:    ctx,
	}
	s.job = cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(cron.FuncJob(s.runTask))
	return s
}

// Register adds the batch under a 6-field cron spec (seconds first).
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddJob(spec, s.job); err != nil {
		return fmt.Errorf("register batch task: %w", err)
	}
	s.Logger.Info("batch task registered", zap.String("cron", spec))
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Logger.Info("scheduler started")
}

// Stop stops the cron scheduler and waits for a running batch to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.Logger.Info("scheduler stopped")
}

// RunNow executes the batch immediately (RUN_ON_START). It is skipped when a
// scheduled run is in progress.
func (s *Scheduler) RunNow() {
	s.job.Run()
}

func (s *Scheduler) runTask() {
	if err := s.Ctx.Err(); err != nil {
		return
	}
	if _, err := s.Runner.Run(s.Ctx); err != nil {
		s.Logger.Error("batch failed", zap.Error(err))
	}
}
