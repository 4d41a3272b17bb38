package application

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	log "github.com/sirupsen/logrus"
)

// Scheduler runs the bot's periodic jobs
type Scheduler struct {
	sched gocron.Scheduler
}

// NewScheduler creates a scheduler; jobs are added with Every and run once Start is called
func NewScheduler() (*Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &Scheduler{sched: sched}, nil
}

// Every registers task to run at the given interval, starting immediately.
// Runs of the same job never overlap.
func (s *Scheduler) Every(ctx context.Context, name string, interval time.Duration, task func(ctx context.Context)) error {
	_, err := s.sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				return
			}
			task(ctx)
		}),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule %s: %w", name, err)
	}
	log.WithFields(log.Fields{
		"job":      name,
		"interval": interval,
	}).Info("Scheduled job")
	return nil
}

// Start begins running jobs and returns the cleanup function
func (s *Scheduler) Start() func() {
	s.sched.Start()
	return func() {
		if err := s.sched.Shutdown(); err != nil {
			log.Errorf("Error shutting down scheduler: %v", err)
		}
	}
}
