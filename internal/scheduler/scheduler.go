// Package scheduler runs recurring jobs aligned to wall-clock boundaries in a fixed location.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type Cadence int

const (
	// Hourly fires at minute 0 of every hour.
	Hourly Cadence = iota
	// Daily fires at midnight.
	Daily
)

type Job struct {
	Name    string
	Cadence Cadence
	Run     func(ctx context.Context) error
}

type Scheduler struct {
	jobs     []Job
	loc      *time.Location
	log      *slog.Logger
	now      func() time.Time
	stopChan chan struct{}
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	mu       sync.Mutex
	running  bool
}

func New(loc *time.Location, log *slog.Logger, jobs ...Job) *Scheduler {
	return &Scheduler{
		jobs: jobs,
		loc:  loc,
		log:  log,
		now:  time.Now,
	}
}

// Start launches one loop per job. Each job runs sequentially, so a slow run delays its own next
// tick but never overlaps with itself.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.stopChan = make(chan struct{})

	var ctx context.Context
	ctx, s.cancel = context.WithCancel(context.Background())

	s.log.Info("scheduler starting", "jobs", len(s.jobs))
	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.loop(ctx, job)
	}
}

// Stop cancels running jobs and waits for every loop to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopChan)
	s.cancel()
	s.mu.Unlock()

	s.wg.Wait()
	s.log.Info("scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context, job Job) {
	defer s.wg.Done()

	for {
		next := Next(job.Cadence, s.now(), s.loc)
		s.log.Debug("next run", "job", job.Name, "at", next.Format(time.DateTime))

		timer := time.NewTimer(next.Sub(s.now()))
		select {
		case <-timer.C:
			s.run(ctx, job)
		case <-s.stopChan:
			timer.Stop()
			return
		}
	}
}

func (s *Scheduler) run(ctx context.Context, job Job) {
	start := time.Now()
	if err := job.Run(ctx); err != nil {
		s.log.Error("job failed", "job", job.Name, "error", err)
		return
	}
	s.log.Debug("job finished", "job", job.Name, "took", time.Since(start).Round(time.Millisecond))
}

// Next returns the first boundary of cadence strictly after now, in loc.
func Next(cadence Cadence, now time.Time, loc *time.Location) time.Time {
	now = now.In(loc)
	switch cadence {
	case Daily:
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
		return midnight.AddDate(0, 0, 1)
	default:
		hour := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, loc)
		return hour.Add(time.Hour)
	}
}
