package scheduler

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultTimeout bounds a single job run.
const DefaultTimeout = 10 * time.Minute

// Job is one unit of periodic work.
type Job func(ctx context.Context) error

// Scheduler runs named jobs on cron schedules. A job still running when
// its next tick fires is skipped for that tick.
type Scheduler struct {
	cron    *cron.Cron
	timeout time.Duration

	mu   sync.Mutex
	jobs map[string]cron.EntryID
}

// New creates a scheduler evaluating schedules in the given timezone.
// An empty timezone means UTC.
func New(timezone string) (*Scheduler, error) {
	if timezone == "" {
		timezone = "UTC"
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %s: %w", timezone, err)
	}

	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)),
	)

	return &Scheduler{
		cron:    c,
		timeout: DefaultTimeout,
		jobs:    make(map[string]cron.EntryID),
	}, nil
}

// SetTimeout changes the per-run timeout for jobs added afterwards.
func (s *Scheduler) SetTimeout(d time.Duration) {
	if d > 0 {
		s.timeout = d
	}
}

// AddJob schedules job under name. Standard five-field specs and
// descriptors such as "@every 15m" or "@hourly" are accepted. Adding a
// name twice replaces the earlier schedule.
func (s *Scheduler) AddJob(name, schedule string, job Job) error {
	timeout := s.timeout
	entryID, err := s.cron.AddFunc(schedule, func() {
		if err := s.run(name, timeout, job); err != nil {
			log.Printf("[scheduler] Job %s failed: %v", name, err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule job %s: %w", name, err)
	}

	s.mu.Lock()
	if old, ok := s.jobs[name]; ok {
		s.cron.Remove(old)
	}
	s.jobs[name] = entryID
	s.mu.Unlock()

	log.Printf("[scheduler] Added job: %s (schedule: %s)", name, schedule)
	return nil
}

// AddRefreshJob schedules report recomputation.
func (s *Scheduler) AddRefreshJob(schedule string, job Job) error {
	return s.AddJob("refresh", schedule, job)
}

// RemoveJob removes a scheduled job
func (s *Scheduler) RemoveJob(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entryID, ok := s.jobs[name]; ok {
		s.cron.Remove(entryID)
		delete(s.jobs, name)
		log.Printf("[scheduler] Removed job: %s", name)
	}
}

// Start begins running scheduled jobs
func (s *Scheduler) Start() {
	log.Println("[scheduler] Starting scheduler")
	s.cron.Start()
}

// Stop halts the scheduler. The returned context is done once running
// jobs have finished.
func (s *Scheduler) Stop() context.Context {
	log.Println("[scheduler] Stopping scheduler")
	return s.cron.Stop()
}

// RunNow executes job immediately, outside the schedule.
func (s *Scheduler) RunNow(name string, job Job) error {
	return s.run(name, s.timeout, job)
}

func (s *Scheduler) run(name string, timeout time.Duration, job Job) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("[scheduler] Starting job: %s", name)
	start := time.Now()
	if err := job(ctx); err != nil {
		return err
	}
	log.Printf("[scheduler] Job %s completed in %v", name, time.Since(start))
	return nil
}

// JobInfo contains information about a scheduled job
type JobInfo struct {
	Name    string
	NextRun time.Time
	LastRun time.Time
}

// ListJobs returns scheduled jobs sorted by name.
func (s *Scheduler) ListJobs() []JobInfo {
	s.mu.Lock()
	ids := make(map[cron.EntryID]string, len(s.jobs))
	for name, id := range s.jobs {
		ids[id] = name
	}
	s.mu.Unlock()

	var infos []JobInfo
	for _, entry := range s.cron.Entries() {
		name, ok := ids[entry.ID]
		if !ok {
			continue
		}
		infos = append(infos, JobInfo{Name: name, NextRun: entry.Next, LastRun: entry.Prev})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}
