package scheduler

import (
	"fmt"

	"auction-backend/utils"

	"github.com/robfig/cron/v3"
)

// PollResetter is the single maintenance action the scheduler invokes.
type PollResetter interface {
	ResetAllVotes() error
}

// Scheduler runs the recurring maintenance job: a poll vote reset at local
// midnight. There are no catch-up semantics; a fire missed while the
// process was down is skipped.
type Scheduler struct {
	cron *cron.Cron
}

// New builds a scheduler firing on the given cron spec ("0 0 * * *" for
// midnight) in the process's local time zone.
func New(spec string, resetter PollResetter) (*Scheduler, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		utils.Info("running scheduled poll reset", map[string]any{"spec": spec})
		if err := resetter.ResetAllVotes(); err != nil {
			utils.Error("scheduled poll reset failed", map[string]any{"error": err.Error()})
		}
	})
	if err != nil {
		return nil, fmt.Errorf("scheduler: invalid cron spec %q: %w", spec, err)
	}
	return &Scheduler{cron: c}, nil
}

// Start begins firing jobs in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling; a job already running is not interrupted.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}
