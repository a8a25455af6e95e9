package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-maintenance-search/internal/logger"
)

const defaultSweepInterval = time.Minute

// SessionSweeper periodically tears down idle sessions.
type SessionSweeper struct {
	sweeper  Sweeper
	interval time.Duration
	logger   *logger.Logger
}

// NewSessionSweeper returns a worker calling sweeper.Sweep every interval.
// A non-positive interval defaults to one minute.
func NewSessionSweeper(sweeper Sweeper, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &SessionSweeper{sweeper: sweeper, interval: interval, logger: logger}
}

// Run implements [Worker].
func (s *SessionSweeper) Run(ctx context.Context) {
	t := time.NewTicker(s.interval)
	defer t.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return
		case now := <-t.C:
			s.sweeper.Sweep(now)
		}
	}
}
