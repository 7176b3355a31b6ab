package credential

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Sweeper periodically removes expired entries from the credential store.
// Expired credentials already fail verification; the sweeper only reclaims
// storage.
type Sweeper struct {
	service  Service
	interval time.Duration
	log      zerolog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	started bool
}

// NewSweeper creates a sweeper running at the given interval.
func NewSweeper(service Service, interval time.Duration, log zerolog.Logger) *Sweeper {
	return &Sweeper{
		service:  service,
		interval: interval,
		log:      log.With().Str("component", "credential_sweeper").Logger(),
	}
}

// Start launches the background sweep loop. Calling Start twice is a no-op.
func (s *Sweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)
	s.log.Info().Dur("interval", s.interval).Msg("Credential sweeper started")
}

// Stop halts the sweep loop and waits for the current pass to finish.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.started = false
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	cancel()
	<-done
	s.log.Info().Msg("Credential sweeper stopped")
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.service.SweepExpired(ctx); err != nil {
				s.log.Warn().Err(err).Msg("Credential sweep failed")
			}
		}
	}
}
