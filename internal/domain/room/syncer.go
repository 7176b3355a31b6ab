package room

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"agentvoice/room-api/internal/infrastructure/metrics"
)

// OccupancySyncer periodically reconciles tracked active rooms against the
// media backend's live participant counts, recording joins and leaves the
// service would otherwise only learn about through explicit endpoints.
type OccupancySyncer struct {
	store    Store
	gateway  Gateway
	service  Service
	interval time.Duration
	log      zerolog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	started bool
}

// NewOccupancySyncer creates a syncer polling at the given interval.
func NewOccupancySyncer(store Store, gateway Gateway, service Service, interval time.Duration, log zerolog.Logger) *OccupancySyncer {
	return &OccupancySyncer{
		store:    store,
		gateway:  gateway,
		service:  service,
		interval: interval,
		log:      log.With().Str("component", "occupancy_syncer").Logger(),
	}
}

// Start launches the background sync loop. Calling Start twice is a no-op.
func (s *OccupancySyncer) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)
	s.log.Info().Dur("interval", s.interval).Msg("Occupancy syncer started")
}

// Stop halts the sync loop and waits for the current pass to finish.
func (s *OccupancySyncer) Stop() {
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
	s.log.Info().Msg("Occupancy syncer stopped")
}

func (s *OccupancySyncer) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.syncOnce(ctx); err != nil {
				metrics.OccupancySyncErrors.Inc()
				s.log.Warn().Err(err).Msg("Occupancy sync pass failed")
			}
		}
	}
}

func (s *OccupancySyncer) syncOnce(ctx context.Context) error {
	active, err := s.store.ListActive(ctx)
	if err != nil {
		return err
	}
	if len(active) == 0 {
		return nil
	}

	remote, err := s.gateway.ListActiveRooms(ctx)
	if err != nil {
		return err
	}

	for _, r := range active {
		occ, live := remote[r.RoomName]
		occupied := live && occ.NumParticipants > 0

		switch {
		case occupied && r.JoinedAt == nil:
			if err := s.service.RecordJoin(ctx, r.RoomName); err != nil {
				s.log.Warn().Err(err).Str("room_name", r.RoomName).Msg("Record join failed")
			}
		case !occupied && r.JoinedAt != nil && r.LeftAt == nil:
			if err := s.service.RecordLeave(ctx, r.RoomName); err != nil {
				s.log.Warn().Err(err).Str("room_name", r.RoomName).Msg("Record leave failed")
			}
		}
	}
	return nil
}
