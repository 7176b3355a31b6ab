package room

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// CloseScheduler arms one deferred close per room and fires a callback when
// the timeout elapses. Timers are in-process only; a restart loses them, and
// the occupancy syncer plus manual close remain the backstop for those rooms.
type CloseScheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
	onFire func(roomName string)
	log    zerolog.Logger
}

// NewCloseScheduler creates a scheduler that invokes onFire after a room's
// timeout elapses, unless the room was cancelled first.
func NewCloseScheduler(onFire func(roomName string), log zerolog.Logger) *CloseScheduler {
	return &CloseScheduler{
		timers: make(map[string]*time.Timer),
		onFire: onFire,
		log:    log.With().Str("component", "close_scheduler").Logger(),
	}
}

// Arm schedules a deferred close for the room. Each room gets at most one
// timer; arming an already-armed room is a no-op.
func (s *CloseScheduler) Arm(roomName string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.timers[roomName]; ok {
		s.log.Warn().Str("room_name", roomName).Msg("Room already armed, keeping existing timer")
		return
	}

	s.timers[roomName] = time.AfterFunc(d, func() {
		s.fire(roomName)
	})
	s.log.Debug().Str("room_name", roomName).Dur("after", d).Msg("Deferred close armed")
}

// Cancel stops the room's pending timer. Returns whether a timer existed.
// Cancelling an unknown room is a harmless no-op.
func (s *CloseScheduler) Cancel(roomName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.timers[roomName]
	if !ok {
		return false
	}
	t.Stop()
	delete(s.timers, roomName)
	s.log.Debug().Str("room_name", roomName).Msg("Deferred close cancelled")
	return true
}

// Armed returns the number of pending timers.
func (s *CloseScheduler) Armed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// StopAll cancels every pending timer. Used on shutdown so fired callbacks
// do not race teardown.
func (s *CloseScheduler) StopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, t := range s.timers {
		t.Stop()
		delete(s.timers, name)
	}
}

func (s *CloseScheduler) fire(roomName string) {
	s.mu.Lock()
	// The timer may have been cancelled between firing and acquiring the
	// lock. In that case the close was handled elsewhere.
	if _, ok := s.timers[roomName]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.timers, roomName)
	s.mu.Unlock()

	s.onFire(roomName)
}
