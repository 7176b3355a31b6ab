package room_test

import (
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentvoice/room-api/internal/domain/room"
)

type fireRecorder struct {
	mu    sync.Mutex
	fired []string
}

func (f *fireRecorder) fire(roomName string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fired = append(f.fired, roomName)
}

func (f *fireRecorder) count(roomName string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, name := range f.fired {
		if name == roomName {
			n++
		}
	}
	return n
}

func TestSchedulerFires(t *testing.T) {
	rec := &fireRecorder{}
	s := room.NewCloseScheduler(rec.fire, zerolog.Nop())
	defer s.StopAll()

	s.Arm("room-a", 20*time.Millisecond)
	require.Eventually(t, func() bool {
		return rec.count("room-a") == 1
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, 0, s.Armed(), "fired timer removed from the map")
}

func TestSchedulerCancelPreventsFiring(t *testing.T) {
	rec := &fireRecorder{}
	s := room.NewCloseScheduler(rec.fire, zerolog.Nop())
	defer s.StopAll()

	s.Arm("room-a", 30*time.Millisecond)
	assert.True(t, s.Cancel("room-a"))

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 0, rec.count("room-a"), "cancelled timer must not fire")
}

func TestSchedulerCancelUnknownRoom(t *testing.T) {
	s := room.NewCloseScheduler(func(string) {}, zerolog.Nop())
	defer s.StopAll()

	assert.False(t, s.Cancel("room-never-armed"))
}

func TestSchedulerArmIsPerRoom(t *testing.T) {
	rec := &fireRecorder{}
	s := room.NewCloseScheduler(rec.fire, zerolog.Nop())
	defer s.StopAll()

	s.Arm("room-a", 20*time.Millisecond)
	s.Arm("room-a", time.Hour) // ignored, room already armed
	assert.Equal(t, 1, s.Armed())

	require.Eventually(t, func() bool {
		return rec.count("room-a") == 1
	}, time.Second, 5*time.Millisecond, "original timer still fires")
}

func TestSchedulerStopAll(t *testing.T) {
	rec := &fireRecorder{}
	s := room.NewCloseScheduler(rec.fire, zerolog.Nop())

	s.Arm("room-a", 30*time.Millisecond)
	s.Arm("room-b", 30*time.Millisecond)
	s.StopAll()
	assert.Equal(t, 0, s.Armed())

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 0, rec.count("room-a"))
	assert.Equal(t, 0, rec.count("room-b"))
}
