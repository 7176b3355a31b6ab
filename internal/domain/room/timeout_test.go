package room

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStore holds a single room and applies conditional updates the way the
// SQL repository does.
type stubStore struct {
	room    *Room
	updates int
}

func (s *stubStore) Insert(context.Context, *Room) error { return nil }

func (s *stubStore) GetByName(_ context.Context, name string) (*Room, error) {
	if s.room == nil || s.room.RoomName != name {
		return nil, ErrRoomNotFound
	}
	cp := *s.room
	return &cp, nil
}

func (s *stubStore) ConditionalUpdate(_ context.Context, name string, expected Status, fields Update) (bool, error) {
	if s.room == nil || s.room.RoomName != name || s.room.Status != expected {
		return false, nil
	}
	s.updates++
	if fields.Status != nil {
		s.room.Status = *fields.Status
	}
	if fields.ClosedAt != nil {
		s.room.ClosedAt = fields.ClosedAt
	}
	if fields.LeftAt != nil {
		s.room.LeftAt = fields.LeftAt
	}
	if fields.ChatDuration != nil {
		s.room.ChatDuration = *fields.ChatDuration
	}
	return true, nil
}

func (s *stubStore) SetJoined(context.Context, string, time.Time) (bool, error) {
	return false, nil
}

func (s *stubStore) SetLeft(context.Context, string, time.Time, int) (bool, error) {
	return false, nil
}

func (s *stubStore) ListActive(context.Context) ([]*Room, error) { return nil, nil }

type stubGateway struct {
	deletes int
}

func (g *stubGateway) CreateRoom(context.Context, string, string) (string, error) {
	return "SID", nil
}

func (g *stubGateway) DeleteRoom(context.Context, string) error {
	g.deletes++
	return nil
}

func (g *stubGateway) IssueGrant(string, string, bool, bool, time.Duration) (string, error) {
	return "tok", nil
}

func (g *stubGateway) ListActiveRooms(context.Context) (map[string]Occupancy, error) {
	return nil, nil
}

func newTimeoutFixture(r *Room) (*service, *stubStore, *stubGateway) {
	store := &stubStore{room: r}
	gateway := &stubGateway{}
	svc := NewService(store, gateway, "ws://localhost:7880", 6*time.Hour, 60, 240, zerolog.Nop()).(*service)
	return svc, store, gateway
}

func TestTimeoutFiredClosesRoom(t *testing.T) {
	joined := time.Now().UTC().Add(-3 * time.Minute)
	svc, store, gateway := newTimeoutFixture(&Room{
		RoomName: "room-peppa-aaa111bbb222",
		Status:   StatusActive,
		JoinedAt: &joined,
	})
	defer svc.Shutdown()

	svc.onTimeoutFired("room-peppa-aaa111bbb222")

	assert.Equal(t, StatusClosed, store.room.Status)
	assert.Equal(t, 1, gateway.deletes)
	assert.NotNil(t, store.room.ClosedAt)
	assert.NotNil(t, store.room.LeftAt)
	assert.InDelta(t, 180, store.room.ChatDuration, 2)
}

func TestTimeoutFiredPreservesRecordedLeave(t *testing.T) {
	joined := time.Now().UTC().Add(-10 * time.Minute)
	left := joined.Add(3 * time.Minute)
	svc, store, gateway := newTimeoutFixture(&Room{
		RoomName:     "room-peppa-aaa111bbb222",
		Status:       StatusActive,
		JoinedAt:     &joined,
		LeftAt:       &left,
		ChatDuration: 180,
	})
	defer svc.Shutdown()

	svc.onTimeoutFired("room-peppa-aaa111bbb222")

	assert.Equal(t, StatusClosed, store.room.Status)
	assert.Equal(t, 1, gateway.deletes)
	assert.Equal(t, 180, store.room.ChatDuration, "timeout must not recompute a recorded duration")
	require.NotNil(t, store.room.LeftAt)
	assert.True(t, store.room.LeftAt.Equal(left), "timeout must not overwrite a recorded left_at")
}

func TestTimeoutFiredUnknownRoom(t *testing.T) {
	svc, _, gateway := newTimeoutFixture(nil)
	defer svc.Shutdown()

	svc.onTimeoutFired("room-peppa-gone")

	assert.Equal(t, 0, gateway.deletes)
}

func TestTimeoutFiredAlreadyClosed(t *testing.T) {
	svc, store, gateway := newTimeoutFixture(&Room{
		RoomName:     "room-peppa-aaa111bbb222",
		Status:       StatusClosed,
		ChatDuration: 42,
	})
	defer svc.Shutdown()

	svc.onTimeoutFired("room-peppa-aaa111bbb222")

	assert.Equal(t, 0, gateway.deletes, "closed room needs no remote delete")
	assert.Equal(t, 0, store.updates)
	assert.Equal(t, 42, store.room.ChatDuration)
}
