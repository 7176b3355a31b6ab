package room_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"agentvoice/room-api/internal/domain/room"
)

// fakeStore is an in-memory room.Store with the same conditional-update
// semantics as the SQL implementation.
type fakeStore struct {
	mu    sync.Mutex
	rooms map[string]*room.Room

	insertErr            error
	conditionalUpdateErr error
	forceUpdateMiss      bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{rooms: make(map[string]*room.Room)}
}

func (s *fakeStore) Insert(_ context.Context, r *room.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.insertErr != nil {
		return s.insertErr
	}
	if _, ok := s.rooms[r.RoomName]; ok {
		return room.ErrRoomExists
	}
	cp := *r
	s.rooms[r.RoomName] = &cp
	return nil
}

func (s *fakeStore) GetByName(_ context.Context, roomName string) (*room.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[roomName]
	if !ok {
		return nil, room.ErrRoomNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *fakeStore) ConditionalUpdate(_ context.Context, roomName string, expected room.Status, fields room.Update) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conditionalUpdateErr != nil {
		return false, s.conditionalUpdateErr
	}
	if s.forceUpdateMiss {
		return false, nil
	}
	r, ok := s.rooms[roomName]
	if !ok || r.Status != expected {
		return false, nil
	}
	if fields.Status != nil {
		r.Status = *fields.Status
	}
	if fields.ClosedAt != nil {
		r.ClosedAt = fields.ClosedAt
	}
	if fields.LeftAt != nil {
		r.LeftAt = fields.LeftAt
	}
	if fields.ChatDuration != nil {
		r.ChatDuration = *fields.ChatDuration
	}
	return true, nil
}

func (s *fakeStore) SetJoined(_ context.Context, roomName string, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[roomName]
	if !ok || r.Status != room.StatusActive || r.JoinedAt != nil {
		return false, nil
	}
	r.JoinedAt = &at
	return true, nil
}

func (s *fakeStore) SetLeft(_ context.Context, roomName string, at time.Time, chatDuration int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[roomName]
	if !ok || r.Status != room.StatusActive || r.LeftAt != nil {
		return false, nil
	}
	r.LeftAt = &at
	r.ChatDuration = chatDuration
	return true, nil
}

func (s *fakeStore) ListActive(_ context.Context) ([]*room.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*room.Room
	for _, r := range s.rooms {
		if r.Status == room.StatusActive {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeGateway records remote calls and returns configurable failures.
type fakeGateway struct {
	mu sync.Mutex

	createErr error
	deleteErr error
	grantErr  error

	created  []string
	deleted  []string
	metadata map[string]string
	remote   map[string]room.Occupancy
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		metadata: make(map[string]string),
		remote:   make(map[string]room.Occupancy),
	}
}

func (g *fakeGateway) CreateRoom(_ context.Context, name, metadata string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.createErr != nil {
		return "", g.createErr
	}
	g.created = append(g.created, name)
	g.metadata[name] = metadata
	g.remote[name] = room.Occupancy{Name: name}
	return "SID_" + name, nil
}

func (g *fakeGateway) DeleteRoom(_ context.Context, name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.deleteErr != nil {
		return g.deleteErr
	}
	g.deleted = append(g.deleted, name)
	delete(g.remote, name)
	return nil
}

func (g *fakeGateway) IssueGrant(subject, roomName string, _, _ bool, _ time.Duration) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.grantErr != nil {
		return "", g.grantErr
	}
	return "media-token-" + subject + "-" + roomName, nil
}

func (g *fakeGateway) ListActiveRooms(_ context.Context) (map[string]room.Occupancy, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make(map[string]room.Occupancy, len(g.remote))
	for k, v := range g.remote {
		out[k] = v
	}
	return out, nil
}

func (g *fakeGateway) deleteCount(name string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, d := range g.deleted {
		if d == name {
			n++
		}
	}
	return n
}

func (g *fakeGateway) setOccupancy(name string, participants int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.remote[name] = room.Occupancy{Name: name, NumParticipants: participants}
}

var errBoom = errors.New("boom")
