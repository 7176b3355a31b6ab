package room

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrRoomNotFound is returned when a room is not found.
	ErrRoomNotFound = errors.New("room not found")
	// ErrRoomExists is returned when inserting a room whose name is already
	// taken. Names are never reused, so this is a creation failure.
	ErrRoomExists = errors.New("room already exists")
)

// Update describes the fields a conditional update may set. Nil fields are
// left untouched.
type Update struct {
	Status       *Status
	ClosedAt     *time.Time
	LeftAt       *time.Time
	ChatDuration *int
}

// Store defines the durable persistence operations for rooms.
//
// ConditionalUpdate must be a single atomic compare-and-swap against the
// status column: implementations may not read-then-write in separate steps.
// This is what makes the close transition race-free across service instances.
type Store interface {
	// Insert persists a new room row. Returns ErrRoomExists when the name
	// is already taken.
	Insert(ctx context.Context, r *Room) error

	// GetByName retrieves a room by its unique name. Returns ErrRoomNotFound
	// when absent.
	GetByName(ctx context.Context, roomName string) (*Room, error)

	// ConditionalUpdate applies fields only if the room currently has the
	// expected status. Returns false when the row was not in the expected
	// status (or missing), without error.
	ConditionalUpdate(ctx context.Context, roomName string, expected Status, fields Update) (bool, error)

	// SetJoined records first occupancy, only if joined_at is still unset
	// and the room is active. Returns whether the update applied.
	SetJoined(ctx context.Context, roomName string, at time.Time) (bool, error)

	// SetLeft records departure and the computed chat duration, only if
	// left_at is still unset and the room is active. Returns whether the
	// update applied.
	SetLeft(ctx context.Context, roomName string, at time.Time, chatDuration int) (bool, error)

	// ListActive returns all rooms currently in the active state.
	ListActive(ctx context.Context) ([]*Room, error)
}
