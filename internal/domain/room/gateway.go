package room

import (
	"context"
	"time"
)

// Occupancy contains participant information for a remote room.
type Occupancy struct {
	Name            string
	NumParticipants int
}

// Gateway defines the operations the lifecycle manager needs from the
// remote media backend.
type Gateway interface {
	// CreateRoom provisions a room in the media backend. The metadata tag
	// tells the backend which agent logic to attach.
	CreateRoom(ctx context.Context, name, metadata string) (externalID string, err error)

	// DeleteRoom removes a room from the media backend. A room that is
	// already gone is a successful outcome, not an error.
	DeleteRoom(ctx context.Context, name string) error

	// IssueGrant mints a signed media-access token scoped to one room.
	IssueGrant(subject, roomName string, canPublish, canSubscribe bool, ttl time.Duration) (string, error)

	// ListActiveRooms returns the rooms currently live in the media backend
	// with their participant counts.
	ListActiveRooms(ctx context.Context) (map[string]Occupancy, error)
}
