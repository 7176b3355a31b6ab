package room

import "time"

// Status represents the lifecycle state of a room.
type Status string

const (
	// StatusActive indicates the room exists in the media backend and
	// accepts participants.
	StatusActive Status = "active"
	// StatusClosed indicates the room has been reclaimed. The transition
	// is monotonic; a closed room never becomes active again.
	StatusClosed Status = "closed"
)

// Room represents a tracked agent-bound collaboration room.
type Room struct {
	RoomName       string     `json:"room_name"`
	ExternalRoomID string     `json:"external_room_id,omitempty"` // media backend SID, diagnostics only
	AgentName      string     `json:"agent_name"`
	OwnerUserID    string     `json:"owner_user_id"`
	Status         Status     `json:"status"`
	TimeoutMinutes int        `json:"timeout_minutes"`
	CreatedAt      time.Time  `json:"created_at"`
	JoinedAt       *time.Time `json:"joined_at,omitempty"`
	LeftAt         *time.Time `json:"left_at,omitempty"`
	ChatDuration   int        `json:"chat_duration"`
	ClosedAt       *time.Time `json:"closed_at,omitempty"`
}

// CloseResult reports the outcome of a close operation.
type CloseResult struct {
	RoomName      string `json:"room_name"`
	ChatDuration  int    `json:"chat_duration"`
	AlreadyClosed bool   `json:"already_closed"`
}

// MediaGrant is a media-access credential for joining a room, issued by the
// remote gateway. Distinct from the service's own API credentials.
type MediaGrant struct {
	Token    string `json:"token"`
	WsURL    string `json:"ws_url"`
	RoomName string `json:"room_name"`
	UserID   string `json:"user_id"`
}

// CloseReason labels which path performed the active → closed transition.
type CloseReason string

const (
	CloseReasonManual  CloseReason = "manual"
	CloseReasonTimeout CloseReason = "timeout"
)
