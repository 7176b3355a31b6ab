// Package roomres defines the HTTP response payloads for room operations.
package roomres

import (
	"time"

	"agentvoice/room-api/internal/domain/room"
)

// RoomResponse is the public view of a tracked room.
type RoomResponse struct {
	RoomName       string     `json:"room_name"`
	AgentName      string     `json:"agent_name"`
	OwnerUserID    string     `json:"owner_user_id"`
	Status         string     `json:"status"`
	TimeoutMinutes int        `json:"timeout_minutes"`
	CreatedAt      time.Time  `json:"created_at"`
	JoinedAt       *time.Time `json:"joined_at,omitempty"`
	LeftAt         *time.Time `json:"left_at,omitempty"`
	ChatDuration   int        `json:"chat_duration"`
	ClosedAt       *time.Time `json:"closed_at,omitempty"`
}

// FromDomain converts a domain room into its response form.
func FromDomain(r *room.Room) RoomResponse {
	return RoomResponse{
		RoomName:       r.RoomName,
		AgentName:      r.AgentName,
		OwnerUserID:    r.OwnerUserID,
		Status:         string(r.Status),
		TimeoutMinutes: r.TimeoutMinutes,
		CreatedAt:      r.CreatedAt,
		JoinedAt:       r.JoinedAt,
		LeftAt:         r.LeftAt,
		ChatDuration:   r.ChatDuration,
		ClosedAt:       r.ClosedAt,
	}
}

// CloseRoomResponse reports the outcome of a close request.
type CloseRoomResponse struct {
	RoomName      string `json:"room_name"`
	Status        string `json:"status"`
	ChatDuration  int    `json:"chat_duration"`
	AlreadyClosed bool   `json:"already_closed"`
}

// TokenResponse carries a media-access token for joining a room.
type TokenResponse struct {
	Token    string `json:"token"`
	WsURL    string `json:"ws_url"`
	RoomName string `json:"room_name"`
	UserID   string `json:"user_id"`
}

// AgentListResponse lists the agents available for room creation.
type AgentListResponse struct {
	Agents []string `json:"agents"`
}

// JoinResponse acknowledges a join notification.
type JoinResponse struct {
	RoomName string `json:"room_name"`
	Recorded bool   `json:"recorded"`
}
