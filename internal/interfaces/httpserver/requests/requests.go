// Package requests defines the HTTP request payloads.
package requests

// LoginRequest asks for an API credential bound to a user.
type LoginRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// LogoutRequest revokes a previously issued credential. When Token is empty
// the bearer token from the Authorization header is revoked instead.
type LogoutRequest struct {
	Token string `json:"token"`
}

// CreateRoomRequest provisions a new agent room. TimeoutMinutes of 0 selects
// the configured default.
type CreateRoomRequest struct {
	AgentName      string `json:"agent_name" binding:"required"`
	TimeoutMinutes int    `json:"timeout_minutes"`
}

// GenerateTokenRequest mints a media-access token for a room. UserID defaults
// to the authenticated subject; publish and subscribe default to allowed.
type GenerateTokenRequest struct {
	RoomName     string `json:"room_name" binding:"required"`
	UserID       string `json:"user_id"`
	CanPublish   *bool  `json:"can_publish"`
	CanSubscribe *bool  `json:"can_subscribe"`
}
