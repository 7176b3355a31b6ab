package livekit

import (
	"fmt"
	"time"

	"github.com/livekit/protocol/auth"
)

// IssueGrant mints a signed media-access token scoped to a single room.
func (c *RoomClient) IssueGrant(subject, roomName string, canPublish, canSubscribe bool, ttl time.Duration) (string, error) {
	grant := &auth.VideoGrant{
		RoomJoin:     true,
		Room:         roomName,
		CanPublish:   &canPublish,
		CanSubscribe: &canSubscribe,
	}

	token := auth.NewAccessToken(c.apiKey, c.apiSecret).
		SetVideoGrant(grant).
		SetIdentity(subject).
		SetValidFor(ttl)

	jwt, err := token.ToJWT()
	if err != nil {
		return "", fmt.Errorf("sign media token: %w", err)
	}
	return jwt, nil
}
