// Package livekit implements the media backend gateway on the LiveKit
// server SDK.
package livekit

import (
	"context"
	"errors"
	"net"

	"github.com/livekit/protocol/livekit"
	lksdk "github.com/livekit/server-sdk-go/v2"
	"github.com/rs/zerolog"
	"github.com/twitchtv/twirp"

	"agentvoice/room-api/internal/config"
	"agentvoice/room-api/internal/domain/room"
	"agentvoice/room-api/internal/infrastructure/metrics"
	"agentvoice/room-api/internal/utils/platformerrors"
)

// RoomClient talks to the LiveKit server API and implements room.Gateway.
type RoomClient struct {
	client    *lksdk.RoomServiceClient
	apiKey    string
	apiSecret string
	log       zerolog.Logger
}

// NewRoomClient creates a LiveKit room service client from configuration.
func NewRoomClient(cfg *config.Config, log zerolog.Logger) *RoomClient {
	return &RoomClient{
		client:    lksdk.NewRoomServiceClient(cfg.APIURL(), cfg.LiveKitAPIKey, cfg.LiveKitAPISecret),
		apiKey:    cfg.LiveKitAPIKey,
		apiSecret: cfg.LiveKitAPISecret,
		log:       log.With().Str("component", "livekit_client").Logger(),
	}
}

// CreateRoom provisions a room in LiveKit. The metadata tag tells the agent
// dispatcher which agent to attach.
func (c *RoomClient) CreateRoom(ctx context.Context, name, metadata string) (string, error) {
	resp, err := c.client.CreateRoom(ctx, &livekit.CreateRoomRequest{
		Name:     name,
		Metadata: metadata,
	})
	if err != nil {
		metrics.RecordRemoteOperation("create_room", "error")
		return "", c.classify(ctx, err, "create room")
	}

	metrics.RecordRemoteOperation("create_room", "success")
	c.log.Debug().Str("room_name", name).Str("sid", resp.GetSid()).Msg("Remote room created")
	return resp.GetSid(), nil
}

// DeleteRoom removes a room from LiveKit. A room that no longer exists is
// treated as already deleted.
func (c *RoomClient) DeleteRoom(ctx context.Context, name string) error {
	_, err := c.client.DeleteRoom(ctx, &livekit.DeleteRoomRequest{Room: name})
	if err != nil {
		if isNotFound(err) {
			metrics.RecordRemoteOperation("delete_room", "success")
			c.log.Debug().Str("room_name", name).Msg("Remote room already gone")
			return nil
		}
		metrics.RecordRemoteOperation("delete_room", "error")
		return c.classify(ctx, err, "delete room")
	}

	metrics.RecordRemoteOperation("delete_room", "success")
	c.log.Debug().Str("room_name", name).Msg("Remote room deleted")
	return nil
}

// ListActiveRooms returns the rooms currently live in LiveKit with their
// participant counts.
func (c *RoomClient) ListActiveRooms(ctx context.Context) (map[string]room.Occupancy, error) {
	resp, err := c.client.ListRooms(ctx, &livekit.ListRoomsRequest{})
	if err != nil {
		metrics.RecordRemoteOperation("list_rooms", "error")
		return nil, c.classify(ctx, err, "list rooms")
	}
	metrics.RecordRemoteOperation("list_rooms", "success")

	out := make(map[string]room.Occupancy, len(resp.GetRooms()))
	for _, r := range resp.GetRooms() {
		out[r.GetName()] = room.Occupancy{
			Name:            r.GetName(),
			NumParticipants: int(r.GetNumParticipants()),
		}
	}
	return out, nil
}

// classify maps LiveKit errors into the platform taxonomy so handlers return
// meaningful statuses and operators get actionable hints.
func (c *RoomClient) classify(ctx context.Context, err error, op string) error {
	var twerr twirp.Error
	if errors.As(err, &twerr) {
		switch twerr.Code() {
		case twirp.Unauthenticated, twirp.PermissionDenied:
			return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerInfrastructure,
				platformerrors.ErrorTypeExternal, "LiveKit rejected credentials, check LIVEKIT_API_KEY and LIVEKIT_API_SECRET", err, "",
				map[string]any{"operation": op})
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, "LiveKit server unreachable, check LIVEKIT_WS_URL", err, "",
			map[string]any{"operation": op})
	}

	return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerInfrastructure,
		platformerrors.ErrorTypeExternal, "LiveKit operation failed", err, "",
		map[string]any{"operation": op})
}

func isNotFound(err error) bool {
	var twerr twirp.Error
	return errors.As(err, &twerr) && twerr.Code() == twirp.NotFound
}
