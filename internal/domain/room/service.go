package room

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"agentvoice/room-api/internal/infrastructure/metrics"
	"agentvoice/room-api/internal/utils/idgen"
	"agentvoice/room-api/internal/utils/platformerrors"
)

const roomNameSuffixLength = 12

// Service manages the full lifecycle of agent rooms: provisioning in the
// media backend, durable tracking, deferred timeout closes, and media grant
// issuance.
type Service interface {
	// Create provisions a room bound to the named agent. timeoutMinutes of 0
	// selects the configured default.
	Create(ctx context.Context, agentName, ownerUserID string, timeoutMinutes int) (*Room, error)

	// Get returns the tracked room by name.
	Get(ctx context.Context, roomName string) (*Room, error)

	// CloseNow performs an immediate manual close. Closing an already-closed
	// room succeeds and reports the previously recorded duration.
	CloseNow(ctx context.Context, roomName string) (*CloseResult, error)

	// RecordJoin marks first participant occupancy on the room.
	RecordJoin(ctx context.Context, roomName string) error

	// RecordLeave marks the room empty and freezes the chat duration.
	RecordLeave(ctx context.Context, roomName string) error

	// IssueMediaGrant mints a media-access token for joining the room.
	IssueMediaGrant(ctx context.Context, roomName, userID string, canPublish, canSubscribe bool) (*MediaGrant, error)

	// Shutdown cancels all pending deferred closes.
	Shutdown()
}

type service struct {
	store          Store
	gateway        Gateway
	scheduler      *CloseScheduler
	wsURL          string
	mediaTokenTTL  time.Duration
	defaultTimeout int
	maxTimeout     int
	log            zerolog.Logger
}

// NewService creates the room lifecycle service and its internal deferred
// close scheduler.
func NewService(store Store, gateway Gateway, wsURL string, mediaTokenTTL time.Duration, defaultTimeout, maxTimeout int, log zerolog.Logger) Service {
	s := &service{
		store:          store,
		gateway:        gateway,
		wsURL:          wsURL,
		mediaTokenTTL:  mediaTokenTTL,
		defaultTimeout: defaultTimeout,
		maxTimeout:     maxTimeout,
		log:            log.With().Str("component", "room_service").Logger(),
	}
	s.scheduler = NewCloseScheduler(s.onTimeoutFired, log)
	return s
}

func (s *service) Create(ctx context.Context, agentName, ownerUserID string, timeoutMinutes int) (*Room, error) {
	if timeoutMinutes == 0 {
		timeoutMinutes = s.defaultTimeout
	}
	if timeoutMinutes < 0 || timeoutMinutes > s.maxTimeout {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			fmt.Sprintf("timeout_minutes must be between 1 and %d", s.maxTimeout), nil, "")
	}

	suffix, err := idgen.GenerateSuffix(roomNameSuffixLength)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "generate room name")
	}
	roomName := fmt.Sprintf("room-%s-%s", agentName, suffix)

	// Remote first. If the backend rejects the room there is nothing to
	// track locally.
	externalID, err := s.gateway.CreateRoom(ctx, roomName, "agent:"+agentName)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "create remote room")
	}

	r := &Room{
		RoomName:       roomName,
		ExternalRoomID: externalID,
		AgentName:      agentName,
		OwnerUserID:    ownerUserID,
		Status:         StatusActive,
		TimeoutMinutes: timeoutMinutes,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.store.Insert(ctx, r); err != nil {
		// On a name collision the remote room belongs to the existing row;
		// deleting it here would tear down someone else's room.
		if errors.Is(err, ErrRoomExists) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
				platformerrors.ErrorTypeConflict, "room name collision", err, "")
		}
		// Compensate: the remote room exists but we cannot track it. Delete
		// it so no untracked room keeps running.
		if delErr := s.gateway.DeleteRoom(ctx, roomName); delErr != nil {
			s.log.Error().
				Str("room_name", roomName).
				AnErr("insert_error", err).
				AnErr("compensation_error", delErr).
				Msg("Remote room orphaned after local insert failure")
			return nil, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain,
				platformerrors.ErrorTypeConsistency,
				"room provisioned remotely but local tracking failed and cleanup failed", err, "",
				map[string]any{"room_name": roomName})
		}
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "persist room")
	}

	s.scheduler.Arm(roomName, time.Duration(timeoutMinutes)*time.Minute)
	metrics.RecordRoomCreated(agentName)

	s.log.Info().
		Str("room_name", roomName).
		Str("agent_name", agentName).
		Str("owner_user_id", ownerUserID).
		Int("timeout_minutes", timeoutMinutes).
		Msg("Room created")

	return r, nil
}

func (s *service) Get(ctx context.Context, roomName string) (*Room, error) {
	r, err := s.store.GetByName(ctx, roomName)
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
				platformerrors.ErrorTypeNotFound, "room not found", err, "")
		}
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "load room")
	}
	return r, nil
}

func (s *service) CloseNow(ctx context.Context, roomName string) (*CloseResult, error) {
	// Manual close wins over a pending timer. Cancel first so the timer
	// cannot fire mid-close; the status CAS below makes the race harmless
	// either way.
	s.scheduler.Cancel(roomName)
	return s.close(ctx, roomName, CloseReasonManual)
}

// onTimeoutFired is the deferred close callback. It runs outside any request,
// so it re-reads current state and treats missing or already-closed rooms as
// a no-op.
func (s *service) onTimeoutFired(roomName string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	res, err := s.close(ctx, roomName, CloseReasonTimeout)
	if err != nil {
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
			s.log.Warn().Str("room_name", roomName).Msg("Timeout fired for unknown room")
			return
		}
		s.log.Error().Err(err).Str("room_name", roomName).Msg("Timeout close failed")
		return
	}
	if res.AlreadyClosed {
		s.log.Debug().Str("room_name", roomName).Msg("Timeout fired for already closed room")
	}
}

func (s *service) close(ctx context.Context, roomName string, reason CloseReason) (*CloseResult, error) {
	r, err := s.store.GetByName(ctx, roomName)
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
				platformerrors.ErrorTypeNotFound, "room not found", err, "")
		}
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "load room")
	}
	if r.Status == StatusClosed {
		return &CloseResult{RoomName: roomName, ChatDuration: r.ChatDuration, AlreadyClosed: true}, nil
	}

	// Tear down the remote room before flipping local state. If the delete
	// fails the room stays active and the caller can retry; a repeated
	// delete of an already-gone room maps to success in the gateway.
	if err := s.gateway.DeleteRoom(ctx, roomName); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "delete remote room")
	}

	now := time.Now().UTC()
	duration := r.ChatDuration
	closed := StatusClosed
	upd := Update{Status: &closed, ClosedAt: &now}
	if r.LeftAt == nil {
		duration = 0
		if r.JoinedAt != nil {
			duration = int(now.Sub(*r.JoinedAt).Seconds())
			if duration < 0 {
				duration = 0
			}
		}
		upd.LeftAt = &now
		upd.ChatDuration = &duration
	}

	applied, err := s.store.ConditionalUpdate(ctx, roomName, StatusActive, upd)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "persist close")
	}
	if !applied {
		// Lost the close race. The winner already recorded the final state;
		// report it instead of failing.
		r2, err := s.store.GetByName(ctx, roomName)
		if err != nil {
			return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "reload room after close race")
		}
		return &CloseResult{RoomName: roomName, ChatDuration: r2.ChatDuration, AlreadyClosed: true}, nil
	}

	metrics.RecordRoomClosed(string(reason), duration)
	s.log.Info().
		Str("room_name", roomName).
		Str("reason", string(reason)).
		Int("chat_duration", duration).
		Msg("Room closed")

	return &CloseResult{RoomName: roomName, ChatDuration: duration}, nil
}

func (s *service) RecordJoin(ctx context.Context, roomName string) error {
	applied, err := s.store.SetJoined(ctx, roomName, time.Now().UTC())
	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "record join")
	}
	if applied {
		s.log.Info().Str("room_name", roomName).Msg("First participant joined")
	}
	return nil
}

func (s *service) RecordLeave(ctx context.Context, roomName string) error {
	r, err := s.store.GetByName(ctx, roomName)
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			return nil
		}
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "load room")
	}
	if r.Status != StatusActive || r.JoinedAt == nil || r.LeftAt != nil {
		return nil
	}

	now := time.Now().UTC()
	duration := int(now.Sub(*r.JoinedAt).Seconds())
	if duration < 0 {
		duration = 0
	}
	applied, err := s.store.SetLeft(ctx, roomName, now, duration)
	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "record leave")
	}
	if applied {
		s.log.Info().Str("room_name", roomName).Int("chat_duration", duration).Msg("Room emptied")
	}
	return nil
}

func (s *service) IssueMediaGrant(ctx context.Context, roomName, userID string, canPublish, canSubscribe bool) (*MediaGrant, error) {
	r, err := s.store.GetByName(ctx, roomName)
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
				platformerrors.ErrorTypeNotFound, "room not found", err, "")
		}
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "load room")
	}
	if r.Status != StatusActive {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeConflict, "room is closed", nil, "")
	}

	start := time.Now()
	token, err := s.gateway.IssueGrant(userID, roomName, canPublish, canSubscribe, s.mediaTokenTTL)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "issue media grant")
	}
	metrics.TokenGenerationDuration.Observe(time.Since(start).Seconds())

	return &MediaGrant{
		Token:    token,
		WsURL:    s.wsURL,
		RoomName: roomName,
		UserID:   userID,
	}, nil
}

func (s *service) Shutdown() {
	s.scheduler.StopAll()
}
