package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"agentvoice/room-api/internal/config"
	"agentvoice/room-api/internal/domain/room"
	"agentvoice/room-api/internal/interfaces/httpserver/middlewares"
	"agentvoice/room-api/internal/interfaces/httpserver/requests"
	roomres "agentvoice/room-api/internal/interfaces/httpserver/responses/room"
	"agentvoice/room-api/internal/utils/platformerrors"
)

// RoomHandler serves room lifecycle and media token endpoints.
type RoomHandler struct {
	rooms room.Service
	cfg   *config.Config
	log   zerolog.Logger
}

// NewRoomHandler creates a room handler.
func NewRoomHandler(rooms room.Service, cfg *config.Config, log zerolog.Logger) *RoomHandler {
	return &RoomHandler{
		rooms: rooms,
		cfg:   cfg,
		log:   log.With().Str("component", "room_handler").Logger(),
	}
}

// Create godoc
// @Summary Create an agent room
// @Description Provisions a media room bound to the named agent and arms its deferred close
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body requests.CreateRoomRequest true "Room parameters"
// @Success 201 {object} roomres.RoomResponse
// @Failure 400 {object} platformerrors.HTTPErrorResponse
// @Failure 401 {object} platformerrors.HTTPErrorResponse
// @Security BearerAuth
// @Router /v1/rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req requests.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		platformerrors.WriteValidationError(c, "agent_name is required")
		return
	}

	if !h.cfg.ValidAgent(req.AgentName) {
		platformerrors.WriteValidationError(c, "unknown agent: "+req.AgentName)
		return
	}

	owner := middlewares.AuthenticatedUser(c)
	r, err := h.rooms.Create(c.Request.Context(), req.AgentName, owner, req.TimeoutMinutes)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, roomres.FromDomain(r))
}

// Get godoc
// @Summary Get a room
// @Tags rooms
// @Produce json
// @Param name path string true "Room name"
// @Success 200 {object} roomres.RoomResponse
// @Failure 404 {object} platformerrors.HTTPErrorResponse
// @Security BearerAuth
// @Router /v1/rooms/{name} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	r, err := h.rooms.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, roomres.FromDomain(r))
}

// Close godoc
// @Summary Close a room
// @Description Tears down the media room and records the final chat duration. Closing an already-closed room succeeds.
// @Tags rooms
// @Produce json
// @Param name path string true "Room name"
// @Success 200 {object} roomres.CloseRoomResponse
// @Failure 404 {object} platformerrors.HTTPErrorResponse
// @Security BearerAuth
// @Router /v1/rooms/{name} [delete]
func (h *RoomHandler) Close(c *gin.Context) {
	res, err := h.rooms.CloseNow(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, roomres.CloseRoomResponse{
		RoomName:      res.RoomName,
		Status:        string(room.StatusClosed),
		ChatDuration:  res.ChatDuration,
		AlreadyClosed: res.AlreadyClosed,
	})
}

// Join godoc
// @Summary Record participant join
// @Description Marks first occupancy on the room so chat duration can be computed at close
// @Tags rooms
// @Produce json
// @Param name path string true "Room name"
// @Success 200 {object} roomres.JoinResponse
// @Failure 404 {object} platformerrors.HTTPErrorResponse
// @Security BearerAuth
// @Router /v1/rooms/{name}/join [post]
func (h *RoomHandler) Join(c *gin.Context) {
	name := c.Param("name")

	// Existence check first so unknown rooms 404 instead of silently no-op.
	if _, err := h.rooms.Get(c.Request.Context(), name); err != nil {
		h.writeError(c, err)
		return
	}

	if err := h.rooms.RecordJoin(c.Request.Context(), name); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, roomres.JoinResponse{RoomName: name, Recorded: true})
}

// GenerateToken godoc
// @Summary Issue a media-access token
// @Description Mints a signed token for joining an active room over the media backend
// @Tags tokens
// @Accept json
// @Produce json
// @Param request body requests.GenerateTokenRequest true "Token parameters"
// @Success 200 {object} roomres.TokenResponse
// @Failure 400 {object} platformerrors.HTTPErrorResponse
// @Failure 404 {object} platformerrors.HTTPErrorResponse
// @Failure 409 {object} platformerrors.HTTPErrorResponse
// @Security BearerAuth
// @Router /v1/tokens [post]
func (h *RoomHandler) GenerateToken(c *gin.Context) {
	var req requests.GenerateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		platformerrors.WriteValidationError(c, "room_name is required")
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = middlewares.AuthenticatedUser(c)
	}
	canPublish := req.CanPublish == nil || *req.CanPublish
	canSubscribe := req.CanSubscribe == nil || *req.CanSubscribe

	grant, err := h.rooms.IssueMediaGrant(c.Request.Context(), req.RoomName, userID, canPublish, canSubscribe)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, roomres.TokenResponse{
		Token:    grant.Token,
		WsURL:    grant.WsURL,
		RoomName: grant.RoomName,
		UserID:   grant.UserID,
	})
}

// ListAgents godoc
// @Summary List available agents
// @Tags agents
// @Produce json
// @Success 200 {object} roomres.AgentListResponse
// @Security BearerAuth
// @Router /v1/agents [get]
func (h *RoomHandler) ListAgents(c *gin.Context) {
	c.JSON(http.StatusOK, roomres.AgentListResponse{Agents: h.cfg.Agents})
}

func (h *RoomHandler) writeError(c *gin.Context, err error) {
	if platformErr := platformerrors.GetPlatformError(err); platformErr != nil {
		platformerrors.LogError(h.log, platformErr)
		platformerrors.WriteHTTPError(c, platformErr)
		return
	}
	h.log.Error().Err(err).Msg("Unhandled error")
	platformerrors.WriteInternalError(c)
}
