package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"agentvoice/room-api/internal/domain/credential"
	"agentvoice/room-api/internal/interfaces/httpserver/requests"
	credentialres "agentvoice/room-api/internal/interfaces/httpserver/responses/credential"
	"agentvoice/room-api/internal/utils/platformerrors"
)

// CredentialHandler serves login and logout endpoints.
type CredentialHandler struct {
	creds credential.Service
	log   zerolog.Logger
}

// NewCredentialHandler creates a credential handler.
func NewCredentialHandler(creds credential.Service, log zerolog.Logger) *CredentialHandler {
	return &CredentialHandler{
		creds: creds,
		log:   log.With().Str("component", "credential_handler").Logger(),
	}
}

// Login godoc
// @Summary Issue an API credential
// @Description Mints a bearer credential for the given user ID
// @Tags auth
// @Accept json
// @Produce json
// @Param request body requests.LoginRequest true "Login parameters"
// @Success 200 {object} credentialres.LoginResponse
// @Failure 400 {object} platformerrors.HTTPErrorResponse
// @Router /v1/auth/login [post]
func (h *CredentialHandler) Login(c *gin.Context) {
	var req requests.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		platformerrors.WriteValidationError(c, "user_id is required")
		return
	}
	if strings.TrimSpace(req.UserID) == "" {
		platformerrors.WriteValidationError(c, "user_id must not be blank")
		return
	}

	cred, err := h.creds.Issue(c.Request.Context(), req.UserID)
	if err != nil {
		h.log.Error().Err(err).Msg("Credential issuance failed")
		platformerrors.WriteInternalError(c)
		return
	}

	c.JSON(http.StatusOK, credentialres.LoginResponse{
		Token:     cred.Token,
		UserID:    cred.Subject,
		ExpiresAt: cred.ExpiresAt,
	})
}

// Logout godoc
// @Summary Revoke an API credential
// @Description Revokes the token from the request body, or the bearer token when the body is empty. Idempotent.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body requests.LogoutRequest false "Logout parameters"
// @Success 200 {object} credentialres.LogoutResponse
// @Failure 400 {object} platformerrors.HTTPErrorResponse
// @Router /v1/auth/logout [post]
func (h *CredentialHandler) Logout(c *gin.Context) {
	var req requests.LogoutRequest
	_ = c.ShouldBindJSON(&req)

	token := req.Token
	if token == "" {
		token = bearerFromHeader(c.GetHeader("Authorization"))
	}
	if token == "" {
		platformerrors.WriteValidationError(c, "no token provided")
		return
	}

	revoked, err := h.creds.Revoke(c.Request.Context(), token)
	if err != nil {
		h.log.Error().Err(err).Msg("Credential revocation failed")
		platformerrors.WriteInternalError(c)
		return
	}

	c.JSON(http.StatusOK, credentialres.LogoutResponse{Revoked: revoked})
}

func bearerFromHeader(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
