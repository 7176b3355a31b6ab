package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"agentvoice/room-api/internal/domain/credential"
	"agentvoice/room-api/internal/utils/platformerrors"
)

// UserIDKey is the gin context key the authenticated subject is stored under.
const UserIDKey = "user_id"

// CredentialAuth rejects requests without a valid bearer credential and
// exposes the verified subject on the context. Rejections carry no detail
// about why the credential failed.
func CredentialAuth(creds credential.Service, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			platformerrors.WriteUnauthorized(c, "missing bearer token")
			c.Abort()
			return
		}

		subject, err := creds.Verify(c.Request.Context(), token)
		if err != nil {
			// Never log the token itself.
			log.Debug().
				Str("path", c.Request.URL.Path).
				Str("request_id", GetRequestID(c)).
				Msg("Credential verification failed")
			platformerrors.WriteUnauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(UserIDKey, subject)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

// AuthenticatedUser returns the verified subject set by CredentialAuth.
func AuthenticatedUser(c *gin.Context) string {
	if v, ok := c.Get(UserIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
