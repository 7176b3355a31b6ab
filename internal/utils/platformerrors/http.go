package platformerrors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPErrorResponse is the standard error envelope returned to clients.
type HTTPErrorResponse struct {
	Error HTTPErrorDetail `json:"error"`
}

// HTTPErrorDetail carries the error payload.
type HTTPErrorDetail struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
	ErrorID   string `json:"error_id,omitempty"`
}

// WriteHTTPError writes a platform error as a JSON response with the status
// mapped from its type. Internal details stay out of the body.
func WriteHTTPError(c *gin.Context, err *PlatformError) {
	if err == nil {
		c.JSON(http.StatusInternalServerError, HTTPErrorResponse{
			Error: HTTPErrorDetail{Type: "internal_error", Message: "internal server error"},
		})
		return
	}

	status := ErrorTypeToHTTPStatus(err.Type)
	message := err.Message
	if status == http.StatusInternalServerError || status == http.StatusBadGateway {
		// Do not leak internals for server-side failures.
		message = "internal server error"
		if status == http.StatusBadGateway {
			message = "upstream service error"
		}
	}

	c.JSON(status, HTTPErrorResponse{
		Error: HTTPErrorDetail{
			Type:      errorTypeToString(err.Type),
			Message:   message,
			RequestID: err.RequestID,
			ErrorID:   err.UUID,
		},
	})
}

// WriteError writes any error, extracting a PlatformError when present.
func WriteError(c *gin.Context, err error) {
	if platformErr := GetPlatformError(err); platformErr != nil {
		WriteHTTPError(c, platformErr)
		return
	}
	c.JSON(http.StatusInternalServerError, HTTPErrorResponse{
		Error: HTTPErrorDetail{Type: "internal_error", Message: "internal server error"},
	})
}

// WriteNotFound writes a 404 response.
func WriteNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, HTTPErrorResponse{
		Error: HTTPErrorDetail{Type: "not_found", Message: message},
	})
}

// WriteValidationError writes a 400 response.
func WriteValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, HTTPErrorResponse{
		Error: HTTPErrorDetail{Type: "validation_error", Message: message},
	})
}

// WriteUnauthorized writes a 401 response.
func WriteUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, HTTPErrorResponse{
		Error: HTTPErrorDetail{Type: "unauthorized", Message: message},
	})
}

// WriteConflict writes a 409 response.
func WriteConflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, HTTPErrorResponse{
		Error: HTTPErrorDetail{Type: "conflict", Message: message},
	})
}

// WriteInternalError writes a 500 response without leaking details.
func WriteInternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, HTTPErrorResponse{
		Error: HTTPErrorDetail{Type: "internal_error", Message: "internal server error"},
	})
}

func errorTypeToString(errorType ErrorType) string {
	switch errorType {
	case ErrorTypeNotFound:
		return "not_found"
	case ErrorTypeValidation:
		return "validation_error"
	case ErrorTypeConflict:
		return "conflict"
	case ErrorTypeUnauthorized:
		return "unauthorized"
	case ErrorTypeForbidden:
		return "forbidden"
	case ErrorTypeExternal:
		return "external_error"
	case ErrorTypeDatabaseError:
		return "database_error"
	case ErrorTypeConsistency:
		return "consistency_error"
	case ErrorTypeNotImplemented:
		return "not_implemented"
	default:
		return "internal_error"
	}
}
