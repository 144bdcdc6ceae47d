package response

import (
	"errors"
	"log"
	"net/http"

	"anoa.com/internhub/pkg/apperror"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Envelope is the uniform response body. Data is omitted on errors.
type Envelope struct {
	Title   string      `json:"title"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// GetUserID retrieves the authenticated user ID from the context
func GetUserID(c *gin.Context) (uuid.UUID, error) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, apperror.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		return uuid.Nil, apperror.ErrUnauthorized
	}

	return userID, nil
}

// Success writes the success envelope. Creations reply 200 like every
// other success, so there is no separate Created helper.
func Success(c *gin.Context, title, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{
		Title:   title,
		Message: message,
		Data:    data,
	})
}

// Error writes the error envelope with the mapped status code.
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
	}

	var ue *apperror.UnprocessableError
	if errors.As(err, &ue) {
		c.JSON(code, Envelope{Title: ue.Title, Message: ue.Message})
		return
	}

	c.JSON(code, gin.H{"error": err.Error()})
}
