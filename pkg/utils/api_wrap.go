package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrInvalidScheduleDates):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrTooManyLoginAttempts):
		RespondError(c, http.StatusTooManyRequests, "Too many login attempts, try again later")
	case errors.Is(err, ErrNotBoardOwner), errors.Is(err, ErrNotCommentOwner),
		errors.Is(err, ErrNotScheduleOwner):
		RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrBoardNotFound),
		errors.Is(err, ErrCommentNotFound), errors.Is(err, ErrCartNotFound),
		errors.Is(err, ErrTourNotFound), errors.Is(err, ErrScheduleNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrEmailAlreadyExists), errors.Is(err, ErrTourAlreadyInCart):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrCartEmpty):
		RespondError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrCompletionService), errors.Is(err, ErrMalformedAIResponse):
		log.Printf("AI provider error: %v", err)
		RespondError(c, http.StatusBadGateway, "Plan generation failed, try again later")
	case errors.Is(err, ErrUploadFailed):
		log.Printf("Upload error: %v", err)
		RespondError(c, http.StatusBadGateway, "File upload failed, try again later")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
