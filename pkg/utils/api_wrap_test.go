package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func handleErrorStatus(err error) int {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	HandleServiceError(c, err)
	return recorder.Code
}

func TestHandleServiceErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid page", err: ErrInvalidPage, want: http.StatusBadRequest},
		{name: "invalid schedule dates", err: ErrInvalidScheduleDates, want: http.StatusBadRequest},
		{name: "invalid credentials", err: ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "login throttled", err: ErrTooManyLoginAttempts, want: http.StatusTooManyRequests},
		{name: "not board owner", err: ErrNotBoardOwner, want: http.StatusForbidden},
		{name: "schedule not found", err: ErrScheduleNotFound, want: http.StatusNotFound},
		{name: "duplicate email", err: ErrEmailAlreadyExists, want: http.StatusConflict},
		{name: "empty cart", err: ErrCartEmpty, want: http.StatusUnprocessableEntity},
		{name: "completion service down", err: ErrCompletionService, want: http.StatusBadGateway},
		{name: "malformed model response", err: ErrMalformedAIResponse, want: http.StatusBadGateway},
		{name: "upload failed", err: ErrUploadFailed, want: http.StatusBadGateway},
		{name: "database error", err: ErrDatabaseError, want: http.StatusInternalServerError},
		{name: "unknown error", err: errors.New("surprise"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, handleErrorStatus(tt.err))
		})
	}
}

// Wrapped errors keep their mapping, including planning failures carrying
// a schedule id.
func TestHandleServiceErrorUnwrapsPlanningError(t *testing.T) {
	err := &PlanningError{ScheduleID: uuid.New(), Err: ErrCompletionService}
	assert.Equal(t, http.StatusBadGateway, handleErrorStatus(err))
}

func TestRespondSuccessEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Set("trace_id", "trace-123")

	RespondSuccess(c, gin.H{"ok": true}, "done")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"success"`)
	assert.Contains(t, recorder.Body.String(), `"trace_id":"trace-123"`)
}
