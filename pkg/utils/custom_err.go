package utils

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
	ErrInvalidInput    = errors.New("invalid input")

	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidEmail         = errors.New("invalid email format")
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrTooManyLoginAttempts = errors.New("too many login attempts")

	ErrBoardNotFound   = errors.New("board not found")
	ErrNotBoardOwner   = errors.New("not the board owner")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotCommentOwner = errors.New("not the comment owner")

	ErrCartNotFound      = errors.New("cart not found")
	ErrCartEmpty         = errors.New("cart has no tours")
	ErrTourNotFound      = errors.New("tour not found")
	ErrTourAlreadyInCart = errors.New("tour already in cart")

	ErrScheduleNotFound     = errors.New("schedule not found")
	ErrNotScheduleOwner     = errors.New("not the schedule owner")
	ErrInvalidScheduleDates = errors.New("end date is before start date")

	ErrPromptConstruction  = errors.New("prompt construction failed")
	ErrCompletionService   = errors.New("completion service call failed")
	ErrMalformedAIResponse = errors.New("malformed ai response")

	ErrUploadFailed = errors.New("file upload failed")
)

// PlanningError is the single failure kind the AI plan generation raises.
// It carries the schedule id for log correlation and unwraps to the stage
// error (ErrPromptConstruction, ErrCompletionService or ErrMalformedAIResponse).
type PlanningError struct {
	ScheduleID uuid.UUID
	Err        error
}

func (e *PlanningError) Error() string {
	return fmt.Sprintf("daily plan generation failed for schedule %s: %v", e.ScheduleID, e.Err)
}

func (e *PlanningError) Unwrap() error {
	return e.Err
}
