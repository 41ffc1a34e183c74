package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"voya/pkg/utils"
)

// AIServiceInterface distributes a schedule's places across its travel
// days by delegating to the remote model. The returned string is the
// model's plan document verbatim; parsing and schema validation belong to
// the caller.
type AIServiceInterface interface {
	CreateDailyPlanJSON(ctx context.Context, scheduleID uuid.UUID, startDate, endDate time.Time, startTime string, items []CandidateItem) (string, error)
}

type AIService struct {
	completionClient utils.CompletionClientInterface
}

func NewAIService(completionClient utils.CompletionClientInterface) AIServiceInterface {
	return &AIService{
		completionClient: completionClient,
	}
}

// CreateDailyPlanJSON runs the full pipeline: build the prompt, call the
// model once (no retries), extract the content from the provider
// envelope. Every stage failure is wrapped in a *utils.PlanningError
// carrying the schedule id. startTime rides along for callers that embed
// it into the persisted schedule; the distribution itself only depends on
// the date range.
func (a *AIService) CreateDailyPlanJSON(ctx context.Context, scheduleID uuid.UUID, startDate, endDate time.Time, startTime string, items []CandidateItem) (string, error) {
	log.Printf("Starting AI daily plan distribution - schedule %s (%d places)", scheduleID, len(items))

	prompt, err := BuildDailyPlanPrompt(scheduleID, startDate, endDate, items)
	if err != nil {
		log.Printf("Prompt construction failed - schedule %s: %v", scheduleID, err)
		return "", &utils.PlanningError{ScheduleID: scheduleID, Err: err}
	}

	resp, err := a.completionClient.CreateDailyPlanCompletion(ctx, prompt)
	if err != nil {
		log.Printf("Completion call failed - schedule %s: %v", scheduleID, err)
		return "", &utils.PlanningError{ScheduleID: scheduleID, Err: err}
	}

	content, err := extractPlanContent(resp)
	if err != nil {
		log.Printf("Response extraction failed - schedule %s: %v", scheduleID, err)
		return "", &utils.PlanningError{ScheduleID: scheduleID, Err: err}
	}

	log.Printf("AI daily plan distribution succeeded - schedule %s", scheduleID)
	return content, nil
}

// extractPlanContent unwraps the model's answer from the provider
// envelope. The content is returned unchanged; its plan schema is
// validated downstream, independent of transport concerns.
func extractPlanContent(resp openai.ChatCompletionResponse) (string, error) {
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: response has no choices", utils.ErrMalformedAIResponse)
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: first choice has no content", utils.ErrMalformedAIResponse)
	}
	return content, nil
}
