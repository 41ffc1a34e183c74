package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"voya/internal/models/db_models"
	"voya/internal/models/request_models"
	"voya/internal/models/response_models"
	"voya/internal/repositories"
	"voya/pkg/utils"
)

type ScheduleServiceInterface interface {
	CreateSchedule(ctx context.Context, userID uuid.UUID, request request_models.CreateScheduleRequest) (*response_models.ScheduleResponse, error)
	GetSchedule(ctx context.Context, userID, scheduleID uuid.UUID) (*response_models.ScheduleResponse, error)
	UpdateSchedule(ctx context.Context, userID, scheduleID uuid.UUID, request request_models.UpdateScheduleRequest) (*response_models.ScheduleResponse, error)
	DeleteSchedule(ctx context.Context, userID, scheduleID uuid.UUID) error
	GenerateDailyPlan(ctx context.Context, userID, scheduleID uuid.UUID) (*response_models.DailyPlanDocument, error)
}

type ScheduleService struct {
	scheduleRepo repositories.ScheduleRepository
	cartRepo     repositories.CartRepository
	tourRepo     repositories.TourRepository
	aiService    AIServiceInterface
}

func NewScheduleService(
	scheduleRepo repositories.ScheduleRepository,
	cartRepo repositories.CartRepository,
	tourRepo repositories.TourRepository,
	aiService AIServiceInterface,
) ScheduleServiceInterface {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		cartRepo:     cartRepo,
		tourRepo:     tourRepo,
		aiService:    aiService,
	}
}

func parseScheduleDates(startDate, endDate, startTime string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return time.Time{}, time.Time{}, utils.ErrInvalidInput
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return time.Time{}, time.Time{}, utils.ErrInvalidInput
	}
	if _, err := time.Parse("15:04", startTime); err != nil {
		return time.Time{}, time.Time{}, utils.ErrInvalidInput
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, utils.ErrInvalidScheduleDates
	}
	return start, end, nil
}

func (s *ScheduleService) CreateSchedule(ctx context.Context, userID uuid.UUID, request request_models.CreateScheduleRequest) (*response_models.ScheduleResponse, error) {
	start, end, err := parseScheduleDates(request.StartDate, request.EndDate, request.StartTime)
	if err != nil {
		return nil, err
	}

	cartID, err := uuid.Parse(request.CartID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	cart, err := s.cartRepo.FindByID(ctx, cartID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if cart == nil || cart.UserID != userID {
		return nil, utils.ErrCartNotFound
	}

	schedule := &db_models.Schedule{
		UserID:       userID,
		CartID:       cartID,
		ScheduleName: request.ScheduleName,
		StartDate:    start,
		EndDate:      end,
		StartTime:    request.StartTime,
		Budget:       request.Budget,
		ScheduleType: request.ScheduleType,
	}
	if err := s.scheduleRepo.Insert(ctx, schedule); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toScheduleResponse(schedule), nil
}

func (s *ScheduleService) GetSchedule(ctx context.Context, userID, scheduleID uuid.UUID) (*response_models.ScheduleResponse, error) {
	schedule, err := s.findOwnedSchedule(ctx, userID, scheduleID)
	if err != nil {
		return nil, err
	}
	return toScheduleResponse(schedule), nil
}

func (s *ScheduleService) UpdateSchedule(ctx context.Context, userID, scheduleID uuid.UUID, request request_models.UpdateScheduleRequest) (*response_models.ScheduleResponse, error) {
	schedule, err := s.findOwnedSchedule(ctx, userID, scheduleID)
	if err != nil {
		return nil, err
	}

	start, end, err := parseScheduleDates(request.StartDate, request.EndDate, request.StartTime)
	if err != nil {
		return nil, err
	}

	schedule.ScheduleName = request.ScheduleName
	schedule.StartDate = start
	schedule.EndDate = end
	schedule.StartTime = request.StartTime
	schedule.Budget = request.Budget
	schedule.ScheduleType = request.ScheduleType

	if err := s.scheduleRepo.Update(ctx, schedule); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toScheduleResponse(schedule), nil
}

func (s *ScheduleService) DeleteSchedule(ctx context.Context, userID, scheduleID uuid.UUID) error {
	schedule, err := s.findOwnedSchedule(ctx, userID, scheduleID)
	if err != nil {
		return err
	}
	if err := s.scheduleRepo.Delete(ctx, schedule); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// GenerateDailyPlan resolves the schedule's cart into candidate items,
// asks the AI service for a day-by-day distribution, validates the
// returned document against the plan schema and persists it. The plan is
// all-or-nothing: nothing is stored when any stage fails.
func (s *ScheduleService) GenerateDailyPlan(ctx context.Context, userID, scheduleID uuid.UUID) (*response_models.DailyPlanDocument, error) {
	schedule, err := s.findOwnedSchedule(ctx, userID, scheduleID)
	if err != nil {
		return nil, err
	}

	tours, err := s.tourRepo.ListByCart(ctx, schedule.CartID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(tours) == 0 {
		return nil, utils.ErrCartEmpty
	}

	items := make([]CandidateItem, 0, len(tours))
	for _, tour := range tours {
		items = append(items, CandidateItem{
			ContentID: tour.ContentID,
			Title:     tour.Title,
			Latitude:  tour.Latitude,
			Longitude: tour.Longitude,
			Category:  tour.Category,
		})
	}

	planJSON, err := s.aiService.CreateDailyPlanJSON(ctx, schedule.ID, schedule.StartDate, schedule.EndDate, schedule.StartTime, items)
	if err != nil {
		return nil, err
	}

	if err := utils.ValidateDailyPlanJSON(planJSON); err != nil {
		return nil, err
	}

	var doc response_models.DailyPlanDocument
	if err := json.Unmarshal([]byte(planJSON), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMalformedAIResponse, err)
	}

	schedule.PlanJSON = planJSON
	if err := s.scheduleRepo.Update(ctx, schedule); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &doc, nil
}

func (s *ScheduleService) findOwnedSchedule(ctx context.Context, userID, scheduleID uuid.UUID) (*db_models.Schedule, error) {
	schedule, err := s.scheduleRepo.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if schedule == nil {
		return nil, utils.ErrScheduleNotFound
	}
	if schedule.UserID != userID {
		return nil, utils.ErrNotScheduleOwner
	}
	return schedule, nil
}

func toScheduleResponse(schedule *db_models.Schedule) *response_models.ScheduleResponse {
	return &response_models.ScheduleResponse{
		ScheduleID:   schedule.ID.String(),
		ScheduleName: schedule.ScheduleName,
		StartDate:    schedule.StartDate.Format("2006-01-02"),
		EndDate:      schedule.EndDate.Format("2006-01-02"),
		StartTime:    schedule.StartTime,
		Budget:       schedule.Budget,
		ScheduleType: schedule.ScheduleType,
		CartID:       schedule.CartID.String(),
		HasPlan:      schedule.PlanJSON != "",
	}
}
