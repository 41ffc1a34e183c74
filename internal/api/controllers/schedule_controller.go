package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"voya/internal/models/request_models"
	"voya/internal/services"
	"voya/pkg/utils"
)

type ScheduleController struct {
	scheduleService services.ScheduleServiceInterface
}

func NewScheduleController(scheduleService services.ScheduleServiceInterface) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
	}
}

// CreateSchedule godoc
// @Summary Create a travel schedule
// @Tags Schedules
// @Accept json
// @Produce json
// @Param request body request_models.CreateScheduleRequest true "Schedule payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /schedules [post]
func (s *ScheduleController) CreateSchedule(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	schedule, err := s.scheduleService.CreateSchedule(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedule, "Schedule created successfully")
}

// GetSchedule godoc
// @Summary Get a travel schedule
// @Tags Schedules
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /schedules/{id} [get]
func (s *ScheduleController) GetSchedule(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	scheduleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid schedule id")
		return
	}

	schedule, err := s.scheduleService.GetSchedule(c.Request.Context(), userID, scheduleID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedule, "Schedule fetched successfully")
}

// UpdateSchedule godoc
// @Summary Update a travel schedule
// @Tags Schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param request body request_models.UpdateScheduleRequest true "Schedule payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /schedules/{id} [put]
func (s *ScheduleController) UpdateSchedule(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	scheduleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid schedule id")
		return
	}

	var req request_models.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	schedule, err := s.scheduleService.UpdateSchedule(c.Request.Context(), userID, scheduleID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedule, "Schedule updated successfully")
}

// DeleteSchedule godoc
// @Summary Delete a travel schedule
// @Tags Schedules
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /schedules/{id} [delete]
func (s *ScheduleController) DeleteSchedule(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	scheduleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid schedule id")
		return
	}

	if err := s.scheduleService.DeleteSchedule(c.Request.Context(), userID, scheduleID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Schedule deleted successfully")
}

// GenerateDailyPlan godoc
// @Summary Generate a day-by-day plan for a schedule
// @Description Distributes the cart's places across the schedule's travel days
// @Tags Schedules
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /schedules/{id}/daily-plan [post]
func (s *ScheduleController) GenerateDailyPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	scheduleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid schedule id")
		return
	}

	plan, err := s.scheduleService.GenerateDailyPlan(c.Request.Context(), userID, scheduleID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Daily plan generated successfully")
}
