package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"voya/internal/models/request_models"
	"voya/internal/services"
	"voya/pkg/utils"
)

type CartController struct {
	cartService services.CartServiceInterface
}

func NewCartController(cartService services.CartServiceInterface) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

// AddTour godoc
// @Summary Add a place to the cart
// @Tags Carts
// @Accept json
// @Produce json
// @Param request body request_models.AddTourRequest true "Tour payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /carts/tours [post]
func (ct *CartController) AddTour(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.AddTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	tour, err := ct.cartService.AddTour(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tour, "Tour added to cart successfully")
}

// GetCartDetail godoc
// @Summary Get the current user's cart
// @Tags Carts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /carts/me [get]
func (ct *CartController) GetCartDetail(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cart, err := ct.cartService.GetCartDetail(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cart, "Cart fetched successfully")
}

// RemoveTour godoc
// @Summary Remove a place from the cart
// @Tags Carts
// @Produce json
// @Param tourId path string true "Tour ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /carts/tours/{tourId} [delete]
func (ct *CartController) RemoveTour(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tourID, err := uuid.Parse(c.Param("tourId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid tour id")
		return
	}

	if err := ct.cartService.RemoveTour(c.Request.Context(), userID, tourID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Tour removed from cart successfully")
}

// ClearCart godoc
// @Summary Remove every place from the cart
// @Tags Carts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /carts/me [delete]
func (ct *CartController) ClearCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := ct.cartService.ClearCart(c.Request.Context(), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Cart cleared successfully")
}
