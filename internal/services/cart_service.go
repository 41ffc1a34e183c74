package services

import (
	"context"

	"github.com/google/uuid"
	"voya/internal/models/db_models"
	"voya/internal/models/request_models"
	"voya/internal/models/response_models"
	"voya/internal/repositories"
	"voya/pkg/utils"
)

type CartServiceInterface interface {
	AddTour(ctx context.Context, userID uuid.UUID, request request_models.AddTourRequest) (*response_models.TourInfo, error)
	GetCartDetail(ctx context.Context, userID uuid.UUID) (*response_models.CartDetailResponse, error)
	RemoveTour(ctx context.Context, userID, tourID uuid.UUID) error
	ClearCart(ctx context.Context, userID uuid.UUID) error
}

type CartService struct {
	cartRepo repositories.CartRepository
	tourRepo repositories.TourRepository
}

func NewCartService(cartRepo repositories.CartRepository, tourRepo repositories.TourRepository) CartServiceInterface {
	return &CartService{
		cartRepo: cartRepo,
		tourRepo: tourRepo,
	}
}

func (c *CartService) AddTour(ctx context.Context, userID uuid.UUID, request request_models.AddTourRequest) (*response_models.TourInfo, error) {
	if !db_models.IsValidCategory(request.Category) {
		return nil, utils.ErrInvalidInput
	}

	cart, err := c.getOrCreateCart(ctx, userID, request.Region)
	if err != nil {
		return nil, err
	}

	existing, err := c.tourRepo.FindByCartAndContentID(ctx, cart.ID, request.ContentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrTourAlreadyInCart
	}

	tour := &db_models.Tour{
		CartID:    cart.ID,
		ContentID: request.ContentID,
		Title:     request.Title,
		Latitude:  request.Latitude,
		Longitude: request.Longitude,
		Address:   request.Address,
		Image:     request.Image,
		Category:  request.Category,
		Price:     request.Price,
	}
	if err := c.tourRepo.Insert(ctx, tour); err != nil {
		return nil, utils.ErrDatabaseError
	}

	info := toTourInfo(*tour)
	return &info, nil
}

func (c *CartService) GetCartDetail(ctx context.Context, userID uuid.UUID) (*response_models.CartDetailResponse, error) {
	cart, err := c.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if cart == nil {
		// no cart yet reads as an empty cart
		return &response_models.CartDetailResponse{Tours: []response_models.TourInfo{}}, nil
	}

	tours, err := c.tourRepo.ListByCart(ctx, cart.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	infos := make([]response_models.TourInfo, 0, len(tours))
	var totalPrice int64
	for _, tour := range tours {
		infos = append(infos, toTourInfo(tour))
		totalPrice += tour.Price
	}

	return &response_models.CartDetailResponse{
		CartID:     cart.ID.String(),
		Region:     cart.Region,
		Tours:      infos,
		TotalCount: len(infos),
		TotalPrice: totalPrice,
	}, nil
}

func (c *CartService) RemoveTour(ctx context.Context, userID, tourID uuid.UUID) error {
	cart, err := c.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if cart == nil {
		return utils.ErrCartNotFound
	}

	tour, err := c.tourRepo.FindByID(ctx, tourID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if tour == nil || tour.CartID != cart.ID {
		return utils.ErrTourNotFound
	}

	if err := c.tourRepo.Delete(ctx, tour); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (c *CartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	cart, err := c.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if cart == nil {
		return utils.ErrCartNotFound
	}
	if err := c.tourRepo.DeleteAllByCart(ctx, cart.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (c *CartService) getOrCreateCart(ctx context.Context, userID uuid.UUID, region string) (*db_models.Cart, error) {
	cart, err := c.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if cart != nil {
		return cart, nil
	}

	cart = &db_models.Cart{UserID: userID, Region: region}
	if err := c.cartRepo.Insert(ctx, cart); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return cart, nil
}

func toTourInfo(tour db_models.Tour) response_models.TourInfo {
	return response_models.TourInfo{
		TourID:    tour.ID.String(),
		ContentID: tour.ContentID,
		Title:     tour.Title,
		Latitude:  tour.Latitude,
		Longitude: tour.Longitude,
		Address:   tour.Address,
		Image:     tour.Image,
		Category:  tour.Category,
		Price:     tour.Price,
	}
}
