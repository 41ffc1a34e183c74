package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"voya/internal/models/db_models"
	"voya/internal/models/request_models"
	"voya/pkg/utils"
)

func newCartServiceForTest() (CartServiceInterface, *fakeCartRepo, *fakeTourRepo) {
	cartRepo := newFakeCartRepo()
	tourRepo := newFakeTourRepo()
	return NewCartService(cartRepo, tourRepo), cartRepo, tourRepo
}

func addTourRequest(contentID string) request_models.AddTourRequest {
	return request_models.AddTourRequest{
		ContentID: contentID,
		Title:     "Place " + contentID,
		Latitude:  37.5,
		Longitude: 127.0,
		Category:  db_models.CategoryTouristSpot,
		Price:     10000,
		Region:    "Seoul",
	}
}

func TestAddTourCreatesCartOnFirstAdd(t *testing.T) {
	service, cartRepo, _ := newCartServiceForTest()
	userID := uuid.New()

	info, err := service.AddTour(context.Background(), userID, addTourRequest("100"))
	require.NoError(t, err)
	assert.Equal(t, "100", info.ContentID)

	cart, err := cartRepo.FindByUserID(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, cart)
	assert.Equal(t, "Seoul", cart.Region)

	// second add reuses the same cart
	_, err = service.AddTour(context.Background(), userID, addTourRequest("200"))
	require.NoError(t, err)
	assert.Len(t, cartRepo.carts, 1)
}

func TestAddTourRejectsUnknownCategory(t *testing.T) {
	service, _, _ := newCartServiceForTest()

	req := addTourRequest("100")
	req.Category = "SHOPPING"
	_, err := service.AddTour(context.Background(), uuid.New(), req)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestAddTourDuplicateContentID(t *testing.T) {
	service, _, _ := newCartServiceForTest()
	userID := uuid.New()

	_, err := service.AddTour(context.Background(), userID, addTourRequest("100"))
	require.NoError(t, err)

	_, err = service.AddTour(context.Background(), userID, addTourRequest("100"))
	assert.ErrorIs(t, err, utils.ErrTourAlreadyInCart)
}

func TestGetCartDetail(t *testing.T) {
	service, _, _ := newCartServiceForTest()
	userID := uuid.New()

	_, err := service.AddTour(context.Background(), userID, addTourRequest("100"))
	require.NoError(t, err)
	_, err = service.AddTour(context.Background(), userID, addTourRequest("200"))
	require.NoError(t, err)

	detail, err := service.GetCartDetail(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 2, detail.TotalCount)
	assert.Equal(t, int64(20000), detail.TotalPrice)
	require.Len(t, detail.Tours, 2)
	assert.Equal(t, "100", detail.Tours[0].ContentID, "tours keep insertion order")
}

func TestGetCartDetailWithoutCart(t *testing.T) {
	service, _, _ := newCartServiceForTest()

	detail, err := service.GetCartDetail(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, detail.Tours)
	assert.Zero(t, detail.TotalCount)
}

func TestRemoveTour(t *testing.T) {
	service, _, tourRepo := newCartServiceForTest()
	userID := uuid.New()

	info, err := service.AddTour(context.Background(), userID, addTourRequest("100"))
	require.NoError(t, err)
	tourID, err := uuid.Parse(info.TourID)
	require.NoError(t, err)

	require.NoError(t, service.RemoveTour(context.Background(), userID, tourID))
	assert.Empty(t, tourRepo.tours)

	assert.ErrorIs(t, service.RemoveTour(context.Background(), userID, tourID), utils.ErrTourNotFound)
}

func TestRemoveTourFromAnotherUsersCart(t *testing.T) {
	service, _, _ := newCartServiceForTest()
	owner := uuid.New()
	intruder := uuid.New()

	info, err := service.AddTour(context.Background(), owner, addTourRequest("100"))
	require.NoError(t, err)
	tourID, err := uuid.Parse(info.TourID)
	require.NoError(t, err)

	// the intruder has no cart at all
	assert.ErrorIs(t, service.RemoveTour(context.Background(), intruder, tourID), utils.ErrCartNotFound)

	_, err = service.AddTour(context.Background(), intruder, addTourRequest("999"))
	require.NoError(t, err)
	assert.ErrorIs(t, service.RemoveTour(context.Background(), intruder, tourID), utils.ErrTourNotFound)
}

func TestClearCart(t *testing.T) {
	service, _, tourRepo := newCartServiceForTest()
	userID := uuid.New()

	_, err := service.AddTour(context.Background(), userID, addTourRequest("100"))
	require.NoError(t, err)
	_, err = service.AddTour(context.Background(), userID, addTourRequest("200"))
	require.NoError(t, err)

	require.NoError(t, service.ClearCart(context.Background(), userID))
	assert.Empty(t, tourRepo.tours)

	assert.ErrorIs(t, service.ClearCart(context.Background(), uuid.New()), utils.ErrCartNotFound)
}
