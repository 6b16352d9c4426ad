package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authdomain "github.com/guptaji1008/book-hotel/internal/auth/domain"
	authhandler "github.com/guptaji1008/book-hotel/internal/auth/handler"
	authservice "github.com/guptaji1008/book-hotel/internal/auth/service"
	"github.com/guptaji1008/book-hotel/internal/mocks"
	"github.com/guptaji1008/book-hotel/internal/room/domain"
	"github.com/guptaji1008/book-hotel/internal/room/dto"
	"github.com/guptaji1008/book-hotel/internal/room/handler"
	"github.com/guptaji1008/book-hotel/internal/room/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testApp wires the room routes with real middleware backed by a real token
// service, so the auth path in these tests is the production one.
func testApp(t *testing.T, mockRepo *mocks.MockRoomRepository) (*fiber.App, *authservice.TokenService) {
	t.Helper()

	tokenService := authservice.NewTokenService("test-secret", 60)
	auth := authhandler.NewAuthHandler(nil, tokenService, discardLogger())

	roomService := service.NewRoomService(mockRepo)
	roomHandler := handler.NewRoomHandler(roomService, discardLogger())

	app := fiber.New()
	handler.RegisterRoutes(app, roomHandler, auth.RequireAuth, auth.RequireRole("admin"))

	return app, tokenService
}

func mintToken(t *testing.T, ts *authservice.TokenService, role string) string {
	t.Helper()
	token, _, err := ts.Mint(&authdomain.Account{ID: "acc-" + role, Name: "Guest", Email: role + "@example.com", Role: role})
	require.NoError(t, err)
	return token
}

func jsonRequest(t *testing.T, method, target, token string, payload any) *http.Request {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func validRoomInput() dto.RoomInput {
	return dto.RoomInput{
		Name:          "Sea View Suite",
		Description:   "Top floor suite with a sea view",
		PricePerNight: 120,
		Address:       "1 Beach Road",
		GuestCapacity: 2,
		NumOfBeds:     1,
		Category:      "King",
	}
}

func TestListRooms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRoomRepository(ctrl)
	app, _ := testApp(t, mockRepo)

	t.Run("list is public", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any(), domain.Filter{Page: 1, Limit: 8}).
			Return([]domain.Room{{ID: "room-1"}, {ID: "room-2"}}, 2, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/rooms", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var out dto.ListOutput
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, 2, out.RoomsCount)
		assert.Len(t, out.Rooms, 2)
	})

	t.Run("query parameters become the filter", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any(), domain.Filter{City: "Paris", Category: "King", Page: 2, Limit: 8}).
			Return(nil, 0, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/rooms?city=Paris&category=King&page=2", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("repository failure is a 500", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, 0, errors.New("db down"))

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/rooms", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}

func TestGetRoom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRoomRepository(ctrl)
	app, _ := testApp(t, mockRepo)

	t.Run("found", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "room-1").Return(&domain.Room{ID: "room-1", Name: "Sea View Suite"}, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/rooms/room-1", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/rooms/missing", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "room not found", body["error"])
	})
}

func TestCreateRoomRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRoomRepository(ctrl)
	app, ts := testApp(t, mockRepo)

	adminToken := mintToken(t, ts, "admin")
	userToken := mintToken(t, ts, "user")

	t.Run("admin creates", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, room *domain.Room) error {
				assert.Equal(t, "acc-admin", room.OwnerID)
				return nil
			})

		resp, err := app.Test(jsonRequest(t, "POST", "/api/v1/admin/rooms", adminToken, validRoomInput()))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("regular user is forbidden", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, "POST", "/api/v1/admin/rooms", userToken, validRoomInput()))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("anonymous is unauthorized", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, "POST", "/api/v1/admin/rooms", "", validRoomInput()))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("validation errors keyed by field", func(t *testing.T) {
		input := validRoomInput()
		input.Category = "Penthouse"

		resp, err := app.Test(jsonRequest(t, "POST", "/api/v1/admin/rooms", adminToken, input))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		fields, ok := body["errors"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, fields, "category")
	})
}

func TestUpdateRoomRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRoomRepository(ctrl)
	app, ts := testApp(t, mockRepo)
	adminToken := mintToken(t, ts, "admin")

	t.Run("admin updates", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "room-1").Return(&domain.Room{ID: "room-1"}, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := app.Test(jsonRequest(t, "PUT", "/api/v1/admin/rooms/room-1", adminToken, validRoomInput()))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("missing room", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

		resp, err := app.Test(jsonRequest(t, "PUT", "/api/v1/admin/rooms/missing", adminToken, validRoomInput()))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestDeleteRoomRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRoomRepository(ctrl)
	app, ts := testApp(t, mockRepo)
	adminToken := mintToken(t, ts, "admin")

	t.Run("admin deletes", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "room-1").Return(&domain.Room{ID: "room-1"}, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), "room-1").Return(nil)

		resp, err := app.Test(jsonRequest(t, "DELETE", "/api/v1/admin/rooms/room-1", adminToken, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("missing room", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

		resp, err := app.Test(jsonRequest(t, "DELETE", "/api/v1/admin/rooms/missing", adminToken, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestAddReviewRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRoomRepository(ctrl)
	app, ts := testApp(t, mockRepo)
	userToken := mintToken(t, ts, "user")

	t.Run("signed-in user reviews", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "room-1").
			Return(&domain.Room{ID: "room-1", Reviews: []domain.Review{}}, nil)
		mockRepo.EXPECT().UpdateReviews(gomock.Any(), "room-1", gomock.Any(), 4.0, 1).Return(nil)

		resp, err := app.Test(jsonRequest(t, "POST", "/api/v1/rooms/room-1/reviews", userToken, dto.ReviewInput{Rating: 4, Comment: "Nice stay"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("anonymous cannot review", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, "POST", "/api/v1/rooms/room-1/reviews", "", dto.ReviewInput{Rating: 4, Comment: "Nice stay"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("review for a missing room", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

		resp, err := app.Test(jsonRequest(t, "POST", "/api/v1/rooms/missing/reviews", userToken, dto.ReviewInput{Rating: 4, Comment: "Nice stay"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
