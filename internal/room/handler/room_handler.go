package handler

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	authhandler "github.com/guptaji1008/book-hotel/internal/auth/handler"
	apperrors "github.com/guptaji1008/book-hotel/internal/errors"
	"github.com/guptaji1008/book-hotel/internal/room/domain"
	"github.com/guptaji1008/book-hotel/internal/room/dto"
	"github.com/guptaji1008/book-hotel/internal/room/service"
)

type RoomHandler struct {
	roomService *service.RoomService
	log         *slog.Logger
}

func NewRoomHandler(roomService *service.RoomService, log *slog.Logger) *RoomHandler {
	return &RoomHandler{roomService: roomService, log: log}
}

func (h *RoomHandler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))

	out, err := h.roomService.List(c.Context(), domain.Filter{
		City:     c.Query("city"),
		Category: c.Query("category"),
		Page:     page,
	})
	if err != nil {
		return h.serverError(c, "list rooms failed", err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *RoomHandler) Get(c *fiber.Ctx) error {
	room, err := h.roomService.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrRoomNotFound) {
			return roomNotFound(c)
		}
		return h.serverError(c, "get room failed", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"room": room})
}

func (h *RoomHandler) Create(c *fiber.Ctx) error {
	var input dto.RoomInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	sess := authhandler.SessionFrom(c)
	if sess == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "please sign in again",
		})
	}

	room, err := h.roomService.Create(c.Context(), input, sess.ID)
	if err != nil {
		var verr *apperrors.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": verr.Fields,
			})
		}
		return h.serverError(c, "create room failed", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"room": room})
}

func (h *RoomHandler) Update(c *fiber.Ctx) error {
	var input dto.RoomInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	room, err := h.roomService.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		var verr *apperrors.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": verr.Fields,
			})
		case errors.Is(err, apperrors.ErrRoomNotFound):
			return roomNotFound(c)
		default:
			return h.serverError(c, "update room failed", err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"room": room})
}

func (h *RoomHandler) Delete(c *fiber.Ctx) error {
	if err := h.roomService.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, apperrors.ErrRoomNotFound) {
			return roomNotFound(c)
		}
		return h.serverError(c, "delete room failed", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "room deleted"})
}

func (h *RoomHandler) AddReview(c *fiber.Ctx) error {
	var input dto.ReviewInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	sess := authhandler.SessionFrom(c)
	if sess == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "please sign in again",
		})
	}

	room, err := h.roomService.AddReview(c.Context(), c.Params("id"), sess, input)
	if err != nil {
		var verr *apperrors.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": verr.Fields,
			})
		case errors.Is(err, apperrors.ErrRoomNotFound):
			return roomNotFound(c)
		default:
			return h.serverError(c, "add review failed", err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"room": room})
}

func (h *RoomHandler) serverError(c *fiber.Ctx, msg string, err error) error {
	h.log.Error(msg, "error", err, "path", c.Path())
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal server error",
	})
}

func roomNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": apperrors.ErrRoomNotFound.Error(),
	})
}
