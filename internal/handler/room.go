package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-front-desk/internal/middleware"
	"github.com/iliyamo/hotel-front-desk/internal/model"
	"github.com/iliyamo/hotel-front-desk/internal/repository"
)

// RoomHandler serves the rooms collection.
type RoomHandler struct {
	Rooms *repository.RoomRepo
	Cache *middleware.Invalidator
}

func NewRoomHandler(rooms *repository.RoomRepo, cache *middleware.Invalidator) *RoomHandler {
	if rooms == nil {
		panic("handler: nil repository passed to NewRoomHandler")
	}
	return &RoomHandler{Rooms: rooms, Cache: cache}
}

type roomReq struct {
	Number   string  `json:"number" validate:"required"`
	Type     string  `json:"type" validate:"required"`
	Status   string  `json:"status"`
	Rate     float64 `json:"rate" validate:"gte=0"`
	Capacity int     `json:"capacity" validate:"gte=1"`
}

// List handles GET /api/rooms. An optional ?status= query narrows the list
// to one housekeeping or occupancy state.
func (h *RoomHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	rooms, err := h.Rooms.List(ctx, strings.TrimSpace(c.QueryParam("status")))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"rooms": rooms})
}

// Create handles POST /api/rooms.
func (h *RoomHandler) Create(c echo.Context) error {
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Status == "" {
		req.Status = model.RoomStatusAvailable
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	room := &model.Room{
		Number:   strings.TrimSpace(req.Number),
		Type:     strings.TrimSpace(req.Type),
		Status:   req.Status,
		Rate:     req.Rate,
		Capacity: req.Capacity,
	}
	if err := h.Rooms.Create(ctx, room); err != nil {
		if strings.Contains(err.Error(), "1062") {
			return c.JSON(http.StatusConflict, echo.Map{"error": "room number already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create room"})
	}

	h.Cache.Invalidate(ctx, "/api/rooms", "/api/availability")
	return c.JSON(http.StatusCreated, room)
}

// Update handles PUT /api/rooms/:id as a full replacement.
func (h *RoomHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	updated, err := h.Rooms.Update(ctx, model.Room{
		ID:       id,
		Number:   strings.TrimSpace(req.Number),
		Type:     strings.TrimSpace(req.Type),
		Status:   req.Status,
		Rate:     req.Rate,
		Capacity: req.Capacity,
	})
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}

	h.Cache.Invalidate(ctx, "/api/rooms", "/api/availability")
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/rooms/:id. Router policy restricts it to
// managers.
func (h *RoomHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Rooms.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}

	h.Cache.Invalidate(ctx, "/api/rooms", "/api/availability")
	return c.NoContent(http.StatusNoContent)
}
