package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-front-desk/internal/middleware"
	"github.com/iliyamo/hotel-front-desk/internal/model"
	"github.com/iliyamo/hotel-front-desk/internal/repository"
	"github.com/iliyamo/hotel-front-desk/internal/service"
)

// GuestHandler serves the guest directory and per-guest aggregation.
type GuestHandler struct {
	Guests       *repository.GuestRepo
	Reservations *repository.ReservationRepo
	Cache        *middleware.Invalidator
}

func NewGuestHandler(guests *repository.GuestRepo, reservations *repository.ReservationRepo, cache *middleware.Invalidator) *GuestHandler {
	if guests == nil || reservations == nil {
		panic("handler: nil repository passed to NewGuestHandler")
	}
	return &GuestHandler{Guests: guests, Reservations: reservations, Cache: cache}
}

type createGuestReq struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}

// List handles GET /api/guests. An optional ?q= matches name or email
// substrings.
func (h *GuestHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	guests, err := h.Guests.List(ctx, strings.TrimSpace(c.QueryParam("q")))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"guests": guests})
}

// Get handles GET /api/guests/:id, stays included.
func (h *GuestHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	g, err := h.Guests.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "guest not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"guest": g})
}

// Create handles POST /api/guests. New guests start with no stay history.
func (h *GuestHandler) Create(c echo.Context) error {
	var req createGuestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	g := &model.Guest{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
		Phone: strings.TrimSpace(req.Phone),
		Stays: []model.Stay{},
	}
	if err := h.Guests.Create(ctx, g); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create guest"})
	}

	h.Cache.Invalidate(ctx, "/api/guests", "/api/loyalty")
	return c.JSON(http.StatusCreated, echo.Map{"guest": g})
}

// Stats handles GET /api/guests/:id/stats: visits, nights and spend
// aggregated over recorded stays and the guest's reservations.
func (h *GuestHandler) Stats(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	g, err := h.Guests.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "guest not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	reservations, err := h.Reservations.ListByGuest(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	stats := service.AggregateGuest(g.Stays, reservations)
	return c.JSON(http.StatusOK, echo.Map{
		"guestId": g.ID,
		"name":    g.Name,
		"stats":   stats,
	})
}
