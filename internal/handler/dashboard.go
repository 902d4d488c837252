package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-front-desk/internal/repository"
	"github.com/iliyamo/hotel-front-desk/internal/service"
)

// DashboardHandler exposes the derived read models: the availability grid,
// the loyalty leaderboard and today's notifications. Everything here is
// computed from current rows; nothing is stored.
type DashboardHandler struct {
	Rooms        *repository.RoomRepo
	Guests       *repository.GuestRepo
	Reservations *repository.ReservationRepo
}

func NewDashboardHandler(rooms *repository.RoomRepo, guests *repository.GuestRepo, reservations *repository.ReservationRepo) *DashboardHandler {
	if rooms == nil || guests == nil || reservations == nil {
		panic("handler: nil repository passed to NewDashboardHandler")
	}
	return &DashboardHandler{Rooms: rooms, Guests: guests, Reservations: reservations}
}

// Availability handles GET /api/availability?year=&month=. Missing
// parameters default to the current month.
func (h *DashboardHandler) Availability(c echo.Context) error {
	now := time.Now()
	year := now.Year()
	month := now.Month()
	if v := c.QueryParam("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid year"})
		}
		year = n
	}
	if v := c.QueryParam("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid month"})
		}
		month = time.Month(n)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	rooms, err := h.Rooms.List(ctx, "")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	reservations, err := h.Reservations.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	grid := service.MonthlyAvailability(rooms, reservations, year, month)
	return c.JSON(http.StatusOK, echo.Map{
		"year":         year,
		"month":        int(month),
		"availability": grid,
	})
}

// Loyalty handles GET /api/loyalty?limit=. Without a limit the full
// ranking is returned.
func (h *DashboardHandler) Loyalty(c echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid limit"})
		}
		limit = n
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	guests, err := h.Guests.List(ctx, "")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	reservations, err := h.Reservations.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	var entries []service.LoyaltyEntry
	if limit > 0 {
		entries = service.TopLoyal(guests, reservations, limit)
	} else {
		entries = service.RankLoyalty(guests, reservations)
	}
	return c.JSON(http.StatusOK, echo.Map{"loyalty": entries})
}

// Notifications handles GET /api/notifications: check-in, check-out and
// payment alerts derived for today in the server's timezone.
func (h *DashboardHandler) Notifications(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	reservations, err := h.Reservations.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	alerts := service.DeriveNotifications(reservations, time.Now(), time.Local)
	return c.JSON(http.StatusOK, echo.Map{"notifications": alerts})
}
