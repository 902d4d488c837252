package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-front-desk/internal/repository"
	"github.com/iliyamo/hotel-front-desk/internal/service"
)

// ReportsHandler serves the reporting reads: booking source counts and
// stay price quotes against the current rate schedule.
type ReportsHandler struct {
	Reservations *repository.ReservationRepo
	Settings     *repository.SettingsRepo
}

func NewReportsHandler(reservations *repository.ReservationRepo, settings *repository.SettingsRepo) *ReportsHandler {
	if reservations == nil || settings == nil {
		panic("handler: nil repository passed to NewReportsHandler")
	}
	return &ReportsHandler{Reservations: reservations, Settings: settings}
}

// BookingSources handles GET /api/reports/booking-sources.
func (h *ReportsHandler) BookingSources(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	reservations, err := h.Reservations.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"sources": service.BookingSourceCounts(reservations)})
}

// QuoteRate handles GET /api/rates/quote?roomType=&checkIn=&checkOut=
// with optional boolean extras earlyCheckIn, lateCheckOut and extraBed.
func (h *ReportsHandler) QuoteRate(c echo.Context) error {
	roomType := strings.TrimSpace(c.QueryParam("roomType"))
	checkIn := c.QueryParam("checkIn")
	checkOut := c.QueryParam("checkOut")
	if roomType == "" || checkIn == "" || checkOut == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "roomType, checkIn and checkOut are required"})
	}
	opts := service.StayOptions{
		EarlyCheckIn: c.QueryParam("earlyCheckIn") == "true",
		LateCheckOut: c.QueryParam("lateCheckOut") == "true",
		ExtraBed:     c.QueryParam("extraBed") == "true",
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	settings, err := h.Settings.Get(ctx)
	if err != nil {
		if err == repository.ErrSettingsNotFound {
			return c.JSON(http.StatusConflict, echo.Map{"error": "hotel settings not configured"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	quote, err := service.QuoteStay(settings, roomType, checkIn, checkOut, opts)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, quote)
}
