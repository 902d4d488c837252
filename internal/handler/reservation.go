package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-front-desk/internal/middleware"
	"github.com/iliyamo/hotel-front-desk/internal/model"
	"github.com/iliyamo/hotel-front-desk/internal/queue"
	"github.com/iliyamo/hotel-front-desk/internal/repository"
)

// reservationRoutes are the cached GETs a reservation mutation can stale.
var reservationRoutes = []string{
	"/api/reservations",
	"/api/availability",
	"/api/notifications",
	"/api/loyalty",
	"/api/reports/booking-sources",
}

// ReservationHandler serves the reservations collection. Creates
// denormalize guest and room display fields so lists render without joins.
type ReservationHandler struct {
	Reservations *repository.ReservationRepo
	Guests       *repository.GuestRepo
	Rooms        *repository.RoomRepo
	Cache        *middleware.Invalidator
}

func NewReservationHandler(res *repository.ReservationRepo, guests *repository.GuestRepo, rooms *repository.RoomRepo, cache *middleware.Invalidator) *ReservationHandler {
	if res == nil || guests == nil || rooms == nil {
		panic("handler: nil repository passed to NewReservationHandler")
	}
	return &ReservationHandler{Reservations: res, Guests: guests, Rooms: rooms, Cache: cache}
}

type createReservationReq struct {
	GuestID           uint64  `json:"guestId" validate:"required"`
	RoomID            uint64  `json:"roomId" validate:"required"`
	CheckIn           string  `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut          string  `json:"checkOut" validate:"required,datetime=2006-01-02"`
	TotalAmount       float64 `json:"totalAmount" validate:"gte=0"`
	Status            string  `json:"status"`
	GuestsCount       int     `json:"guestsCount" validate:"gte=0"`
	ChildrenCount     int     `json:"childrenCount" validate:"gte=0"`
	EarlyCheckIn      bool    `json:"earlyCheckIn"`
	LateCheckOut      bool    `json:"lateCheckOut"`
	ExtraBed          bool    `json:"extraBed"`
	DownPaymentAmount float64 `json:"downPaymentAmount" validate:"gte=0"`
	DownPaymentMethod string  `json:"downPaymentMethod"`
	BookingSource     string  `json:"bookingSource"`
}

// List handles GET /api/reservations, newest first.
func (h *ReservationHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	reservations, err := h.Reservations.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"reservations": reservations})
}

// Create handles POST /api/reservations. The referenced guest and room
// must exist; their display fields are copied onto the reservation at
// booking time. A booked event is published best-effort.
func (h *ReservationHandler) Create(c echo.Context) error {
	var req createReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.CheckOut <= req.CheckIn {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "checkOut must be after checkIn"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	guest, err := h.Guests.GetByID(ctx, req.GuestID)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "guest not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	room, err := h.Rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = model.ReservationStatusConfirmed
	}

	res := &model.Reservation{
		GuestID:           req.GuestID,
		RoomID:            req.RoomID,
		CheckIn:           req.CheckIn,
		CheckOut:          req.CheckOut,
		TotalAmount:       req.TotalAmount,
		Status:            status,
		GuestsCount:       req.GuestsCount,
		ChildrenCount:     req.ChildrenCount,
		EarlyCheckIn:      req.EarlyCheckIn,
		LateCheckOut:      req.LateCheckOut,
		ExtraBed:          req.ExtraBed,
		DownPaymentAmount: req.DownPaymentAmount,
		DownPaymentMethod: req.DownPaymentMethod,
		BookingSource:     req.BookingSource,
		GuestName:         guest.Name,
		RoomType:          room.Type,
		RoomNumber:        room.Number,
	}
	if err := h.Reservations.Create(ctx, res); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create reservation"})
	}

	// A down broker must not fail the booking.
	_ = queue.PublishReservationBooked(ctx, queue.ReservationBookedEvent{
		ReservationID: res.ID,
		GuestID:       res.GuestID,
		GuestName:     res.GuestName,
		RoomID:        res.RoomID,
		RoomNumber:    res.RoomNumber,
		RoomType:      res.RoomType,
		CheckIn:       res.CheckIn,
		CheckOut:      res.CheckOut,
		TotalAmount:   res.TotalAmount,
		BookingSource: res.BookingSource,
		BookedAt:      time.Now().UTC().Format(time.RFC3339),
	})

	h.Cache.Invalidate(ctx, reservationRoutes...)
	return c.JSON(http.StatusCreated, res)
}

// UpdateStatus handles PATCH /api/reservations/:id.
func (h *ReservationHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	status := strings.TrimSpace(body.Status)
	if status == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status is required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	updated, err := h.Reservations.UpdateStatus(ctx, id, status)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}

	h.Cache.Invalidate(ctx, reservationRoutes...)
	return c.JSON(http.StatusOK, updated)
}
