package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-front-desk/internal/middleware"
	"github.com/iliyamo/hotel-front-desk/internal/model"
	"github.com/iliyamo/hotel-front-desk/internal/repository"
)

// InvoiceHandler serves plain invoice CRUD. Billing flows that chain
// invoice and reservation updates live in BillingHandler.
type InvoiceHandler struct {
	Invoices     *repository.InvoiceRepo
	Reservations *repository.ReservationRepo
	Cache        *middleware.Invalidator
}

func NewInvoiceHandler(invoices *repository.InvoiceRepo, reservations *repository.ReservationRepo, cache *middleware.Invalidator) *InvoiceHandler {
	if invoices == nil || reservations == nil {
		panic("handler: nil repository passed to NewInvoiceHandler")
	}
	return &InvoiceHandler{Invoices: invoices, Reservations: reservations, Cache: cache}
}

type createInvoiceReq struct {
	ReservationID     uint64  `json:"reservationId" validate:"required"`
	GuestName         string  `json:"guestName"`
	RoomNumber        string  `json:"roomNumber"`
	CheckInDate       string  `json:"checkInDate" validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate      string  `json:"checkOutDate" validate:"omitempty,datetime=2006-01-02"`
	RoomCharge        float64 `json:"roomCharge" validate:"gte=0"`
	AdditionalCharges float64 `json:"additionalCharges"`
	PaymentMethod     string  `json:"paymentMethod"`
}

// List handles GET /api/invoices.
func (h *InvoiceHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	invoices, err := h.Invoices.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"invoices": invoices})
}

// Create handles POST /api/invoices. The status always starts unpaid;
// clients cannot issue a pre-paid invoice. Fields missing from the body
// are filled from the reservation.
func (h *InvoiceHandler) Create(c echo.Context) error {
	var req createInvoiceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	res, err := h.Reservations.GetByID(ctx, req.ReservationID)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	inv := &model.Invoice{
		ReservationID:     res.ID,
		GuestName:         req.GuestName,
		RoomNumber:        req.RoomNumber,
		CheckInDate:       req.CheckInDate,
		CheckOutDate:      req.CheckOutDate,
		RoomCharge:        req.RoomCharge,
		AdditionalCharges: req.AdditionalCharges,
		TotalAmount:       req.RoomCharge + req.AdditionalCharges,
		PaymentMethod:     req.PaymentMethod,
	}
	if inv.GuestName == "" {
		inv.GuestName = res.GuestName
	}
	if inv.RoomNumber == "" {
		inv.RoomNumber = res.RoomNumber
	}
	if inv.CheckInDate == "" {
		inv.CheckInDate = res.CheckIn
	}
	if inv.CheckOutDate == "" {
		inv.CheckOutDate = res.CheckOut
	}

	if err := h.Invoices.Create(ctx, inv); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create invoice"})
	}

	h.Cache.Invalidate(ctx, "/api/invoices")
	return c.JSON(http.StatusCreated, echo.Map{"invoice": inv})
}

// UpdateStatus handles PATCH /api/invoices/:id.
func (h *InvoiceHandler) UpdateStatus(c echo.Context) error {
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
	switch status {
	case model.InvoiceStatusPaid, model.InvoiceStatusUnpaid, model.InvoiceStatusPartiallyPaid:
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	updated, err := h.Invoices.UpdateStatus(ctx, id, status)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "invoice not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}

	h.Cache.Invalidate(ctx, "/api/invoices")
	return c.JSON(http.StatusOK, updated)
}
