package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-front-desk/internal/middleware"
	"github.com/iliyamo/hotel-front-desk/internal/model"
	"github.com/iliyamo/hotel-front-desk/internal/queue"
	"github.com/iliyamo/hotel-front-desk/internal/repository"
	"github.com/iliyamo/hotel-front-desk/internal/service"
)

// BillingHandler exposes the payment flows: down-payment invoices, the
// full-payment chain and the printable invoice view.
type BillingHandler struct {
	Billing      *service.Billing
	Reservations *repository.ReservationRepo
	Invoices     *repository.InvoiceRepo
	Settings     *repository.SettingsRepo
	Cache        *middleware.Invalidator
}

func NewBillingHandler(b *service.Billing, res *repository.ReservationRepo, inv *repository.InvoiceRepo, set *repository.SettingsRepo, cache *middleware.Invalidator) *BillingHandler {
	if b == nil || res == nil || inv == nil || set == nil {
		panic("handler: nil dependency passed to NewBillingHandler")
	}
	return &BillingHandler{Billing: b, Reservations: res, Invoices: inv, Settings: set, Cache: cache}
}

// loadSettings fetches the hotel settings document, translating a missing
// row into nil so the billing service reports it as its own error.
func (h *BillingHandler) loadSettings(c echo.Context) (*model.Settings, error) {
	ctx, cancel := reqCtx(c)
	defer cancel()

	s, err := h.Settings.Get(ctx)
	if err != nil {
		if err == repository.ErrSettingsNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// billingStatus maps a billing pipeline failure to an HTTP status. A
// failure before any write is a client problem; mid-chain failures are
// server-side.
func billingStatus(err error) (int, echo.Map) {
	var be *service.BillingError
	if errors.As(err, &be) {
		return http.StatusInternalServerError, echo.Map{
			"error": "payment processing failed",
			"step":  be.Step.String(),
		}
	}
	if errors.Is(err, service.ErrSettingsNotLoaded) {
		return http.StatusConflict, echo.Map{"error": "hotel settings not configured"}
	}
	return http.StatusInternalServerError, echo.Map{"error": "payment processing failed"}
}

// DownPayment handles POST /api/reservations/:id/invoices/down-payment.
// It issues an invoice for the reservation's down payment and leaves the
// reservation itself untouched.
func (h *BillingHandler) DownPayment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	res, err := h.Reservations.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	settings, err := h.loadSettings(c)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	inv, err := h.Billing.IssueDownPayment(ctx, res, settings)
	if err != nil {
		status, body := billingStatus(err)
		return c.JSON(status, body)
	}

	h.Cache.Invalidate(ctx, "/api/invoices")
	return c.JSON(http.StatusCreated, echo.Map{"invoice": inv})
}

// FullPayment handles POST /api/reservations/:id/payments/full: issue the
// remaining-balance invoice, mark it paid, mark the reservation paid. The
// three steps run in order and the first failure aborts the rest.
func (h *BillingHandler) FullPayment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	res, err := h.Reservations.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	settings, err := h.loadSettings(c)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	inv, err := h.Billing.ProcessFullPayment(ctx, res, settings)
	if err != nil {
		status, body := billingStatus(err)
		return c.JSON(status, body)
	}

	_ = queue.PublishPaymentCompleted(ctx, queue.PaymentCompletedEvent{
		ReservationID: res.ID,
		InvoiceID:     inv.ID,
		InvoiceNumber: inv.Number(),
		GuestName:     inv.GuestName,
		RoomNumber:    inv.RoomNumber,
		Amount:        inv.TotalAmount,
		PaymentMethod: inv.PaymentMethod,
		PaidAt:        time.Now().UTC().Format(time.RFC3339),
	})

	h.Cache.Invalidate(ctx, "/api/invoices", "/api/reservations", "/api/notifications")
	return c.JSON(http.StatusOK, echo.Map{"invoice": inv})
}

// Print handles GET /api/invoices/:id/print: the invoice joined with the
// hotel letterhead fields, balance derived from the stored status.
func (h *BillingHandler) Print(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	inv, err := h.Invoices.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "invoice not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	settings, err := h.Settings.Get(ctx)
	if err != nil {
		if err == repository.ErrSettingsNotFound {
			return c.JSON(http.StatusConflict, echo.Map{"error": "hotel settings not configured"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	return c.JSON(http.StatusOK, service.BuildPrintableInvoice(inv, settings))
}
