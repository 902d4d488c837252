package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-front-desk/internal/middleware"
	"github.com/iliyamo/hotel-front-desk/internal/model"
	"github.com/iliyamo/hotel-front-desk/internal/repository"
)

// SettingsHandler serves the hotel settings singleton.
type SettingsHandler struct {
	Settings *repository.SettingsRepo
	Cache    *middleware.Invalidator
}

func NewSettingsHandler(settings *repository.SettingsRepo, cache *middleware.Invalidator) *SettingsHandler {
	if settings == nil {
		panic("handler: nil repository passed to NewSettingsHandler")
	}
	return &SettingsHandler{Settings: settings, Cache: cache}
}

// Get handles GET /api/settings.
func (h *SettingsHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	s, err := h.Settings.Get(ctx)
	if err != nil {
		if err == repository.ErrSettingsNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "settings not configured"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, s)
}

// Put handles PUT /api/settings. The document is replaced wholesale; there
// is no field-level patching.
func (h *SettingsHandler) Put(c echo.Context) error {
	var s model.Settings
	if err := c.Bind(&s); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if s.HotelName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "hotelName is required"})
	}
	if s.TaxRate < 0 || s.DefaultRoomRate < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rates must not be negative"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Settings.Replace(ctx, s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save failed"})
	}

	h.Cache.Invalidate(ctx, "/api/settings", "/api/rates/quote")
	return c.JSON(http.StatusOK, s)
}
