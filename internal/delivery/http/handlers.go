package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"

	"github.com/smartcity/weatherlookup/internal/domain"
	"github.com/smartcity/weatherlookup/internal/service"
	"github.com/smartcity/weatherlookup/pkg/utils"
)

const defaultHistoryPage = 20

// Handler contains all HTTP handlers
type Handler struct {
	searchSvc    *service.SearchService
	defaultCity  string
	historyLimit int
}

// NewHandler creates a new handler
func NewHandler(searchSvc *service.SearchService, defaultCity string, historyLimit int) *Handler {
	return &Handler{
		searchSvc:    searchSvc,
		defaultCity:  defaultCity,
		historyLimit: historyLimit,
	}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	status, history := "ok", "ok"
	code := fiber.StatusOK
	if err := h.searchSvc.Health(c.UserContext()); err != nil {
		status, history = "degraded", err.Error()
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status":  status,
		"service": "weatherlookup",
		"version": "1.0.0",
		"history": history,
	})
}

// GetWeather runs one search for ?city= and returns the rendered view.
// Without the parameter the default city is searched.
func (h *Handler) GetWeather(c *fiber.Ctx) error {
	// The query string aliases the request buffer, which fasthttp reuses.
	city := fiberutils.CopyString(c.Query("city"))
	if !c.Context().QueryArgs().Has("city") {
		city = h.defaultCity
	}

	presenter := NewViewPresenter()
	if err := h.searchSvc.Search(c.UserContext(), presenter, city); err != nil {
		return err
	}

	return c.JSON(domain.WeatherResponse{
		Data:    presenter.View(),
		Success: true,
	})
}

// GetIcons returns the icon vocabulary in classification order
func (h *Handler) GetIcons(c *fiber.Ctx) error {
	symbols := domain.IconSymbols()
	icons := make([]fiber.Map, 0, len(symbols))
	for _, s := range symbols {
		icons = append(icons, fiber.Map{
			"symbol": s,
			"glyph":  s.Glyph(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    icons,
		"count":   len(icons),
	})
}

// GetHistory returns the newest search log entries
func (h *Handler) GetHistory(c *fiber.Ctx) error {
	limit := utils.ClampInt(c.QueryInt("limit", defaultHistoryPage), 1, h.historyLimit)

	data, err := h.searchSvc.History(c.UserContext(), limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch search history")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
		"count":   len(data),
	})
}

// ErrorHandler renders search errors and fiber errors as JSON
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"
	kind := ""

	var se *domain.SearchError
	var fe *fiber.Error
	switch {
	case errors.As(err, &se):
		code = StatusForKind(se.Kind)
		message = se.UserMessage()
		kind = string(se.Kind)
	case errors.As(err, &fe):
		code = fe.Code
		message = fe.Message
	}

	body := fiber.Map{
		"success": false,
		"error":   true,
		"message": message,
	}
	if kind != "" {
		body["kind"] = kind
	}
	return c.Status(code).JSON(body)
}

// StatusForKind maps a search error kind to an HTTP status
func StatusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return fiber.StatusBadRequest
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindConnectivity, domain.KindMalformedResponse:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
