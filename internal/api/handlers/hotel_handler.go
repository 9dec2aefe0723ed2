package handlers

import (
	"errors"
	"time"

	"guestdesk/internal/dto"
	"guestdesk/internal/models"
	"guestdesk/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type HotelHandler struct {
	hotels    service.HotelStore
	context   *service.ContextService
	analytics *service.AnalyticsService
	logger    *zap.Logger
}

func NewHotelHandler(
	hotels service.HotelStore,
	contextService *service.ContextService,
	analytics *service.AnalyticsService,
	logger *zap.Logger,
) *HotelHandler {
	return &HotelHandler{
		hotels:    hotels,
		context:   contextService,
		analytics: analytics,
		logger:    logger,
	}
}

// ListHotels godoc
// @Summary List hotels
// @Tags hotels
// @Produce json
// @Success 200 {array} dto.HotelResponse
// @Security Bearer
// @Router /api/v1/hotels [get]
func (h *HotelHandler) ListHotels(c *fiber.Ctx) error {
	hotels, err := h.hotels.List(c.Context())
	if err != nil {
		h.logger.Error("Failed to list hotels", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list hotels",
		})
	}

	resp := make([]dto.HotelResponse, 0, len(hotels))
	for _, hotel := range hotels {
		resp = append(resp, toHotelResponse(hotel))
	}

	return c.JSON(resp)
}

// CreateHotel godoc
// @Summary Create a hotel
// @Tags hotels
// @Accept json
// @Produce json
// @Param request body dto.CreateHotelRequest true "Hotel"
// @Success 201 {object} dto.HotelResponse
// @Failure 400 {object} map[string]string
// @Security Bearer
// @Router /api/v1/hotels [post]
func (h *HotelHandler) CreateHotel(c *fiber.Ctx) error {
	var req dto.CreateHotelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Hotel name is required",
		})
	}

	now := time.Now()
	hotel := &models.Hotel{
		ID:        uuid.New(),
		Name:      req.Name,
		Address:   req.Address,
		City:      req.City,
		Country:   req.Country,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.hotels.Create(c.Context(), hotel); err != nil {
		h.logger.Error("Failed to create hotel", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create hotel",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(toHotelResponse(hotel))
}

// GetHotel godoc
// @Summary Get a hotel
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} dto.HotelResponse
// @Failure 404 {object} map[string]string
// @Security Bearer
// @Router /api/v1/hotels/{id} [get]
func (h *HotelHandler) GetHotel(c *fiber.Ctx) error {
	hotel, ok := h.lookupHotel(c)
	if !ok {
		return nil
	}
	return c.JSON(toHotelResponse(hotel))
}

// GetAttractions godoc
// @Summary Nearby attractions for a hotel
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Param radius query int false "Search radius in meters"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Security Bearer
// @Router /api/v1/hotels/{id}/attractions [get]
func (h *HotelHandler) GetAttractions(c *fiber.Ctx) error {
	hotel, ok := h.lookupHotel(c)
	if !ok {
		return nil
	}

	radius := c.QueryInt("radius", 0)
	attractions, err := h.context.NearbyAttractions(c.Context(), hotel, radius)
	if err != nil {
		h.logger.Error("Failed to fetch attractions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch attractions",
		})
	}

	return c.JSON(fiber.Map{
		"hotel_id":    hotel.ID.String(),
		"attractions": attractions,
	})
}

// GetAnalytics godoc
// @Summary Booking analytics for a hotel
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} service.BookingStats
// @Failure 404 {object} map[string]string
// @Security Bearer
// @Router /api/v1/hotels/{id}/analytics [get]
func (h *HotelHandler) GetAnalytics(c *fiber.Ctx) error {
	hotel, ok := h.lookupHotel(c)
	if !ok {
		return nil
	}

	stats, err := h.analytics.Analyze(c.Context(), hotel.ID)
	if err != nil {
		h.logger.Error("Failed to analyze bookings", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to analyze bookings",
		})
	}

	return c.JSON(stats)
}

// lookupHotel resolves the :id path parameter; on failure it has already
// written the error response and returns ok=false.
func (h *HotelHandler) lookupHotel(c *fiber.Ctx) (*models.Hotel, bool) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid hotel id",
		})
		return nil, false
	}

	hotel, err := h.hotels.GetByID(c.Context(), id)
	if errors.Is(err, pgx.ErrNoRows) {
		_ = c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Hotel not found",
		})
		return nil, false
	}
	if err != nil {
		h.logger.Error("Failed to get hotel", zap.Error(err))
		_ = c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get hotel",
		})
		return nil, false
	}

	return hotel, true
}

func toHotelResponse(hotel *models.Hotel) dto.HotelResponse {
	return dto.HotelResponse{
		ID:      hotel.ID.String(),
		Name:    hotel.Name,
		Address: hotel.Address,
		City:    hotel.City,
		Country: hotel.Country,
	}
}
