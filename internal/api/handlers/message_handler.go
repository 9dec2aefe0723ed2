package handlers

import (
	"errors"
	"time"

	"guestdesk/internal/dto"
	"guestdesk/internal/models"
	"guestdesk/internal/platform"
	"guestdesk/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MessageHandler struct {
	messages    *service.MessageService
	suggestions *service.SuggestionService
	intents     *service.IntentService
	hotels      service.HotelStore
	logger      *zap.Logger
}

func NewMessageHandler(
	messages *service.MessageService,
	suggestions *service.SuggestionService,
	intents *service.IntentService,
	hotels service.HotelStore,
	logger *zap.Logger,
) *MessageHandler {
	return &MessageHandler{
		messages:    messages,
		suggestions: suggestions,
		intents:     intents,
		hotels:      hotels,
		logger:      logger,
	}
}

// ListMessages godoc
// @Summary List guest messages for a hotel
// @Tags messages
// @Produce json
// @Param id path string true "Hotel ID"
// @Param platform query string false "Platform filter"
// @Success 200 {array} dto.MessageResponse
// @Security Bearer
// @Router /api/v1/hotels/{id}/messages [get]
func (h *MessageHandler) ListMessages(c *fiber.Ctx) error {
	hotelID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid hotel id",
		})
	}

	messages, err := h.messages.ListMessages(c.Context(), hotelID, models.Platform(c.Query("platform")))
	if err != nil {
		h.logger.Error("Failed to list messages", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list messages",
		})
	}

	resp := make([]dto.MessageResponse, 0, len(messages))
	for _, msg := range messages {
		resp = append(resp, toMessageResponse(msg))
	}

	return c.JSON(resp)
}

// CreateMessage godoc
// @Summary Store a guest message manually
// @Tags messages
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Param request body dto.CreateMessageRequest true "Message"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security Bearer
// @Router /api/v1/hotels/{id}/messages [post]
func (h *MessageHandler) CreateMessage(c *fiber.Ctx) error {
	hotelID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid hotel id",
		})
	}

	var req dto.CreateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Content == "" || req.BookingRef == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "booking_ref and content are required",
		})
	}

	receivedAt, _ := time.Parse(time.RFC3339, req.ReceivedAt)
	msg, err := h.messages.CreateMessage(c.Context(), hotelID, platform.InboundMessage{
		BookingRef: req.BookingRef,
		GuestName:  req.GuestName,
		Content:    req.Content,
		ReceivedAt: receivedAt,
		Platform:   models.Platform(req.Platform),
	})
	if err != nil {
		if errors.Is(err, service.ErrHotelNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Hotel not found",
			})
		}
		h.logger.Error("Failed to create message", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create message",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(toMessageResponse(msg))
}

// FetchMessages godoc
// @Summary Pull new guest messages from the OTA platforms
// @Tags messages
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} dto.FetchMessagesResponse
// @Failure 404 {object} map[string]string
// @Security Bearer
// @Router /api/v1/hotels/{id}/messages/fetch [post]
func (h *MessageHandler) FetchMessages(c *fiber.Ctx) error {
	hotelID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid hotel id",
		})
	}

	stored, err := h.messages.FetchPlatformMessages(c.Context(), hotelID)
	if err != nil {
		if errors.Is(err, service.ErrHotelNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Hotel not found",
			})
		}
		h.logger.Error("Failed to fetch platform messages", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch platform messages",
		})
	}

	return c.JSON(dto.FetchMessagesResponse{Stored: stored})
}

// Suggest godoc
// @Summary Ranked reply suggestions for a guest message
// @Tags messages
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} dto.SuggestionResponse
// @Failure 404 {object} map[string]string
// @Security Bearer
// @Router /api/v1/messages/{id}/suggestions [post]
func (h *MessageHandler) Suggest(c *fiber.Ctx) error {
	messageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid message id",
		})
	}

	msg, err := h.messages.GetMessage(c.Context(), messageID)
	if err != nil {
		if errors.Is(err, service.ErrMessageNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Message not found",
			})
		}
		h.logger.Error("Failed to get message", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get message",
		})
	}

	hotel, err := h.hotels.GetByID(c.Context(), msg.HotelID)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Hotel not found",
		})
	}
	if err != nil {
		h.logger.Error("Failed to get hotel", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get hotel",
		})
	}

	intent := msg.Intent
	if intent == "" {
		intent = h.intents.Classify(msg.Content)
	}

	suggestions := h.suggestions.Suggest(c.Context(), hotel, intent)

	return c.JSON(dto.SuggestionResponse{
		MessageID:      msg.ID.String(),
		MessageContent: msg.Content,
		Intent:         string(intent),
		Suggestions:    suggestions,
	})
}

// Reply godoc
// @Summary Send a reply for a guest message
// @Tags messages
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Param request body dto.ReplyRequest true "Reply"
// @Success 200 {object} dto.ReplyResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security Bearer
// @Router /api/v1/messages/{id}/reply [post]
func (h *MessageHandler) Reply(c *fiber.Ctx) error {
	messageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid message id",
		})
	}

	var req dto.ReplyRequest
	if err := c.BodyParser(&req); err != nil || req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Reply content is required",
		})
	}

	log, err := h.messages.SendReply(c.Context(), messageID, req.Content, models.ResponseManual)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMessageNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Message not found",
			})
		case errors.Is(err, service.ErrUnsupportedPlatform):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "No connector for message platform",
			})
		default:
			h.logger.Error("Failed to send reply", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to send reply",
			})
		}
	}

	return c.JSON(dto.ReplyResponse{
		MessageID:     messageID.String(),
		ResponseLogID: log.ID.String(),
		Sent:          log.Sent,
		SentAt:        log.SentAt.Format(time.RFC3339),
	})
}

func toMessageResponse(msg *models.GuestMessage) dto.MessageResponse {
	return dto.MessageResponse{
		ID:         msg.ID.String(),
		BookingID:  msg.BookingID.String(),
		Platform:   string(msg.Platform),
		GuestName:  msg.GuestName,
		Content:    msg.Content,
		Intent:     string(msg.Intent),
		ReceivedAt: msg.ReceivedAt.Format(time.RFC3339),
		Processed:  msg.Processed,
	}
}
