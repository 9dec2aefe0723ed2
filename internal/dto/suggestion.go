package dto

import "guestdesk/internal/models"

type SuggestionResponse struct {
	MessageID      string                  `json:"message_id"`
	MessageContent string                  `json:"message_content"`
	Intent         string                  `json:"intent"`
	Suggestions    []models.ReplyCandidate `json:"suggestions"`
}
