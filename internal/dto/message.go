package dto

type CreateMessageRequest struct {
	BookingRef string `json:"booking_ref" validate:"required"`
	Platform   string `json:"platform" validate:"required,oneof=booking.com airbnb"`
	GuestName  string `json:"guest_name"`
	Content    string `json:"content" validate:"required"`
	ReceivedAt string `json:"received_at"`
}

type MessageResponse struct {
	ID         string `json:"id"`
	BookingID  string `json:"booking_id"`
	Platform   string `json:"platform"`
	GuestName  string `json:"guest_name"`
	Content    string `json:"content"`
	Intent     string `json:"intent"`
	ReceivedAt string `json:"received_at"`
	Processed  bool   `json:"processed"`
}

type FetchMessagesResponse struct {
	Stored int `json:"stored"`
}

type ReplyRequest struct {
	Content string `json:"content" validate:"required"`
}

type ReplyResponse struct {
	MessageID     string `json:"message_id"`
	ResponseLogID string `json:"response_log_id"`
	Sent          bool   `json:"sent"`
	SentAt        string `json:"sent_at"`
}
