package models

// ReplyCandidate is one proposed reply text with its confidence and
// provenance. Candidates are built per suggestion request and never
// persisted; Content is the identity used for deduplication.
type ReplyCandidate struct {
	Content    string  `json:"content"`
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
}
