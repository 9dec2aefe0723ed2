package service

import (
	"testing"

	"guestdesk/internal/models"
)

func TestMergeCandidatesRanksByConfidence(t *testing.T) {
	templates := []models.ReplyCandidate{
		{Content: "template reply", Confidence: 0.8, Source: "Template: t1"},
	}
	generated := []models.ReplyCandidate{
		{Content: "generated high", Confidence: 0.9, Source: "Hotel Service Info"},
		{Content: "generated low", Confidence: 0.8, Source: "Standard Response"},
	}

	got := MergeCandidates(3, templates, generated)

	if len(got) != 3 {
		t.Fatalf("got %d candidates, want 3", len(got))
	}
	if got[0].Content != "generated high" {
		t.Errorf("first candidate = %q, want %q", got[0].Content, "generated high")
	}
	// Equal confidence keeps concatenation order: template before generated.
	if got[1].Content != "template reply" {
		t.Errorf("second candidate = %q, want %q", got[1].Content, "template reply")
	}
	if got[2].Content != "generated low" {
		t.Errorf("third candidate = %q, want %q", got[2].Content, "generated low")
	}
}

func TestMergeCandidatesDedupKeepsFirstOccurrence(t *testing.T) {
	// The later duplicate carries a higher confidence; the first occurrence
	// still wins because dedup happens before ranking.
	first := []models.ReplyCandidate{
		{Content: "same text", Confidence: 0.6, Source: "Template: t1"},
	}
	second := []models.ReplyCandidate{
		{Content: "same text", Confidence: 0.9, Source: "Hotel Service Info"},
		{Content: "other text", Confidence: 0.7, Source: "Standard Response"},
	}

	got := MergeCandidates(3, first, second)

	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2", len(got))
	}
	if got[0].Content != "other text" {
		t.Errorf("first candidate = %q, want %q", got[0].Content, "other text")
	}
	if got[1].Confidence != 0.6 {
		t.Errorf("kept duplicate confidence = %v, want 0.6", got[1].Confidence)
	}
	if got[1].Source != "Template: t1" {
		t.Errorf("kept duplicate source = %q, want %q", got[1].Source, "Template: t1")
	}
}

func TestMergeCandidatesTruncates(t *testing.T) {
	var list []models.ReplyCandidate
	for i := 0; i < 10; i++ {
		list = append(list, models.ReplyCandidate{
			Content:    string(rune('a' + i)),
			Confidence: float64(i) / 10,
		})
	}

	got := MergeCandidates(3, list)

	if len(got) != 3 {
		t.Fatalf("got %d candidates, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Confidence > got[i-1].Confidence {
			t.Errorf("candidates not sorted: %v before %v", got[i-1].Confidence, got[i].Confidence)
		}
	}
}

func TestMergeCandidatesEmptyInput(t *testing.T) {
	got := MergeCandidates(3)
	if len(got) != 0 {
		t.Errorf("got %d candidates from no sources, want 0", len(got))
	}

	got = MergeCandidates(3, nil, []models.ReplyCandidate{}, nil)
	if len(got) != 0 {
		t.Errorf("got %d candidates from empty sources, want 0", len(got))
	}
}

func TestMergeCandidatesNoLimit(t *testing.T) {
	list := []models.ReplyCandidate{
		{Content: "a", Confidence: 0.5},
		{Content: "b", Confidence: 0.9},
	}

	got := MergeCandidates(0, list)

	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2", len(got))
	}
	if got[0].Content != "b" {
		t.Errorf("first candidate = %q, want %q", got[0].Content, "b")
	}
}
