package service

import (
	"context"
	"fmt"
	"sync"

	"guestdesk/internal/models"
	"guestdesk/pkg/config"

	"go.uber.org/zap"
)

// SuggestionService produces ranked reply candidates for an inbound guest
// message. Three sources feed the ranking: staff-authored templates,
// context-aware generated text, and replies that were actually sent for past
// messages of the same intent. Each source is independently guarded; a
// failing source contributes an empty list and the request still succeeds.
type SuggestionService struct {
	templates TemplateStore
	messages  MessageStore
	responses ResponseLogStore
	context   *ContextService
	cfg       *config.SuggestConfig
	logger    *zap.Logger
}

func NewSuggestionService(
	templates TemplateStore,
	messages MessageStore,
	responses ResponseLogStore,
	contextService *ContextService,
	cfg *config.SuggestConfig,
	logger *zap.Logger,
) *SuggestionService {
	return &SuggestionService{
		templates: templates,
		messages:  messages,
		responses: responses,
		context:   contextService,
		cfg:       cfg,
		logger:    logger,
	}
}

// sourceResult is the explicit outcome of one candidate source query.
// The merge step treats a failure exactly like an empty list.
type sourceResult struct {
	candidates []models.ReplyCandidate
	err        error
}

// Suggest returns at most MaxSuggestions ranked candidates. Sources run
// concurrently; their results are merged in the fixed order template,
// generated, historical once all have completed, since that order decides
// dedup and confidence ties.
func (s *SuggestionService) Suggest(ctx context.Context, hotel *models.Hotel, intent models.IntentCategory) []models.ReplyCandidate {
	sources := []struct {
		name string
		run  func(context.Context) ([]models.ReplyCandidate, error)
	}{
		{"template", func(ctx context.Context) ([]models.ReplyCandidate, error) {
			return s.templateCandidates(ctx, hotel, intent)
		}},
		{"generated", func(ctx context.Context) ([]models.ReplyCandidate, error) {
			return s.generatedCandidates(ctx, hotel, intent)
		}},
		{"historical", func(ctx context.Context) ([]models.ReplyCandidate, error) {
			return s.historicalCandidates(ctx, hotel, intent)
		}},
	}

	results := make([]sourceResult, len(sources))
	var wg sync.WaitGroup
	for i, source := range sources {
		wg.Add(1)
		go func(i int, run func(context.Context) ([]models.ReplyCandidate, error)) {
			defer wg.Done()
			srcCtx, cancel := context.WithTimeout(ctx, s.cfg.SourceTimeout)
			defer cancel()
			candidates, err := run(srcCtx)
			results[i] = sourceResult{candidates: candidates, err: err}
		}(i, source.run)
	}
	wg.Wait()

	lists := make([][]models.ReplyCandidate, len(results))
	for i, result := range results {
		if result.err != nil {
			s.logger.Warn("Suggestion source failed",
				zap.String("source", sources[i].name),
				zap.String("intent", string(intent)),
				zap.Error(result.err),
			)
			continue
		}
		lists[i] = result.candidates
	}

	suggestions := MergeCandidates(s.cfg.MaxSuggestions, lists...)

	s.logger.Info("Suggestions generated",
		zap.String("hotel_id", hotel.ID.String()),
		zap.String("intent", string(intent)),
		zap.Int("count", len(suggestions)),
	)

	return suggestions
}

// templateCandidates turns every active template for the intent into one
// candidate with a fixed confidence.
func (s *SuggestionService) templateCandidates(ctx context.Context, hotel *models.Hotel, intent models.IntentCategory) ([]models.ReplyCandidate, error) {
	templates, err := s.templates.ListActive(ctx, hotel.ID, intent)
	if err != nil {
		return nil, fmt.Errorf("list active templates: %w", err)
	}

	candidates := make([]models.ReplyCandidate, 0, len(templates))
	for _, tpl := range templates {
		candidates = append(candidates, models.ReplyCandidate{
			Content:    tpl.Content,
			Type:       "template",
			Confidence: 0.8,
			Source:     "Template: " + tpl.ID.String(),
		})
	}

	return candidates, nil
}

// generatedCandidates builds the intent-specific response family, enriched
// with freshly fetched context facts. A context lookup failure degrades to
// the base family rather than failing the source.
func (s *SuggestionService) generatedCandidates(ctx context.Context, hotel *models.Hotel, intent models.IntentCategory) ([]models.ReplyCandidate, error) {
	facts, err := s.context.FactsFor(ctx, intent, hotel)
	if err != nil {
		s.logger.Warn("Context lookup failed, generating without facts",
			zap.String("intent", string(intent)),
			zap.Error(err),
		)
		facts = &ContextFacts{}
	}

	return generateResponses(hotel, intent, facts), nil
}

// historicalCandidates proposes replies that were confirmed sent for past
// messages of the same intent, capped by HistoricalLimit.
func (s *SuggestionService) historicalCandidates(ctx context.Context, hotel *models.Hotel, intent models.IntentCategory) ([]models.ReplyCandidate, error) {
	pastMessages, err := s.messages.ListByIntent(ctx, hotel.ID, intent, s.cfg.HistoricalLimit)
	if err != nil {
		return nil, fmt.Errorf("list past messages: %w", err)
	}

	var candidates []models.ReplyCandidate
	for _, msg := range pastMessages {
		reply, err := s.responses.GetSentByMessageID(ctx, msg.ID)
		if err != nil {
			return nil, fmt.Errorf("lookup sent reply: %w", err)
		}
		if reply == nil {
			continue
		}
		candidates = append(candidates, models.ReplyCandidate{
			Content:    reply.Content,
			Type:       "historical",
			Confidence: 0.6,
			Source:     "Historical: Message " + msg.ID.String(),
		})
	}

	return candidates, nil
}
