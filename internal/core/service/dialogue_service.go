package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/oportuna/career-assistant/internal/api/metrics"
	"github.com/oportuna/career-assistant/internal/core/domain"
	"github.com/oportuna/career-assistant/internal/core/ports"
)

// Sampling profiles. The elicitation profile keeps the assistant terse while
// questioning; the reply profile allows fuller free responses; classifier
// calls are deterministic single-token answers.
var (
	elicitationParams = ports.ChatParams{Temperature: 0.3, MaxTokens: 150, TopP: 1}
	replyParams       = ports.ChatParams{Temperature: 0.7, MaxTokens: 820, TopP: 1}
	classifierParams  = ports.ChatParams{Temperature: 0, MaxTokens: 10, TopP: 1}
)

// searchOverfetch compensates for client-side user filtering: the index is
// shared across users, so top-k is fetched 3x wider, capped at 10.
const (
	searchOverfetch = 3
	searchCap       = 10
)

// DialogueService is the conversation controller. It is stateless across
// requests: every turn reconstructs the conversation from the repository,
// mutates it, and persists it back.
type DialogueService struct {
	conversations ports.ConversationRepository
	index         ports.VectorIndex
	llm           ports.LLMClient
	handoff       ports.HandoffService
	log           zerolog.Logger
}

func NewDialogueService(
	conversations ports.ConversationRepository,
	index ports.VectorIndex,
	llm ports.LLMClient,
	handoff ports.HandoffService,
	log zerolog.Logger,
) *DialogueService {
	return &DialogueService{
		conversations: conversations,
		index:         index,
		llm:           llm,
		handoff:       handoff,
		log:           log,
	}
}

// History returns the persisted conversation for a user. A fresh user gets
// an assistant-first greeting: the persona alone is sent to the model and
// the result is persisted as the first message.
func (s *DialogueService) History(ctx context.Context, userID string) ([]domain.Message, error) {
	conv, err := s.conversations.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !conv.Empty() {
		return conv.Messages, nil
	}

	greeting, err := s.complete(ctx, "greeting", []ports.ChatMessage{
		{Role: ports.ChatRoleSystem, Content: personaPrompt},
	}, elicitationParams)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("greeting generation failed")
		return []domain.Message{domain.NewMessage(domain.RoleAssistant, fallbackReply)}, nil
	}

	first := domain.NewMessage(domain.RoleAssistant, greeting)
	if err := s.conversations.Save(ctx, userID, []domain.Message{first}); err != nil {
		return nil, err
	}
	return []domain.Message{first}, nil
}

// HandleTurn processes one user message: persist, index, reply, persist,
// then run the two-gate handoff protocol. The durable sequence observed by
// any later Load is prefix-consistent: absent, partial up to the user
// append, or complete.
func (s *DialogueService) HandleTurn(ctx context.Context, userID, message string) (*ports.TurnResult, error) {
	if strings.TrimSpace(message) == "" {
		return nil, domain.ErrEmptyMessage
	}

	conv, err := s.conversations.Load(ctx, userID)
	if err != nil {
		metrics.TurnsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	// First save: the user's input must survive a crash during the LLM call.
	msgs := append(conv.Messages, domain.NewMessage(domain.RoleUser, message))
	if err := s.conversations.Save(ctx, userID, msgs); err != nil {
		metrics.TurnsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	// Vector indexing is best-effort: only user utterances, faults swallowed.
	if err := s.index.Add(ctx, message, ports.VectorMetadata{Role: string(domain.RoleUser), UserID: userID}); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("vector index add failed, continuing turn")
		metrics.VectorIndexErrorsTotal.Inc()
	}

	reply, err := s.complete(ctx, "reply", s.transcript(msgs), replyParams)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("reply generation failed")
		metrics.TurnsTotal.WithLabelValues("fallback").Inc()
		return &ports.TurnResult{Reply: fallbackReply}, nil
	}

	// Second save: the assistant turn is durable before any gating runs.
	msgs = append(msgs, domain.NewMessage(domain.RoleAssistant, reply))
	if err := s.conversations.Save(ctx, userID, msgs); err != nil {
		metrics.TurnsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	intent := s.classifyIntent(ctx, msgs)
	if !intent && strings.Contains(reply, terminalPhrase) {
		// Redundant trigger: the persona declared the profile complete.
		s.log.Info().Str("user_id", userID).Msg("terminal phrase detected, treating intent as positive")
		intent = true
	}

	if !intent {
		metrics.TurnsTotal.WithLabelValues("ok").Inc()
		return &ports.TurnResult{Reply: reply}, nil
	}

	if !s.classifySufficiency(ctx, msgs) {
		msgs = append(msgs, domain.NewMessage(domain.RoleAssistant, continuationMessage))
		if err := s.conversations.Save(ctx, userID, msgs); err != nil {
			metrics.TurnsTotal.WithLabelValues("error").Inc()
			return nil, err
		}
		metrics.TurnsTotal.WithLabelValues("ok").Inc()
		return &ports.TurnResult{Reply: reply + "\n\n" + continuationMessage}, nil
	}

	s.handoff.Dispatch(ctx, userID)

	msgs = append(msgs, domain.NewMessage(domain.RoleAssistant, processingMessage))
	if err := s.conversations.Save(ctx, userID, msgs); err != nil {
		metrics.TurnsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.TurnsTotal.WithLabelValues("ok").Inc()
	return &ports.TurnResult{Reply: reply + "\n\n" + processingMessage, ShowOpportunities: true}, nil
}

// RelevantUtterances retrieves up to k of the user's own indexed utterances
// most similar to the query. The index is shared, so results are over-fetched
// and filtered by user here.
func (s *DialogueService) RelevantUtterances(ctx context.Context, userID, query string, k int) ([]string, error) {
	fetch := k * searchOverfetch
	if fetch < k {
		fetch = k
	}
	if fetch > searchCap {
		fetch = searchCap
	}

	hits, err := s.index.Search(ctx, query, fetch)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, k)
	for _, hit := range hits {
		if hit.Metadata.UserID != userID {
			continue
		}
		out = append(out, hit.Content)
		if len(out) == k {
			break
		}
	}
	return out, nil
}

// transcript maps the persona plus the full log one-to-one onto the
// completion wire format.
func (s *DialogueService) transcript(msgs []domain.Message) []ports.ChatMessage {
	out := make([]ports.ChatMessage, 0, len(msgs)+1)
	out = append(out, ports.ChatMessage{Role: ports.ChatRoleSystem, Content: personaPrompt})
	for _, m := range msgs {
		role := ports.ChatRoleAssistant
		if m.Role == domain.RoleUser {
			role = ports.ChatRoleUser
		}
		out = append(out, ports.ChatMessage{Role: role, Content: m.Content})
	}
	return out
}

// classifyIntent asks whether the user wants recommendations now.
// Fail-closed: any LLM error is a negative.
func (s *DialogueService) classifyIntent(ctx context.Context, msgs []domain.Message) bool {
	return s.classify(ctx, "intent", msgs, intentPrompt)
}

// classifySufficiency asks whether all six profile categories are covered.
// Fail-closed as well: a misbehaving model must never cause a spurious handoff.
func (s *DialogueService) classifySufficiency(ctx context.Context, msgs []domain.Message) bool {
	return s.classify(ctx, "sufficiency", msgs, sufficiencyPrompt)
}

func (s *DialogueService) classify(ctx context.Context, name string, msgs []domain.Message, question string) bool {
	prompt := append(s.transcript(msgs), ports.ChatMessage{Role: ports.ChatRoleUser, Content: question})

	answer, err := s.complete(ctx, name, prompt, classifierParams)
	if err != nil {
		s.log.Warn().Err(err).Str("classifier", name).Msg("classifier call failed, treating as negative")
		metrics.ClassifierDecisionsTotal.WithLabelValues(name, "error").Inc()
		return false
	}

	positive := strings.Contains(strings.ToLower(answer), "sim")
	decision := "negative"
	if positive {
		decision = "positive"
	}
	metrics.ClassifierDecisionsTotal.WithLabelValues(name, decision).Inc()
	return positive
}

func (s *DialogueService) complete(ctx context.Context, kind string, msgs []ports.ChatMessage, params ports.ChatParams) (string, error) {
	start := time.Now()
	reply, err := s.llm.Chat(ctx, msgs, params)
	metrics.LLMRequestDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.LLMRequestsTotal.WithLabelValues(kind, "error").Inc()
		return "", err
	}
	metrics.LLMRequestsTotal.WithLabelValues(kind, "ok").Inc()
	return reply, nil
}
