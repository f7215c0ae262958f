package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/oportuna/career-assistant/internal/api/metrics"
	"github.com/oportuna/career-assistant/internal/core/domain"
	"github.com/oportuna/career-assistant/internal/core/ports"
)

// HandoffGuard abstracts the duplicate-dispatch suppression store (Redis).
type HandoffGuard interface {
	AlreadyDispatched(ctx context.Context, userID string) (bool, error)
	MarkDispatched(ctx context.Context, userID string) error
}

// HandoffService invokes the external recommendation pipeline and reads back
// the opportunities it stored.
type HandoffService struct {
	pipeline      ports.RecommendationPipeline
	opportunities ports.OpportunityRepository
	guard         HandoffGuard
	log           zerolog.Logger
}

func NewHandoffService(
	pipeline ports.RecommendationPipeline,
	opportunities ports.OpportunityRepository,
	guard HandoffGuard,
	log zerolog.Logger,
) *HandoffService {
	return &HandoffService{
		pipeline:      pipeline,
		opportunities: opportunities,
		guard:         guard,
		log:           log,
	}
}

// Dispatch synchronously runs the pipeline for one user. Guard errors never
// block the dispatch, and pipeline failures never propagate to the caller —
// the UI retrieves whatever was stored, which may be empty.
func (s *HandoffService) Dispatch(ctx context.Context, userID string) {
	if s.guard != nil {
		dup, err := s.guard.AlreadyDispatched(ctx, userID)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("handoff guard check failed, dispatching anyway")
		} else if dup {
			s.log.Info().Str("user_id", userID).Msg("recent dispatch found, skipping pipeline run")
			metrics.HandoffsTotal.WithLabelValues("suppressed").Inc()
			return
		}
		if err := s.guard.MarkDispatched(ctx, userID); err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("failed to set handoff guard key")
		}
	}

	if err := s.pipeline.Run(ctx, userID); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("recommendation pipeline failed")
		metrics.HandoffsTotal.WithLabelValues("error").Inc()
		return
	}

	s.log.Info().Str("user_id", userID).Msg("recommendation pipeline completed")
	metrics.HandoffsTotal.WithLabelValues("ok").Inc()
}

// Fetch returns the stored opportunities for a user, flattened across
// categories. A user the pipeline never ran for yields an empty list.
func (s *HandoffService) Fetch(ctx context.Context, userID string) ([]domain.Opportunity, error) {
	record, err := s.opportunities.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := record.Flatten()
	if items == nil {
		items = []domain.Opportunity{}
	}
	return items, nil
}
