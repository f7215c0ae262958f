package ports

import (
	"context"

	"github.com/oportuna/career-assistant/internal/core/domain"
)

// OpportunityRepository reads the opportunity documents written by the
// external recommendation pipeline.
type OpportunityRepository interface {
	// FindByUser returns the stored record for a user, or nil when the
	// pipeline has not written anything yet.
	FindByUser(ctx context.Context, userID string) (*domain.OpportunityRecord, error)
}

// RecommendationPipeline invokes the external multi-agent pipeline for one
// user and returns after the pipeline has completed.
type RecommendationPipeline interface {
	Run(ctx context.Context, userID string) error
}
