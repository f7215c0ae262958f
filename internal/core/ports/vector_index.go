package ports

import "context"

// VectorMetadata tags an indexed utterance with its author and owner.
type VectorMetadata struct {
	Role   string
	UserID string
}

// VectorHit is one similarity-search result.
type VectorHit struct {
	Content  string
	Metadata VectorMetadata
}

// VectorIndex is an append-only similarity index over user utterances.
// Embeddings are computed at insertion time. Duplicate contents are allowed.
type VectorIndex interface {
	Add(ctx context.Context, content string, meta VectorMetadata) error
	// Search returns up to k entries ranked by semantic similarity. Results
	// are not filtered by user; callers filter on Metadata.UserID.
	Search(ctx context.Context, query string, k int) ([]VectorHit, error)
}
