package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oportuna/career-assistant/internal/core/ports"
)

const (
	collectionContext = "Contexto"
	// vectorSearchIndex is the Atlas Vector Search index defined over the
	// embedding field of the Contexto collection.
	vectorSearchIndex = "contexto"
)

// ContextRepository is the MongoDB-backed vector index over user utterances.
// Embeddings are computed through the Embedder at insertion time; similarity
// retrieval runs through Atlas $vectorSearch.
type ContextRepository struct {
	col      *mongo.Collection
	embedder ports.Embedder
}

func NewContextRepository(db *mongo.Database, embedder ports.Embedder) *ContextRepository {
	return &ContextRepository{col: db.Collection(collectionContext), embedder: embedder}
}

type contextDoc struct {
	Content   string    `bson:"content"`
	Embedding []float32 `bson:"embedding"`
	Role      string    `bson:"role"`
	UserID    string    `bson:"user_id"`
}

// Add embeds one utterance and appends it to the index. Duplicates are
// allowed; every call inserts a new document.
func (r *ContextRepository) Add(ctx context.Context, content string, meta ports.VectorMetadata) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	vectors, err := r.embedder.Embed(ctx, []string{content})
	if err != nil {
		return fmt.Errorf("embed content: %w", err)
	}
	if len(vectors) == 0 {
		return fmt.Errorf("embed content: empty result")
	}

	doc := contextDoc{
		Content:   content,
		Embedding: vectors[0],
		Role:      meta.Role,
		UserID:    meta.UserID,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert context: %w", err)
	}
	return nil
}

// Search returns the k entries nearest to the query. No user filtering
// happens here; callers over-fetch and filter on Metadata.UserID.
func (r *ContextRepository) Search(ctx context.Context, query string, k int) ([]ports.VectorHit, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	vectors, err := r.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("embed query: empty result")
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$vectorSearch", Value: bson.D{
			{Key: "index", Value: vectorSearchIndex},
			{Key: "path", Value: "embedding"},
			{Key: "queryVector", Value: vectors[0]},
			{Key: "numCandidates", Value: k * 10},
			{Key: "limit", Value: k},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "content", Value: 1},
			{Key: "role", Value: 1},
			{Key: "user_id", Value: 1},
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []contextDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("vector search decode: %w", err)
	}

	hits := make([]ports.VectorHit, 0, len(docs))
	for _, d := range docs {
		hits = append(hits, ports.VectorHit{
			Content:  d.Content,
			Metadata: ports.VectorMetadata{Role: d.Role, UserID: d.UserID},
		})
	}
	return hits, nil
}
