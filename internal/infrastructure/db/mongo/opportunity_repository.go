package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oportuna/career-assistant/internal/core/domain"
)

const collectionOpportunities = "Oportunidades"

type OpportunityRepository struct {
	col *mongo.Collection
}

func NewOpportunityRepository(db *mongo.Database) *OpportunityRepository {
	return &OpportunityRepository{col: db.Collection(collectionOpportunities)}
}

// FindByUser returns the opportunity record the pipeline wrote for a user,
// or nil when none exists. Category arrays mix plain strings (legacy writes)
// and {titulo, descricao, link} objects; both shapes are accepted.
func (r *OpportunityRepository) FindByUser(ctx context.Context, userID string) (*domain.OpportunityRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var raw bson.M
	err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&raw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find opportunities: %w", err)
	}

	record := &domain.OpportunityRecord{
		UserID:     userID,
		Categories: make(map[string][]domain.Opportunity),
	}
	for _, cat := range domain.Categories {
		items, ok := raw[cat].(bson.A)
		if !ok {
			continue
		}
		record.Categories[cat] = decodeItems(items)
	}
	return record, nil
}

func decodeItems(items bson.A) []domain.Opportunity {
	out := make([]domain.Opportunity, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			out = append(out, domain.Opportunity{Title: v})
		case bson.M:
			out = append(out, domain.Opportunity{
				Title:       asString(v["titulo"]),
				Description: asString(v["descricao"]),
				Link:        asString(v["link"]),
			})
		case bson.D:
			out = append(out, domain.Opportunity{
				Title:       asString(v.Map()["titulo"]),
				Description: asString(v.Map()["descricao"]),
				Link:        asString(v.Map()["link"]),
			})
		}
	}
	return out
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
