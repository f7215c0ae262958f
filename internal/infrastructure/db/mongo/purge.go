package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PurgeableCollections are the only collections the maintenance CLI may wipe.
var PurgeableCollections = []string{collectionContext, collectionHistory}

// Purge removes every document from the given collections and reports how
// many documents each one dropped.
func Purge(ctx context.Context, db *mongo.Database, collections []string) (map[string]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	removed := make(map[string]int64, len(collections))
	for _, name := range collections {
		res, err := db.Collection(name).DeleteMany(ctx, bson.M{})
		if err != nil {
			return removed, fmt.Errorf("purge %s: %w", name, err)
		}
		removed[name] = res.DeletedCount
	}
	return removed, nil
}
