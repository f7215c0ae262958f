package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oportuna/career-assistant/internal/core/domain"
)

const collectionHistory = "HistoricoConversa"

// On-disk role encoding, kept compatible with the documents the original
// deployment wrote: "human" for user turns, "ai" for assistant turns.
const (
	typeHuman = "human"
	typeAI    = "ai"
)

type ConversationRepository struct {
	col *mongo.Collection
}

func NewConversationRepository(db *mongo.Database) *ConversationRepository {
	return &ConversationRepository{col: db.Collection(collectionHistory)}
}

type conversationDoc struct {
	UserID      string       `bson:"user_id"`
	Messages    []messageDoc `bson:"messages"`
	LastUpdated time.Time    `bson:"last_updated"`
}

type messageDoc struct {
	Type      string    `bson:"type"`
	Content   string    `bson:"content"`
	Timestamp time.Time `bson:"timestamp"`
}

// Load returns the conversation log for a user, or an empty log when no
// document exists yet.
func (r *ConversationRepository) Load(ctx context.Context, userID string) (*domain.ConversationLog, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var doc conversationDoc
	err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &domain.ConversationLog{UserID: userID}, nil
		}
		return nil, fmt.Errorf("load conversation: %w", err)
	}

	log := &domain.ConversationLog{
		UserID:      doc.UserID,
		Messages:    make([]domain.Message, 0, len(doc.Messages)),
		LastUpdated: doc.LastUpdated.UTC(),
	}
	for _, m := range doc.Messages {
		role := domain.RoleAssistant
		if m.Type == typeHuman {
			role = domain.RoleUser
		}
		log.Messages = append(log.Messages, domain.Message{
			Role:      role,
			Content:   m.Content,
			Timestamp: m.Timestamp.UTC(),
		})
	}
	return log, nil
}

// Save replaces the full message sequence for a user in a single upsert, so a
// concurrent Load observes either the previous or the new sequence, never a
// partial write.
func (r *ConversationRepository) Save(ctx context.Context, userID string, messages []domain.Message) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	doc := newConversationDoc(userID, messages, time.Now())

	_, err := r.col.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": doc},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("save conversation: %w", err)
	}
	return nil
}

// newConversationDoc encodes the full message sequence with the write stamp.
// last_updated always carries the stamp of the latest write, so it never
// decreases under Save's full-replacement upsert.
func newConversationDoc(userID string, messages []domain.Message, now time.Time) conversationDoc {
	docs := make([]messageDoc, 0, len(messages))
	for _, m := range messages {
		t := typeAI
		if m.Role == domain.RoleUser {
			t = typeHuman
		}
		docs = append(docs, messageDoc{Type: t, Content: m.Content, Timestamp: m.Timestamp.UTC()})
	}
	return conversationDoc{
		UserID:      userID,
		Messages:    docs,
		LastUpdated: now.UTC(),
	}
}

// EnsureIndexes creates the user_id lookup index on the history collection.
func (r *ConversationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}
