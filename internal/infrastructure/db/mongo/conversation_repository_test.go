package mongo

import (
	"testing"
	"time"

	"github.com/oportuna/career-assistant/internal/core/domain"
)

func TestNewConversationDoc_EncodesRolesAndStamp(t *testing.T) {
	stamp := time.Date(2026, 8, 30, 12, 0, 0, 0, time.FixedZone("BRT", -3*3600))
	msgs := []domain.Message{
		domain.NewMessage(domain.RoleAssistant, "Olá! Qual é o seu nível de escolaridade?"),
		domain.NewMessage(domain.RoleUser, "Ensino médio"),
	}

	doc := newConversationDoc("u1", msgs, stamp)

	if doc.UserID != "u1" {
		t.Fatalf("unexpected user id: %q", doc.UserID)
	}
	if len(doc.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(doc.Messages))
	}
	if doc.Messages[0].Type != typeAI || doc.Messages[1].Type != typeHuman {
		t.Fatalf("roles not encoded as ai/human: %+v", doc.Messages)
	}
	if !doc.LastUpdated.Equal(stamp) {
		t.Fatalf("last_updated must carry the write stamp, got %v", doc.LastUpdated)
	}
	if doc.LastUpdated.Location() != time.UTC {
		t.Fatalf("last_updated must be UTC, got %v", doc.LastUpdated.Location())
	}
}

func TestNewConversationDoc_LastUpdatedNeverDecreases(t *testing.T) {
	first := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	msgs := []domain.Message{domain.NewMessage(domain.RoleUser, "Oi")}

	prev := newConversationDoc("u1", msgs, first)
	for _, delta := range []time.Duration{0, time.Millisecond, time.Minute} {
		next := newConversationDoc("u1", msgs, first.Add(delta))
		if next.LastUpdated.Before(prev.LastUpdated) {
			t.Fatalf("last_updated went backwards: %v -> %v", prev.LastUpdated, next.LastUpdated)
		}
		prev = next
	}
}
