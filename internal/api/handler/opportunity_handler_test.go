package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/oportuna/career-assistant/internal/core/domain"
)

type stubHandoffService struct {
	items      []domain.Opportunity
	err        error
	dispatched []string
	gotUserID  string
}

func (s *stubHandoffService) Dispatch(_ context.Context, userID string) {
	s.dispatched = append(s.dispatched, userID)
}

func (s *stubHandoffService) Fetch(_ context.Context, userID string) ([]domain.Opportunity, error) {
	s.gotUserID = userID
	return s.items, s.err
}

func TestOportunidades_ReturnsStoredItems(t *testing.T) {
	svc := &stubHandoffService{items: []domain.Opportunity{
		{Title: "Vaga de vendedor", Description: "Loja no centro", Link: "https://example.com/vaga"},
		{Title: "Curso técnico", Description: "Gratuito", Link: "https://example.com/curso"},
	}}
	h := NewOpportunityHandler(svc)

	rec := postJSON(t, h.Oportunidades, "/oportunidades", `{"user_id":"u1"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	var resp opportunitiesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if svc.gotUserID != "u1" {
		t.Fatalf("expected Fetch called with u1, got %q", svc.gotUserID)
	}
	if len(resp.Oportunidades) != 2 {
		t.Fatalf("expected 2 items, got %d", len(resp.Oportunidades))
	}
	first := resp.Oportunidades[0]
	if first.Titulo != "Vaga de vendedor" || first.Link != "https://example.com/vaga" {
		t.Fatalf("unexpected first item: %+v", first)
	}
}

func TestOportunidades_MissingUserIDReturnsEmptyList(t *testing.T) {
	svc := &stubHandoffService{}
	h := NewOpportunityHandler(svc)

	rec := postJSON(t, h.Oportunidades, "/oportunidades", `{}`)

	var resp opportunitiesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Oportunidades == nil || len(resp.Oportunidades) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", resp.Oportunidades)
	}
	if svc.gotUserID != "" {
		t.Fatalf("service must not be called without a user_id")
	}
}

func TestOportunidades_EmptyForUnknownUser(t *testing.T) {
	svc := &stubHandoffService{items: []domain.Opportunity{}}
	h := NewOpportunityHandler(svc)

	rec := postJSON(t, h.Oportunidades, "/oportunidades", `{"user_id":"ghost"}`)

	var resp opportunitiesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Oportunidades) != 0 {
		t.Fatalf("expected empty list, got %+v", resp.Oportunidades)
	}
}
