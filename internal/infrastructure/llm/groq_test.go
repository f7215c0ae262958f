package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oportuna/career-assistant/internal/core/ports"
)

func TestChat_SendsRequestAndReturnsFirstChoice(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected auth header: %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  Olá!  "}}]}`))
	}))
	defer srv.Close()

	client := NewGroqClient(srv.URL, "test-key", "llama-3.3-70b-versatile")
	reply, err := client.Chat(context.Background(), []ports.ChatMessage{
		{Role: ports.ChatRoleSystem, Content: "persona"},
		{Role: ports.ChatRoleUser, Content: "Oi"},
	}, ports.ChatParams{Temperature: 0.7, MaxTokens: 820, TopP: 1})
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}

	if reply != "Olá!" {
		t.Fatalf("expected trimmed reply, got %q", reply)
	}
	if got.Model != "llama-3.3-70b-versatile" {
		t.Fatalf("unexpected model: %q", got.Model)
	}
	if got.Stream {
		t.Fatalf("streaming must be off")
	}
	if got.Temperature != 0.7 || got.MaxTokens != 820 {
		t.Fatalf("sampling params not forwarded: %+v", got)
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != "system" {
		t.Fatalf("messages not forwarded: %+v", got.Messages)
	}
}

func TestChat_ParamsModelOverridesDefault(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer srv.Close()

	client := NewGroqClient(srv.URL, "test-key", "default-model")
	if _, err := client.Chat(context.Background(), []ports.ChatMessage{{Role: "user", Content: "x"}}, ports.ChatParams{Model: "other-model"}); err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}
	if got.Model != "other-model" {
		t.Fatalf("expected per-call model override, got %q", got.Model)
	}
}

func TestChat_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewGroqClient(srv.URL, "test-key", "m")
	if _, err := client.Chat(context.Background(), []ports.ChatMessage{{Role: "user", Content: "x"}}, ports.ChatParams{}); err == nil {
		t.Fatalf("expected error on non-2xx status")
	}
}

func TestChat_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := NewGroqClient(srv.URL, "test-key", "m")
	if _, err := client.Chat(context.Background(), []ports.ChatMessage{{Role: "user", Content: "x"}}, ports.ChatParams{}); err == nil {
		t.Fatalf("expected error on empty choices")
	}
}

func TestChat_MissingAPIKey(t *testing.T) {
	client := NewGroqClient("http://localhost:0", "", "m")
	if _, err := client.Chat(context.Background(), []ports.ChatMessage{{Role: "user", Content: "x"}}, ports.ChatParams{}); err == nil {
		t.Fatalf("expected error without api key")
	}
}
