package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/oportuna/career-assistant/internal/core/domain"
)

type stubCredentialStore struct {
	creds map[string]domain.Credential
}

func (s *stubCredentialStore) Lookup(email string) (domain.Credential, bool) {
	c, ok := s.creds[email]
	return c, ok
}

func newAuth(creds map[string]domain.Credential, secret string) *AuthService {
	return NewAuthService(&stubCredentialStore{creds: creds}, secret, time.Hour, zerolog.Nop())
}

func TestAuthenticate_Success(t *testing.T) {
	svc := newAuth(map[string]domain.Credential{
		"ana@example.com": {Password: "segredo", UserID: "user123"},
	}, "")

	userID, token, err := svc.Authenticate(context.Background(), "ana@example.com", "segredo")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if userID != "user123" {
		t.Fatalf("unexpected user id: %q", userID)
	}
	if token != "" {
		t.Fatalf("expected empty token without a signing secret, got %q", token)
	}
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	svc := newAuth(map[string]domain.Credential{
		"ana@example.com": {Password: "segredo", UserID: "user123"},
	}, "")

	if _, _, err := svc.Authenticate(context.Background(), "ana@example.com", "errada"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	svc := newAuth(map[string]domain.Credential{}, "")

	if _, _, err := svc.Authenticate(context.Background(), "ghost@example.com", "segredo"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticate_EmptyInputs(t *testing.T) {
	svc := newAuth(map[string]domain.Credential{
		"ana@example.com": {Password: "segredo", UserID: "user123"},
	}, "")

	for _, tc := range []struct{ email, password string }{
		{"", "segredo"},
		{"ana@example.com", ""},
		{"", ""},
	} {
		if _, _, err := svc.Authenticate(context.Background(), tc.email, tc.password); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("email=%q password=%q: expected ErrInvalidCredentials, got %v", tc.email, tc.password, err)
		}
	}
}

func TestAuthenticate_BcryptEntry(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	svc := newAuth(map[string]domain.Credential{
		"ana@example.com": {Password: string(hash), UserID: "user123"},
	}, "")

	if _, _, err := svc.Authenticate(context.Background(), "ana@example.com", "segredo"); err != nil {
		t.Fatalf("hashed entry should match: %v", err)
	}
	if _, _, err := svc.Authenticate(context.Background(), "ana@example.com", "errada"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password against hash, got %v", err)
	}
}

func TestAuthenticate_TokenClaims(t *testing.T) {
	svc := newAuth(map[string]domain.Credential{
		"ana@example.com": {Password: "segredo", UserID: "user123"},
	}, "test-secret")

	_, token, err := svc.Authenticate(context.Background(), "ana@example.com", "segredo")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a signed token")
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		t.Fatalf("token is not valid")
	}
	if claims["user_id"] != "user123" || claims["email"] != "ana@example.com" {
		t.Fatalf("unexpected claims: %v", claims)
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("expected an exp claim")
	}
}
