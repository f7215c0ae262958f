package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/oportuna/career-assistant/internal/core/domain"
)

// CredentialStore abstracts the flat credential file loaded at startup.
type CredentialStore interface {
	Lookup(email string) (domain.Credential, bool)
}

// AuthService validates logins against the credential file and issues a
// session token.
type AuthService struct {
	store     CredentialStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(store CredentialStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{store: store, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Authenticate checks email and password against the store. Emails are
// case-sensitive. Plaintext entries use direct equality; entries with a
// bcrypt prefix are compared as hashes, so the file can be migrated to
// hashed credentials without changing the /login contract.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, string, error) {
	if email == "" || password == "" {
		return "", "", domain.ErrInvalidCredentials
	}

	cred, ok := s.store.Lookup(email)
	if !ok {
		return "", "", domain.ErrInvalidCredentials
	}

	if !passwordMatches(cred.Password, password) {
		s.log.Debug().Str("email", email).Msg("password mismatch")
		return "", "", domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(email, cred.UserID)
	if err != nil {
		return "", "", err
	}

	s.log.Info().Str("user_id", cred.UserID).Msg("login succeeded")
	return cred.UserID, token, nil
}

func passwordMatches(stored, given string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return stored == given
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

func (s *AuthService) generateToken(email, userID string) (string, error) {
	if s.jwtSecret == "" {
		return "", nil
	}
	claims := jwt.MapClaims{
		"email":   email,
		"user_id": userID,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
