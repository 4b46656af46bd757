package jwt

import (
	"testing"
	"time"

	"medimind-portal/config"

	"github.com/google/uuid"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "jane@example.com", 3, "provider")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if tokenID == "" {
		t.Fatal("expected a non-empty token ID")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("user ID mismatch: got %s", claims.UserID)
	}
	if claims.Email != "jane@example.com" {
		t.Errorf("email mismatch: got %s", claims.Email)
	}
	if claims.RoleID != 3 {
		t.Errorf("role ID mismatch: got %d", claims.RoleID)
	}
	if claims.Scheme != "provider" {
		t.Errorf("scheme mismatch: got %s", claims.Scheme)
	}
	if claims.TokenType != AccessToken {
		t.Errorf("token type mismatch: got %s", claims.TokenType)
	}
	if claims.TokenID != tokenID {
		t.Errorf("token ID mismatch: got %s, want %s", claims.TokenID, tokenID)
	}
}

func TestRefreshTokenCarriesScheme(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "", 3, "record")
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("token type mismatch: got %s", claims.TokenType)
	}
	if claims.Scheme != "record" {
		t.Errorf("scheme mismatch: got %s", claims.Scheme)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := newTestService()
	token, _, err := svc.GenerateAccessToken(uuid.New(), "a@b.c", 3, "provider")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	other := NewJWTService(config.JWTConfig{
		Secret:       "different-secret",
		AccessExpiry: 15 * time.Minute,
	})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: -time.Minute,
	})
	token, _, err := svc.GenerateAccessToken(uuid.New(), "a@b.c", 3, "provider")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Error("expected validation to fail for an expired token")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestService()
	if _, err := svc.ValidateToken("not-a-jwt"); err == nil {
		t.Error("expected validation to fail for malformed input")
	}
}
