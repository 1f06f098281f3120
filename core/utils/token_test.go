package utils

import (
	"testing"
	"time"

	"meetease/core/config"
	"meetease/core/constants"

	"github.com/google/uuid"
)

func initTestConfig(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret-key")
	if _, err := config.Load(); err != nil {
		t.Fatalf("load config: %v", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	initTestConfig(t)

	userID := uuid.New()
	email := "host@example.com"
	name := "Host"

	token, err := GenerateToken(userID, &email, &name, constants.ScopeTokenAccess, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := ValidateAndParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("user id = %s, want %s", claims.UserID, userID)
	}
	if claims.Email == nil || *claims.Email != email {
		t.Errorf("email = %v, want %s", claims.Email, email)
	}
	if claims.Scope != constants.ScopeTokenAccess {
		t.Errorf("scope = %s, want %s", claims.Scope, constants.ScopeTokenAccess)
	}
}

func TestExpiredTokenIsRejected(t *testing.T) {
	initTestConfig(t)

	token, err := GenerateToken(uuid.New(), nil, nil, constants.ScopeTokenAccess, -time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if _, err := ValidateAndParseToken(token); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestTamperedTokenIsRejected(t *testing.T) {
	initTestConfig(t)

	token, err := GenerateToken(uuid.New(), nil, nil, constants.ScopeTokenAccess, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	tampered := token[:len(token)-2] + "xx"
	if _, err := ValidateAndParseToken(tampered); err == nil {
		t.Fatal("expected error for tampered token, got nil")
	}
}
