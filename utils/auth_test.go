package utils

import (
	"errors"
	"testing"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("green-thumb-42")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	if hash == "green-thumb-42" {
		t.Error("Expected hash to differ from the plain password")
	}

	if !CheckPasswordHash("green-thumb-42", hash) {
		t.Error("Expected the correct password to verify")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Error("Expected a wrong password to fail verification")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")
	SetJWTExpiry(1)

	token, err := GenerateToken("64f1a2b3c4d5e6f7a8b9c0d1", "jane@example.com", "user")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}
	if claims.UserID != "64f1a2b3c4d5e6f7a8b9c0d1" {
		t.Errorf("Expected user ID to round trip, got %s", claims.UserID)
	}
	if claims.Email != "jane@example.com" {
		t.Errorf("Expected email to round trip, got %s", claims.Email)
	}
	if claims.Role != "user" {
		t.Errorf("Expected role to round trip, got %s", claims.Role)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	SetJWTSecret("test-secret")

	if _, err := ValidateToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	SetJWTSecret("first-secret")
	token, err := GenerateToken("64f1a2b3c4d5e6f7a8b9c0d1", "jane@example.com", "user")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	SetJWTSecret("second-secret")
	if _, err := ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}
