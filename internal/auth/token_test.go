package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

// TestTokenPairRoundTrip проверяет выпуск и разбор пары токенов.
func TestTokenPairRoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", "cashcompass", 15*time.Minute, 24*time.Hour)
	userID := uuid.New()
	refreshID := uuid.New()

	pair, err := manager.NewTokenPair(userID, refreshID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	accessClaims, err := manager.ParseAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("expected valid access token, got %v", err)
	}
	if accessClaims.Subject != userID.String() {
		t.Fatalf("unexpected subject: %s", accessClaims.Subject)
	}

	refreshClaims, err := manager.ParseRefreshToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("expected valid refresh token, got %v", err)
	}
	if refreshClaims.ID != refreshID.String() {
		t.Fatalf("unexpected token id: %s", refreshClaims.ID)
	}
}

// TestParseRejectsWrongType проверяет, что refresh-токен не проходит
// как access и наоборот.
func TestParseRejectsWrongType(t *testing.T) {
	manager := NewTokenManager("test-secret", "cashcompass", 15*time.Minute, 24*time.Hour)

	pair, err := manager.NewTokenPair(uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := manager.ParseAccessToken(pair.RefreshToken); err == nil {
		t.Fatal("expected error for refresh token in access slot")
	}

	if _, err := manager.ParseRefreshToken(pair.AccessToken); err == nil {
		t.Fatal("expected error for access token in refresh slot")
	}
}

// TestHashTokenCompare проверяет сравнение хеша токена.
func TestHashTokenCompare(t *testing.T) {
	hash := HashToken("raw-token")

	if !CompareTokenHash(hash, "raw-token") {
		t.Fatal("expected hash to match original token")
	}

	if CompareTokenHash(hash, "other-token") {
		t.Fatal("expected mismatch for different token")
	}
}
