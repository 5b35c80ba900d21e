package config

import (
	"strings"
	"testing"
)

// TestDSN проверяет сборку строки подключения с экранированием пароля.
func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.local",
		Port:     5433,
		User:     "compass",
		Password: "p@ss/word",
		Name:     "cashcompass",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	if !strings.HasPrefix(dsn, "postgres://") {
		t.Fatalf("expected postgres scheme, got %s", dsn)
	}
	if !strings.Contains(dsn, "db.local:5433") {
		t.Fatalf("expected host and port in DSN, got %s", dsn)
	}
	if strings.Contains(dsn, "p@ss/word") {
		t.Fatalf("expected password to be escaped, got %s", dsn)
	}
	if !strings.Contains(dsn, "sslmode=disable") {
		t.Fatalf("expected sslmode query, got %s", dsn)
	}
}

// TestLoadBudgetScope проверяет выбор области учета бюджета.
func TestLoadBudgetScope(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("BUDGET_SCOPE", "all")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Budget.Scope != BudgetScopeAll {
		t.Fatalf("expected all scope, got %s", cfg.Budget.Scope)
	}
}

// TestLoadRejectsUnknownBudgetScope проверяет отказ при неизвестной области.
func TestLoadRejectsUnknownBudgetScope(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("BUDGET_SCOPE", "monthly")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown budget scope")
	}
}

// TestLoadRequiresJWTSecret проверяет обязательность секрета токенов.
func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing JWT secret")
	}
}
