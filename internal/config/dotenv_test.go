package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/saulo-duarte/quizee-lambda/internal/auth"
	"github.com/saulo-duarte/quizee-lambda/internal/config"
)

func TestLoadReadsSecretFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("JWT_SECRET=from-dotenv\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Chdir(dir)

	// godotenv never overrides a variable that is already set, even to "".
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")

	s := config.Load()
	if s.JWTSecret != "from-dotenv" {
		t.Fatalf("JWTSecret = %q, want from-dotenv", s.JWTSecret)
	}

	auth.Init(s.JWTSecret)
	token, err := auth.GenerateJWT("4b8f6c1e-2d7a-4e3b-9c5d-1a2b3c4d5e6f", "student@example.com", time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := auth.ValidateJWT(token); err != nil {
		t.Errorf("ValidateJWT: %v", err)
	}
}
