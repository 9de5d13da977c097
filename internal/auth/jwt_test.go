package auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/quizee-lambda/internal/auth"
)

const testSecret = "a-long-enough-secret-for-signing-tests"
const testEmail = "student@example.com"

var testUserID = uuid.New().String()

func TestInitPanicsWithoutSecret(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Init() should panic when JWT_SECRET is empty")
		}
	}()

	auth.Init("")
}

func TestGenerateAndValidateJWT(t *testing.T) {
	auth.Init(testSecret)

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testEmail, 5*time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT: %v", err)
		}

		claims, err := auth.ValidateJWT(tokenStr)
		if err != nil {
			t.Fatalf("ValidateJWT: %v", err)
		}
		if claims.UserID != testUserID {
			t.Errorf("UserID = %s, want %s", claims.UserID, testUserID)
		}
		if claims.Email != testEmail {
			t.Errorf("Email = %s, want %s", claims.Email, testEmail)
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testEmail, -time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr)
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("expected ErrTokenExpired, got %v", err)
		}
	})

	t.Run("InvalidSignature", func(t *testing.T) {
		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
			UserID: testUserID,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
		})
		tokenStr, err := forged.SignedString([]byte("another-secret"))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr)
		if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			t.Errorf("expected ErrTokenSignatureInvalid, got %v", err)
		}
	})
}

func TestAuthMiddleware(t *testing.T) {
	auth.Init(testSecret)

	var seen string
	h := auth.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := auth.UserIDFromContext(r.Context())
		if err != nil {
			t.Fatalf("UserIDFromContext: %v", err)
		}
		seen = id.String()
	}))

	t.Run("MissingToken", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("code = %d, want 401", rec.Code)
		}
	})

	t.Run("BearerToken", func(t *testing.T) {
		tokenStr, _ := auth.GenerateJWT(testUserID, testEmail, time.Minute)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+tokenStr)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %d, want 200", rec.Code)
		}
		if seen != testUserID {
			t.Errorf("user id = %s, want %s", seen, testUserID)
		}
	})

	t.Run("CookieToken", func(t *testing.T) {
		seen = ""
		tokenStr, _ := auth.GenerateJWT(testUserID, testEmail, time.Minute)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "jwt", Value: tokenStr})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if seen != testUserID {
			t.Errorf("user id = %s, want %s", seen, testUserID)
		}
	})
}

func TestUserIDFromContextWithoutClaims(t *testing.T) {
	if _, err := auth.UserIDFromContext(context.Background()); err == nil {
		t.Error("expected an error without claims")
	}
}
