package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/davidmtz/escolar/internal/app/models"
	"github.com/davidmtz/escolar/internal/pkg/apperrors"
)

func testUser() *models.User {
	return &models.User{
		ID:       1,
		Email:    "user@school.com",
		Role:     models.RoleUser,
		IsActive: true,
	}
}

func TestGenerateAndVerifyToken(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: 30 * time.Minute,
		TokenIssuer:    "escolar.test",
	})

	token, expiresIn, err := svc.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if expiresIn != int((30 * time.Minute).Seconds()) {
		t.Errorf("expiresIn = %d, want %d", expiresIn, int((30 * time.Minute).Seconds()))
	}

	claims, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.Subject != "user@school.com" {
		t.Errorf("subject = %q, want %q", claims.Subject, "user@school.com")
	}
	if claims.Role != string(models.RoleUser) {
		t.Errorf("role = %q, want %q", claims.Role, models.RoleUser)
	}
	if claims.Issuer != "escolar.test" {
		t.Errorf("issuer = %q, want %q", claims.Issuer, "escolar.test")
	}
	if claims.ID == "" {
		t.Error("expected non-empty token ID")
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	issuer := NewJWTService(JWTConfig{SecretKey: "secret-a", AccessTokenExp: time.Minute, TokenIssuer: "escolar.test"})
	verifier := NewJWTService(JWTConfig{SecretKey: "secret-b", AccessTokenExp: time.Minute, TokenIssuer: "escolar.test"})

	token, _, err := issuer.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	_, err = verifier.VerifyToken(token)
	if !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("VerifyToken error = %v, want ErrTokenInvalid", err)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: -time.Minute,
		TokenIssuer:    "escolar.test",
	})

	token, _, err := svc.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	_, err = svc.VerifyToken(token)
	if !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Errorf("VerifyToken error = %v, want ErrTokenExpired", err)
	}
}

func TestVerifyMalformedToken(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Minute, TokenIssuer: "escolar.test"})

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.VerifyToken(token); !errors.Is(err, apperrors.ErrTokenInvalid) {
			t.Errorf("VerifyToken(%q) error = %v, want ErrTokenInvalid", token, err)
		}
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer prefix", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"bare token", "abc.def.ghi", "abc.def.ghi", false},
		{"empty header", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractBearerToken: %v", err)
			}
			if got != tt.want {
				t.Errorf("token = %q, want %q", got, tt.want)
			}
		})
	}
}
