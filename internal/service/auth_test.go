package service

import (
	"errors"
	"testing"

	"github.com/ops-console/backend/internal/config"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	svc, err := NewAuthService(config.AuthConfig{
		AdminID:       "admin",
		AdminPassword: "correct-horse-battery",
		JWTSecret:     "test-secret",
		JWTAccessTTL:  "30m",
	})
	if err != nil {
		t.Fatalf("NewAuthService() error = %v", err)
	}
	return svc
}

func TestLoginAndParseRoundTrip(t *testing.T) {
	svc := newTestAuthService(t)

	token, expiresIn, err := svc.Login("admin", "correct-horse-battery")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if expiresIn != 1800 {
		t.Fatalf("expiresIn = %d, want 1800", expiresIn)
	}

	user, err := svc.ParseAccessToken(token)
	if err != nil {
		t.Fatalf("ParseAccessToken() error = %v", err)
	}
	if user.LoginID != "admin" {
		t.Fatalf("loginID = %q, want admin", user.LoginID)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuthService(t)

	tests := []struct {
		name     string
		id       string
		password string
		wantErr  error
	}{
		{name: "wrong-password", id: "admin", password: "nope", wantErr: ErrUnauthorized},
		{name: "wrong-id", id: "root", password: "correct-horse-battery", wantErr: ErrUnauthorized},
		{name: "empty-password", id: "admin", password: "", wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := svc.Login(tt.id, tt.password); !errors.Is(err, tt.wantErr) {
				t.Fatalf("Login() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseRejectsGarbageToken(t *testing.T) {
	svc := newTestAuthService(t)
	if _, err := svc.ParseAccessToken("not-a-jwt"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("ParseAccessToken() error = %v, want ErrUnauthorized", err)
	}
}

func TestNewAuthServiceValidation(t *testing.T) {
	_, err := NewAuthService(config.AuthConfig{AdminID: "admin", AdminPassword: "pw", JWTAccessTTL: "30m"})
	if !errors.Is(err, ErrMisconfigured) {
		t.Fatalf("missing JWT_SECRET: error = %v, want ErrMisconfigured", err)
	}

	_, err = NewAuthService(config.AuthConfig{JWTSecret: "s", JWTAccessTTL: "30m"})
	if !errors.Is(err, ErrMisconfigured) {
		t.Fatalf("missing admin creds: error = %v, want ErrMisconfigured", err)
	}
}
