package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", "alice12", time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Username != "alice12" {
		t.Errorf("expected username alice12, got %s", token.Username)
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", claims.Issuer)
	}
	if claims.Subject != "alice12" {
		t.Errorf("expected subject 'alice12', got %s", claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		username string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "alice12", time.Hour, "key"},
		{"empty username", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "alice12", 0, "key"},
		{"negative duration", "iss", "alice12", -time.Second, "key"},
		{"empty key", "iss", "alice12", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateJWTToken(tt.issuer, tt.username, tt.duration, tt.key); err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	genToken, err := GenerateJWTToken("test-issuer", "bobby1", 5*time.Minute, "secret-key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", "test-issuer")
	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsed.Username != "bobby1" {
		t.Errorf("expected username bobby1, got %s", parsed.Username)
	}
	if subject, _ := parsed.Claims.GetSubject(); subject != "bobby1" {
		t.Errorf("subject = %s, want bobby1", subject)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "alice12", time.Hour, "correct-key")

	if _, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "test-issuer"); err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func signClaims(t *testing.T, method jwt.SigningMethod, claims jwt.RegisteredClaims, key any) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	s := signClaims(t, jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "alice12",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}, []byte("key"))

	_, err := ValidateAndParseJWTToken(s, "key", "iss")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_MissingExpiry(t *testing.T) {
	s := signClaims(t, jwt.SigningMethodHS256, jwt.RegisteredClaims{Issuer: "iss", Subject: "alice12"}, []byte("key"))

	if _, err := ValidateAndParseJWTToken(s, "key", "iss"); err == nil {
		t.Error("expected error for token without exp, got nil")
	}
}

func TestValidateAndParseJWTToken_OtherAlgorithm(t *testing.T) {
	s := signClaims(t, jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "alice12",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}, []byte("key"))

	if _, err := ValidateAndParseJWTToken(s, "key", "iss"); err == nil {
		t.Error("expected error for HS512 token, got nil")
	}
}

func TestValidateAndParseJWTToken_EmptySubject(t *testing.T) {
	s := signClaims(t, jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "iss",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}, []byte("key"))

	if _, err := ValidateAndParseJWTToken(s, "key", "iss"); err == nil {
		t.Error("expected error for empty subject, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", "alice12", time.Hour, "key")

	if _, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer"); err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	if _, err := ValidateAndParseJWTToken("not.a.token", "key", "iss"); err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer   abc", want: "abc"},
		{header: "Basic abc", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "", wantErr: true},
		{header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseBearerToken(tt.header)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseBearerToken(%q): expected error", tt.header)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseBearerToken(%q) = %q, %v; want %q", tt.header, got, err, tt.want)
		}
	}

	if BearerHeader("abc") != "Bearer abc" {
		t.Errorf("unexpected BearerHeader output")
	}
}
