package crypto

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken("signup-form", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty string")
	}
}

func TestGenerateTokenMissingInput(t *testing.T) {
	if _, err := GenerateToken("", "test-secret", time.Hour); !errors.Is(err, ErrClientRequired) {
		t.Errorf("GenerateToken() error = %v, want ErrClientRequired", err)
	}
	if _, err := GenerateToken("ci", "", time.Hour); !errors.Is(err, ErrSecretRequired) {
		t.Errorf("GenerateToken() error = %v, want ErrSecretRequired", err)
	}
}

func TestValidateTokenValid(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateToken("provisioner", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	claims, err := ValidateToken(token, secret)
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.Client() != "provisioner" {
		t.Errorf("ValidateToken() client = %q, want %q", claims.Client(), "provisioner")
	}
}

func TestValidateTokenInvalid(t *testing.T) {
	_, err := ValidateToken("not-a-valid-token", "test-secret")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken() error = %v, want ErrInvalidToken", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("ci", "correct-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	if _, err := ValidateToken(token, "wrong-secret"); err == nil {
		t.Error("ValidateToken() expected error for wrong secret")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := GenerateToken("ci", "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	if _, err := ValidateToken(token, "test-secret"); err == nil {
		t.Error("ValidateToken() expected error for expired token")
	}
}

func signClaims(t *testing.T, claims jwt.RegisteredClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{RegisteredClaims: claims})
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}
	return s
}

func TestValidateTokenRejectsForeignClaims(t *testing.T) {
	secret := "test-secret"
	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	tests := []struct {
		name   string
		claims jwt.RegisteredClaims
	}{
		{
			name:   "wrong issuer",
			claims: jwt.RegisteredClaims{Issuer: "vaultpass", Subject: "ci", Audience: jwt.ClaimStrings{tokenAudience}, ExpiresAt: exp},
		},
		{
			name:   "wrong audience",
			claims: jwt.RegisteredClaims{Issuer: tokenIssuer, Subject: "ci", Audience: jwt.ClaimStrings{"other-api"}, ExpiresAt: exp},
		},
		{
			name:   "missing subject",
			claims: jwt.RegisteredClaims{Issuer: tokenIssuer, Audience: jwt.ClaimStrings{tokenAudience}, ExpiresAt: exp},
		},
		{
			name:   "missing expiry",
			claims: jwt.RegisteredClaims{Issuer: tokenIssuer, Subject: "ci", Audience: jwt.ClaimStrings{tokenAudience}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := signClaims(t, tt.claims, secret)
			if _, err := ValidateToken(token, secret); err == nil {
				t.Errorf("ValidateToken() accepted token with %s", tt.name)
			}
		})
	}
}
