package crypto

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndParse(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Issue("user-42", "jti-1")
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("Issue() returned empty string")
	}

	claims, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if claims.UserID != "user-42" {
		t.Errorf("Parse() UserID = %q, want %q", claims.UserID, "user-42")
	}
	if claims.ID != "jti-1" {
		t.Errorf("Parse() ID = %q, want %q", claims.ID, "jti-1")
	}
}

func TestIssueDistinctTokenIDs(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	a, err := issuer.Issue("user-42", "jti-a")
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}
	b, err := issuer.Issue("user-42", "jti-b")
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}
	if a == b {
		t.Error("tokens with different ids should differ")
	}
}

func TestParseInvalid(t *testing.T) {
	_, err := NewTokenIssuer("test-secret", time.Hour).Parse("not-a-valid-token")
	if err != ErrInvalidToken {
		t.Errorf("Parse() error = %v, want ErrInvalidToken", err)
	}
}

func TestParseWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("correct-secret", time.Hour).Issue("user-42", "jti")
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	if _, err := NewTokenIssuer("wrong-secret", time.Hour).Parse(token); err == nil {
		t.Error("Parse() expected error for wrong secret")
	}
}

func TestParseExpired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Issue("user-42", "jti")
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	if _, err := issuer.Parse(token); err == nil {
		t.Error("Parse() expected error for expired token")
	}
}

func TestParseForeignClaims(t *testing.T) {
	secret := "test-secret"

	tests := []struct {
		name   string
		claims Claims
	}{
		{
			name: "wrong issuer",
			claims: Claims{
				RegisteredClaims: jwt.RegisteredClaims{
					Issuer:    "someone-else",
					Audience:  jwt.ClaimStrings{tokenAudience},
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				},
				UserID: "user-42",
			},
		},
		{
			name: "wrong audience",
			claims: Claims{
				RegisteredClaims: jwt.RegisteredClaims{
					Issuer:    tokenIssuer,
					Audience:  jwt.ClaimStrings{"wrong-audience"},
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				},
				UserID: "user-42",
			},
		},
		{
			name: "missing user id",
			claims: Claims{
				RegisteredClaims: jwt.RegisteredClaims{
					Issuer:    tokenIssuer,
					Audience:  jwt.ClaimStrings{tokenAudience},
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tt.claims).SignedString([]byte(secret))
			if err != nil {
				t.Fatalf("SignedString() unexpected error: %v", err)
			}

			if _, err := NewTokenIssuer(secret, time.Hour).Parse(signed); err == nil {
				t.Error("Parse() expected error")
			}
		})
	}
}
