package middleware

import "testing"

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(42, "alice@example.com")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "alice@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	if _, err := ValidateJWT("not-a-token"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateJWT(1, "a@example.com")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	t.Setenv("JWT_SECRET", "other-secret")
	if _, err := ValidateJWT(token); err == nil {
		t.Fatalf("expected signature validation to fail")
	}
}
