package auth

import (
	"testing"
	"time"
)

func TestGenerateAndValidatePass(t *testing.T) {
	secret := "test-secret-key"
	expiry := time.Now().Add(24 * time.Hour)

	pass, err := GeneratePass(secret, "standard", expiry)
	if err != nil {
		t.Fatalf("GeneratePass: %v", err)
	}

	claims, err := ValidatePass(secret, pass)
	if err != nil {
		t.Fatalf("ValidatePass: %v", err)
	}
	if claims.Tier != "standard" {
		t.Errorf("expected tier 'standard', got %q", claims.Tier)
	}
	if !claims.ExpiresAt.Time.Truncate(time.Second).Equal(expiry.Truncate(time.Second)) {
		t.Errorf("expected expiry %v, got %v", expiry, claims.ExpiresAt.Time)
	}
}

func TestValidatePassExpired(t *testing.T) {
	secret := "test-secret-key"
	pass, _ := GeneratePass(secret, "standard", time.Now().Add(-time.Minute))

	if _, err := ValidatePass(secret, pass); err == nil {
		t.Error("expected expired pass to fail validation")
	}
}

func TestValidatePassWrongSecret(t *testing.T) {
	pass, _ := GeneratePass("secret1", "premium", time.Now().Add(time.Hour))

	if _, err := ValidatePass("secret2", pass); err == nil {
		t.Error("expected error for wrong secret")
	}
}
