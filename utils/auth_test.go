package utils

import (
	"testing"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatalf("password stored in plain text")
	}
	if !CheckPasswordHash("s3cret-password", hash) {
		t.Fatalf("correct password rejected")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Fatalf("wrong password accepted")
	}
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := GenerateToken("abc", AccountTypeUser); err == nil {
		t.Fatalf("expected error without JWT_SECRET")
	}

	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken("abc", AccountTypeSalon)
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected signed token")
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"+14155550100", "94744078670", "+94 744 078 670", "(415) 555-0100"}
	for _, p := range valid {
		if !ValidatePhone(p) {
			t.Errorf("ValidatePhone(%q) = false, want true", p)
		}
	}
	invalid := []string{"", "abc", "+0123", "12"}
	for _, p := range invalid {
		if ValidatePhone(p) {
			t.Errorf("ValidatePhone(%q) = true, want false", p)
		}
	}
}
