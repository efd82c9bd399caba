package utils

import "testing"

func TestJWTTokenRoundTrip(t *testing.T) {
	token, err := GenerateJWTToken("123456789012")
	if err != nil {
		t.Fatalf("GenerateJWTToken: %v", err)
	}

	card, err := ParseJWTToken(token)
	if err != nil {
		t.Fatalf("ParseJWTToken: %v", err)
	}
	if card != "123456789012" {
		t.Errorf("parsed card number = %q, want 123456789012", card)
	}
}

func TestParseJWTTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseJWTToken("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestParseJWTTokenRejectsWrongKey(t *testing.T) {
	orig := SecretKey
	defer func() { SecretKey = orig }()

	SecretKey = "other-key"
	token, err := GenerateJWTToken("123456789012")
	if err != nil {
		t.Fatalf("GenerateJWTToken: %v", err)
	}

	SecretKey = orig
	if _, err := ParseJWTToken(token); err == nil {
		t.Fatal("expected error for token signed with a different key")
	}
}
