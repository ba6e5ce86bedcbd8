package auth

import (
	"testing"
	"time"
)

func TestGenerateParseRoundTrip(t *testing.T) {
	tok, err := Generate("ops@drcastiel.com", "oauth", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	claims, err := Parse(tok)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Email != "ops@drcastiel.com" || claims.Provider != "oauth" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParseExpired(t *testing.T) {
	tok, err := Generate("ops@drcastiel.com", "local", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Parse(tok); err == nil {
		t.Fatal("expired token must not parse")
	}
}

func TestParseGarbage(t *testing.T) {
	if _, err := Parse("not-a-token"); err != ErrInvalid {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}

func TestAllowlist(t *testing.T) {
	a := NewAllowlist([]string{"Ops@DrCastiel.com", "  second@example.com ", ""})
	if !a.Allowed("ops@drcastiel.com") {
		t.Error("case-insensitive match failed")
	}
	if !a.Allowed("SECOND@EXAMPLE.COM") {
		t.Error("trimmed entry should match")
	}
	if a.Allowed("intruder@example.com") {
		t.Error("unknown email must be denied")
	}
}

func TestEmptyAllowlistDeniesEveryone(t *testing.T) {
	a := NewAllowlist(nil)
	if a.Allowed("anyone@example.com") {
		t.Error("empty allow-list must deny")
	}
}
