package auth

import (
	"testing"
	"time"
)

const testSecret = "test-secret-12345"

func TestGenerateAndParseSession(t *testing.T) {
	token, err := GenerateSession(testSecret, 42, "Acme", "sponsor", time.Hour)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	claims, err := ParseSession(testSecret, token)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("expected user_id=42, got %d", claims.UserID)
	}
	if claims.Name != "Acme" {
		t.Errorf("expected name=Acme, got %s", claims.Name)
	}
	if claims.Role != "sponsor" {
		t.Errorf("expected role=sponsor, got %s", claims.Role)
	}
	if claims.Admin {
		t.Error("user session must not carry the admin flag")
	}
}

func TestGenerateAdminSession(t *testing.T) {
	token, err := GenerateAdminSession(testSecret, 1, "root", time.Hour)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	claims, err := ParseSession(testSecret, token)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if !claims.Admin {
		t.Error("admin session must carry the admin flag")
	}
	if claims.Role != "" {
		t.Errorf("admin session must not carry a user role, got %q", claims.Role)
	}
}

func TestParseSession_WrongSecret(t *testing.T) {
	token, err := GenerateSession(testSecret, 1, "x", "influencer", time.Hour)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if _, err := ParseSession("other-secret", token); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}

func TestParseSession_Expired(t *testing.T) {
	short, err := GenerateSession(testSecret, 1, "x", "influencer", time.Nanosecond)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, err := ParseSession(testSecret, short); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParseSession_Garbage(t *testing.T) {
	if _, err := ParseSession(testSecret, "not.a.token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
