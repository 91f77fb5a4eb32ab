package users

import (
	"errors"
	"testing"
)

func TestAuthenticateKnownUser(t *testing.T) {
	d := NewStaticDirectory()

	user, err := d.Authenticate("admin@crm.com", "admin123")
	if err != nil {
		t.Fatalf("expected successful login, got %v", err)
	}
	if user.ID != 1 || user.Name != "Administrator" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.PasswordHash == "admin123" {
		t.Fatal("password must not be stored in plaintext")
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	d := NewStaticDirectory()

	if _, err := d.Authenticate("admin@crm.com", "nope"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	d := NewStaticDirectory()

	if _, err := d.Authenticate("ghost@crm.com", "admin123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateEmailIsCaseSensitive(t *testing.T) {
	d := NewStaticDirectory()

	if _, err := d.Authenticate("Admin@CRM.com", "admin123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected case-sensitive email match to fail, got %v", err)
	}
}

func TestByID(t *testing.T) {
	d := NewStaticDirectory()

	user, ok := d.ByID(5)
	if !ok || user.Email != "sales@crm.com" {
		t.Fatalf("expected sales account for id 5, got %+v ok=%t", user, ok)
	}
	if _, ok := d.ByID(99); ok {
		t.Fatal("expected lookup miss for unknown id")
	}
}
