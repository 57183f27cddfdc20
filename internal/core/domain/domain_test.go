package domain

import (
	"testing"
	"time"
)

func TestParseRole(t *testing.T) {
	if r, ok := ParseRole("manager"); !ok || r != RoleManager {
		t.Fatalf("expected manager, got %v %v", r, ok)
	}
	if r, ok := ParseRole("customer"); !ok || r != RoleCustomer {
		t.Fatalf("expected customer, got %v %v", r, ok)
	}
	if _, ok := ParseRole("admin"); ok {
		t.Fatalf("expected unknown role to be rejected")
	}
	if _, ok := ParseRole(""); ok {
		t.Fatalf("expected empty role to be rejected")
	}
}

func TestParseBookingDate(t *testing.T) {
	d, err := ParseBookingDate("2024-06-28")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC)
	if !d.Equal(want) {
		t.Fatalf("expected %v, got %v", want, d)
	}

	if _, err := ParseBookingDate("28/06/2024"); err == nil {
		t.Fatalf("expected error for wrong format")
	}
}
