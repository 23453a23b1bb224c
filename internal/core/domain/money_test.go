package domain

import (
	"errors"
	"math"
	"testing"
)

func TestMoneyAddOverflow(t *testing.T) {
	if _, err := Money(math.MaxInt64).Add(1); !errors.Is(err, ErrMoneyOverflow) {
		t.Fatalf("expected overflow, got %v", err)
	}
	sum, err := Money(200).Add(50)
	if err != nil || sum != 250 {
		t.Fatalf("Add(200, 50) = %d, %v", sum, err)
	}
	if _, err = Money(-1).Add(1); !errors.Is(err, ErrNegativeMoney) {
		t.Fatalf("expected negative-money error, got %v", err)
	}
}

func TestMoneySubNeverNegative(t *testing.T) {
	if _, err := Money(100).Sub(101); !errors.Is(err, ErrNegativeMoney) {
		t.Fatalf("expected negative-money error, got %v", err)
	}
	d, err := Money(100).Sub(100)
	if err != nil || d != 0 {
		t.Fatalf("Sub(100, 100) = %d, %v", d, err)
	}
	if got := Money(100).SubClamped(250); got != 0 {
		t.Fatalf("SubClamped should saturate at zero, got %d", got)
	}
	if got := Money(250).SubClamped(100); got != 150 {
		t.Fatalf("SubClamped(250, 100) = %d", got)
	}
}

func TestMoneyMulDiv(t *testing.T) {
	// cpv 50 cents per 100 views, 40000 views
	got, err := Money(50).MulDiv(40_000, 100)
	if err != nil || got != 20_000 {
		t.Fatalf("MulDiv(50, 40000, 100) = %d, %v", got, err)
	}
	if _, err = Money(math.MaxInt64).MulDiv(2, 1); !errors.Is(err, ErrMoneyOverflow) {
		t.Fatalf("expected overflow, got %v", err)
	}
	if _, err = Money(1).MulDiv(1, 0); err == nil {
		t.Fatal("expected error for zero divisor")
	}
}
