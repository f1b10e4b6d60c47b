package randompkg

import (
	"math"
	"regexp"
	"testing"
)

func TestCPR(t *testing.T) {
	re := regexp.MustCompile(`^\d{10}$`)

	for i := 0; i < 100; i++ {
		if got := CPR(); !re.MatchString(got) {
			t.Fatalf("CPR() = %q, want 10 digits", got)
		}
	}
}

func TestMoneyAmountBetween(t *testing.T) {
	for i := 0; i < 100; i++ {
		got := MoneyAmountBetween(-1000, 1000)
		if got < -1000 || got > 1000 {
			t.Fatalf("MoneyAmountBetween(-1000, 1000) = %v, out of range", got)
		}

		if cents := got * 100; math.Abs(cents-math.Round(cents)) > 1e-6 {
			t.Fatalf("MoneyAmountBetween(-1000, 1000) = %v, want at most 2 decimals", got)
		}
	}
}
