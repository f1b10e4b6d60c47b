package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/go-petr/ledger/pkg/errorspkg"
)

func TestNewCustomer(t *testing.T) {
	testCases := []struct {
		name    string
		cpr     string
		wantErr error
	}{
		{name: "OK", cpr: "0123456789"},
		{name: "TooShort", cpr: "012345678", wantErr: ErrInvalidCPR},
		{name: "TooLong", cpr: "01234567890", wantErr: ErrInvalidCPR},
		{name: "Letters", cpr: "01234567ab", wantErr: ErrInvalidCPR},
		{name: "Dash", cpr: "010190-1234", wantErr: ErrInvalidCPR},
		{name: "Empty", cpr: "", wantErr: ErrInvalidCPR},
		{name: "TrailingNewline", cpr: "0123456789\n", wantErr: ErrInvalidCPR},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			got, err := NewCustomer("Klaus", tc.cpr)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("NewCustomer(%q, %q) returned error: %v, want %v", "Klaus", tc.cpr, err, tc.wantErr)
			}

			if tc.wantErr != nil {
				if !errors.Is(err, errorspkg.ErrValidation) {
					t.Errorf("errors.Is(%v, errorspkg.ErrValidation) = false, want true", err)
				}
				return
			}

			want := Customer{Name: "Klaus", CPR: tc.cpr}
			if got != want {
				t.Errorf("NewCustomer(%q, %q) = %+v, want %+v", "Klaus", tc.cpr, got, want)
			}
		})
	}
}

func TestFormatAccountNumber(t *testing.T) {
	testCases := []struct {
		seq  int64
		want string
	}{
		{seq: 1, want: "000000001"},
		{seq: 42, want: "000000042"},
		{seq: 123456789, want: "123456789"},
		{seq: MaxAccountNumber, want: "999999999"},
	}

	for _, tc := range testCases {
		got, err := FormatAccountNumber(tc.seq)
		if err != nil || got != tc.want {
			t.Errorf("FormatAccountNumber(%d) = %q, %v, want %q, nil", tc.seq, got, err, tc.want)
		}
		if len(got) != AccountNumberDigits {
			t.Errorf("len(FormatAccountNumber(%d)) = %d, want %d", tc.seq, len(got), AccountNumberDigits)
		}
	}

	for _, seq := range []int64{MaxAccountNumber + 1, 10_000_000_000, -1} {
		got, err := FormatAccountNumber(seq)
		if !errors.Is(err, ErrAccountNumbersExhausted) || got != "" {
			t.Errorf("FormatAccountNumber(%d) = %q, %v, want \"\", %v", seq, got, err, ErrAccountNumbersExhausted)
		}
	}
}

func TestCheckAmount(t *testing.T) {
	testCases := []struct {
		name    string
		amount  float64
		wantErr error
	}{
		{name: "Positive", amount: 500},
		{name: "Zero", amount: 0},
		{name: "WithinTolerance", amount: -0.001},
		{name: "ToleranceEdge", amount: -PennyTolerance},
		{name: "Negative", amount: -0.01, wantErr: ErrNegativeAmount},
		{name: "NaN", amount: math.NaN(), wantErr: ErrInvalidAmount},
		{name: "Inf", amount: math.Inf(1), wantErr: ErrInvalidAmount},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			if err := CheckAmount(tc.amount); !errors.Is(err, tc.wantErr) {
				t.Errorf("CheckAmount(%v) = %v, want %v", tc.amount, err, tc.wantErr)
			}
		})
	}
}

func TestCheckText(t *testing.T) {
	if err := CheckText("first deposit"); err != nil {
		t.Errorf("CheckText(%q) = %v, want nil", "first deposit", err)
	}

	if err := CheckText("   "); err != nil {
		t.Errorf("CheckText(%q) = %v, want nil", "   ", err)
	}

	if err := CheckText(""); !errors.Is(err, ErrEmptyText) {
		t.Errorf("CheckText(%q) = %v, want %v", "", err, ErrEmptyText)
	}
}

func TestErrorKinds(t *testing.T) {
	testCases := []struct {
		err  error
		kind error
	}{
		{ErrCustomerNotFound, errorspkg.ErrNotFound},
		{ErrAccountNotFound, errorspkg.ErrNotFound},
		{ErrCPRAlreadyExists, errorspkg.ErrConflict},
		{ErrAccountNumberAlreadyExists, errorspkg.ErrConflict},
		{ErrAccountNumbersExhausted, errorspkg.ErrConflict},
		{ErrEmptyText, errorspkg.ErrValidation},
		{ErrNegativeAmount, errorspkg.ErrValidation},
	}

	for _, tc := range testCases {
		if !errors.Is(tc.err, tc.kind) {
			t.Errorf("errors.Is(%v, %v) = false, want true", tc.err, tc.kind)
		}
	}
}
