package marketcl

import "testing"

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		value float64
		want  string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{1234.5, "$1,234.50"},
		{-1234.56, "-$1,234.56"},
		{0.004, "$0.00"}, // display rounding only
	}
	for _, tc := range testCases {
		if got := USD(tc.value).String(); got != tc.want {
			t.Errorf("M(%v).String() = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := USD(0).SignedString(); got != "-" {
		t.Errorf("zero SignedString() = %q, want %q", got, "-")
	}
	if got := USD(12.5).SignedString(); got != "+$12.50" {
		t.Errorf("positive SignedString() = %q, want %q", got, "+$12.50")
	}
	if got := USD(-12.5).SignedString(); got != "-$12.50" {
		t.Errorf("negative SignedString() = %q, want %q", got, "-$12.50")
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	// 0.1 + 0.2 is exactly 0.3 in decimal arithmetic.
	if got := USD(0.1).Add(USD(0.2)); !got.Equal(USD(0.3)) {
		t.Errorf("0.1 + 0.2 = %v, want 0.3", got)
	}
	if got := USD(50).Mul(10); !got.Equal(USD(500)) {
		t.Errorf("50 * 10 = %v, want 500", got)
	}
	if got := USD(100).MulRate(rate(0.15)); !got.Equal(USD(15)) {
		t.Errorf("100 * 0.15 = %v, want 15", got)
	}
}

func TestMoney_Shares(t *testing.T) {
	testCases := []struct {
		name  string
		cash  float64
		price float64
		want  int64
	}{
		{"exact division", 500, 50, 10},
		{"rounds down", 9995, 50, 199},
		{"less than one share", 49, 50, 0},
		{"zero price", 100, 0, 0},
		{"negative cash", -10, 50, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := USD(tc.cash).Shares(USD(tc.price)); got != tc.want {
				t.Errorf("M(%v).Shares(M(%v)) = %d, want %d", tc.cash, tc.price, got, tc.want)
			}
		})
	}
}

func TestMoney_PctOf(t *testing.T) {
	// (60 - 50) / 50 = +20%
	if got := USD(60).PctOf(USD(50)); !got.Equal(20) {
		t.Errorf("60.PctOf(50) = %v, want 20%%", got)
	}
	if got := USD(40).PctOf(USD(50)); !got.Equal(-20) {
		t.Errorf("40.PctOf(50) = %v, want -20%%", got)
	}
	if got := USD(60).PctOf(USD(0)); !got.Equal(0) {
		t.Errorf("60.PctOf(0) = %v, want 0%%", got)
	}
}

func TestPercent_String(t *testing.T) {
	if got := Percent(12.3456).String(); got != "12.35%" {
		t.Errorf("String() = %q, want %q", got, "12.35%")
	}
	if got := Percent(-3.2).SignedString(); got != "-3.20%" {
		t.Errorf("SignedString() = %q, want %q", got, "-3.20%")
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("zero SignedString() = %q, want %q", got, "-")
	}
}
