package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{33600, "33.600 €"},
		{432000, "432.000 €"},
		{400, "400 €"},
		{0, "0 €"},
		{-9600, "-9.600 €"},
		{1234567.89, "1.234.568 €"},
	}

	for _, tt := range tests {
		if got := Currency(tt.amount); got != tt.expected {
			t.Errorf("Currency(%v) = %q, expected %q", tt.amount, got, tt.expected)
		}
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{25, "25,0 %"},
		{1185.714285, "1.185,7 %"},
		{-36.5, "-36,5 %"},
	}

	for _, tt := range tests {
		if got := Percent(tt.value); got != tt.expected {
			t.Errorf("Percent(%v) = %q, expected %q", tt.value, got, tt.expected)
		}
	}
}

func TestWholePercent(t *testing.T) {
	if got := WholePercent(1185.714285); got != "1.186 %" {
		t.Errorf("WholePercent(1185.714285) = %q, expected \"1.186 %%\"", got)
	}
}

func TestDeals(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{18, "18,0"},
		{12.34, "12,3"},
		{-3.5, "-3,5"},
	}

	for _, tt := range tests {
		if got := Deals(tt.value); got != tt.expected {
			t.Errorf("Deals(%v) = %q, expected %q", tt.value, got, tt.expected)
		}
	}
}
