package mathutil

import "testing"

func TestRound(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{1.004, 1.00},
		{1.006, 1.01},
		// -2.675*100 is exactly -267.5; math.Round takes halves away from zero.
		{-2.675, -2.68},
		{36000.0, 36000.0},
	}

	for _, tt := range tests {
		if got := Round(tt.input); got != tt.expected {
			t.Errorf("Round(%v) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(0.005) {
		t.Error("IsZero(0.005) should be true within currency tolerance")
	}
	if IsZero(0.02) {
		t.Error("IsZero(0.02) should be false")
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(100.0, 100.009, 0.01) {
		t.Error("expected values within tolerance")
	}
	if WithinTolerance(100.0, 100.2, 0.01) {
		t.Error("expected values outside tolerance")
	}
}

func TestCalculatePercentage(t *testing.T) {
	if got := CalculatePercentage(398400, 33600); !WithinTolerance(got, 1185.714285, 0.001) {
		t.Errorf("CalculatePercentage = %v, expected ~1185.714285", got)
	}
	if got := CalculatePercentage(10, 0); got != 0 {
		t.Errorf("CalculatePercentage with zero total = %v, expected 0", got)
	}
}

func TestApplyPercentage(t *testing.T) {
	tests := []struct {
		value      float64
		percentage float64
		expected   float64
	}{
		{150, 12, 18},
		{150, 20, 30},
		{144000, 25, 36000},
		{100, 0, 0},
	}

	for _, tt := range tests {
		if got := ApplyPercentage(tt.value, tt.percentage); !WithinTolerance(got, tt.expected, 1e-9) {
			t.Errorf("ApplyPercentage(%v, %v) = %v, expected %v", tt.value, tt.percentage, got, tt.expected)
		}
	}
}
