package validation

import (
	"math"
	"strings"
	"testing"

	"github.com/jvelker/training-roi/internal/roi"
)

func TestCheckScenarioErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*roi.Scenario)
	}{
		{"negative participants", func(s *roi.Scenario) { s.Participants = -1 }},
		{"negative leads", func(s *roi.Scenario) { s.MonthlyLeads = -10 }},
		{"negative training days", func(s *roi.Scenario) { s.TrainingDays = -2 }},
		{"negative cost", func(s *roi.Scenario) { s.CostPerPerson = -100 }},
		{"negative deal value", func(s *roi.Scenario) { s.DealValue = -1 }},
		{"close rate above 100", func(s *roi.Scenario) { s.TargetCloseRate = 120 }},
		{"margin rate above 100", func(s *roi.Scenario) { s.MarginRate = 101 }},
		{"NaN rate", func(s *roi.Scenario) { s.CurrentCloseRate = math.NaN() }},
		{"infinite deal value", func(s *roi.Scenario) { s.DealValue = math.Inf(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := roi.DefaultScenario()
			tt.mutate(&s)
			if _, err := CheckScenario(s); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestCheckScenarioWarnings(t *testing.T) {
	s := roi.DefaultScenario()
	warnings, err := CheckScenario(s)
	if err != nil {
		t.Fatalf("CheckScenario failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings for the reference scenario, got %v", warnings)
	}

	s.TargetCloseRate = 8
	warnings, err = CheckScenario(s)
	if err != nil {
		t.Fatalf("CheckScenario failed: %v", err)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "regression") {
		t.Errorf("expected a regression warning, got %v", warnings)
	}

	s = roi.DefaultScenario()
	s.Participants = 0
	warnings, err = CheckScenario(s)
	if err != nil {
		t.Fatalf("CheckScenario failed: %v", err)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "total investment is zero") {
		t.Errorf("expected a zero-investment warning, got %v", warnings)
	}

	// Sub-cent investments count as zero within the currency tolerance.
	s = roi.Scenario{
		Participants:     1,
		CostPerPerson:    0.004,
		MonthlyLeads:     150,
		CurrentCloseRate: 12,
		TargetCloseRate:  20,
		DealValue:        12000,
		MarginRate:       25,
	}
	warnings, err = CheckScenario(s)
	if err != nil {
		t.Fatalf("CheckScenario failed: %v", err)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "total investment is zero") {
		t.Errorf("expected a zero-investment warning for sub-cent investment, got %v", warnings)
	}
}

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{"pretty", "csv", "json", "slides"} {
		if err := ValidateOutputFormat(format); err != nil {
			t.Errorf("ValidateOutputFormat(%q) = %v, expected nil", format, err)
		}
	}

	if err := ValidateOutputFormat("xml"); err == nil {
		t.Error("expected an error for unsupported format")
	}
	if err := ValidateOutputFormat(""); err == nil {
		t.Error("expected an error for empty format")
	}
}
