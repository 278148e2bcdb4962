// Package validation provides precondition checks for scenarios and output
// formats. Hard violations are returned as errors before any computation;
// economically unusual but well-defined inputs come back as warnings.
package validation

import (
	"fmt"
	"math"

	"github.com/jvelker/training-roi/internal/roi"
	"github.com/jvelker/training-roi/pkg/constants"
	"github.com/jvelker/training-roi/pkg/mathutil"
)

// CheckScenario validates scenario preconditions. It returns an error for
// inputs the arithmetic cannot meaningfully handle (non-finite values,
// negative counts or amounts, rates outside [0,100]) and a list of warnings
// for inputs that compute fine but deserve a second look.
func CheckScenario(s roi.Scenario) ([]string, error) {
	for _, field := range []struct {
		name  string
		value float64
	}{
		{"costPerPerson", s.CostPerPerson},
		{"currentCloseRate", s.CurrentCloseRate},
		{"targetCloseRate", s.TargetCloseRate},
		{"dealValue", s.DealValue},
		{"marginRate", s.MarginRate},
		{"dailyOpportunityRate", s.DailyOpportunityRate},
	} {
		if math.IsNaN(field.value) || math.IsInf(field.value, 0) {
			return nil, fmt.Errorf("%s must be a finite number", field.name)
		}
		if field.value < 0 {
			return nil, fmt.Errorf("%s must not be negative, got %v", field.name, field.value)
		}
	}

	if s.Participants < 0 {
		return nil, fmt.Errorf("participants must not be negative, got %d", s.Participants)
	}
	if s.MonthlyLeads < 0 {
		return nil, fmt.Errorf("monthlyLeads must not be negative, got %d", s.MonthlyLeads)
	}
	if s.TrainingDays < 0 {
		return nil, fmt.Errorf("trainingDays must not be negative, got %d", s.TrainingDays)
	}

	for _, rate := range []struct {
		name  string
		value float64
	}{
		{"currentCloseRate", s.CurrentCloseRate},
		{"targetCloseRate", s.TargetCloseRate},
		{"marginRate", s.MarginRate},
	} {
		if rate.value > 100 {
			return nil, fmt.Errorf("%s must be within [0,100], got %v", rate.name, rate.value)
		}
	}

	var warnings []string
	if s.TargetCloseRate < s.CurrentCloseRate {
		warnings = append(warnings, fmt.Sprintf(
			"target close rate %v is below the current close rate %v; the scenario models a regression and will yield negative returns",
			s.TargetCloseRate, s.CurrentCloseRate))
	}

	totalInvestment := float64(s.Participants)*s.CostPerPerson +
		float64(s.Participants)*float64(s.TrainingDays)*s.DailyOpportunityRate
	if mathutil.IsZero(totalInvestment) {
		warnings = append(warnings,
			"total investment is zero; ROI and payback figures fall back to 0")
	}

	return warnings, nil
}

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV,
		constants.OutputFormatJSON, constants.OutputFormatSlides:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s, %s, or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatCSV,
		constants.OutputFormatJSON, constants.OutputFormatSlides, format)
}
