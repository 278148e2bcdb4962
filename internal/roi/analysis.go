package roi

import (
	"math"

	"github.com/jvelker/training-roi/pkg/constants"
	"github.com/jvelker/training-roi/pkg/mathutil"
)

// Verdict classifies how strongly a result supports the training investment.
type Verdict string

const (
	// VerdictStrong marks a high-ROI, fast-amortizing scenario.
	VerdictStrong Verdict = "strong"
	// VerdictModerate marks a scenario whose ROI still justifies the spend.
	VerdictModerate Verdict = "moderate"
	// VerdictCaution marks a scenario whose ROI is too low or negative.
	VerdictCaution Verdict = "caution"
)

// Recommendation pairs a verdict with a short human-readable rationale.
type Recommendation struct {
	Verdict   Verdict `json:"verdict"`
	Rationale string  `json:"rationale"`
}

// SensitivityPoint is one sample of the close-rate ROI sweep.
type SensitivityPoint struct {
	TargetCloseRate float64 `json:"targetCloseRate"`
	ROIPercentage   float64 `json:"roiPercentage"`
}

// Recommend classifies a result into one of three tiers. A strong verdict
// requires a positive monthly margin in addition to the payback threshold so
// that the PaybackDays sentinel 0 cannot read as an instant payback.
func Recommend(r Result) Recommendation {
	switch {
	case r.ROIPercentage > constants.StrongROIThreshold &&
		r.MonthlyMargin > 0 &&
		r.PaybackDays < constants.StrongPaybackDays:
		return Recommendation{
			Verdict:   VerdictStrong,
			Rationale: "exceptional ROI with payback well inside a quarter",
		}
	case r.ROIPercentage > constants.ModerateROIThreshold:
		return Recommendation{
			Verdict:   VerdictModerate,
			Rationale: "ROI justifies the investment",
		}
	default:
		return Recommendation{
			Verdict:   VerdictCaution,
			Rationale: "ROI may not justify the investment; revisit the parameters",
		}
	}
}

// CumulativeMargin returns the cumulative net position over the given number
// of months. Point 0 is the full investment as a negative balance, each
// following point adds one month of margin. The series crosses zero at the
// break-even point.
func CumulativeMargin(r Result, months int) []float64 {
	if months < 0 {
		months = 0
	}
	series := make([]float64, 0, months+1)
	series = append(series, -r.TotalInvestment)
	for month := 1; month <= months; month++ {
		series = append(series, series[month-1]+r.MonthlyMargin)
	}
	return series
}

// CloseRateSensitivity sweeps the target close rate around the scenario's
// value and reports the annualized ROI at each sampled rate, holding every
// other parameter fixed. The sweep runs from five points below the target to
// nine above it in steps of two.
func CloseRateSensitivity(s Scenario, r Result) []SensitivityPoint {
	base := int(math.Floor(s.TargetCloseRate))
	points := make([]SensitivityPoint, 0,
		(constants.SensitivityRatesBelow+constants.SensitivityRatesAbove)/constants.SensitivityRateStep+1)

	for rate := base - constants.SensitivityRatesBelow; rate < base+constants.SensitivityRatesAbove; rate += constants.SensitivityRateStep {
		deals := float64(s.MonthlyLeads)*(float64(rate)/constants.PercentageMultiplier) - r.CurrentDealsPerMonth
		annualMargin := deals * s.DealValue * (s.MarginRate / constants.PercentageMultiplier) * constants.MonthsPerYear

		var roiPct float64
		if r.TotalInvestment > 0 {
			roiPct = mathutil.CalculatePercentage(annualMargin-r.TotalInvestment, r.TotalInvestment)
		}

		points = append(points, SensitivityPoint{
			TargetCloseRate: float64(rate),
			ROIPercentage:   roiPct,
		})
	}
	return points
}
