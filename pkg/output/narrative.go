package output

import (
	"fmt"

	"github.com/jvelker/training-roi/internal/roi"
	"github.com/jvelker/training-roi/pkg/format"
)

// NarrativeSection is one titled block of argument lines for the business
// case: best case, executive arguments, risks, margin focus.
type NarrativeSection struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

// Narrative builds the supporting argument sections for a computed scenario.
// The figures are derived views of the result (uplift, degraded-effect, and
// margin-sensitivity variants), not new engine computations.
func Narrative(s roi.Scenario, r roi.Result) []NarrativeSection {
	sections := []NarrativeSection{
		bestCase(s, r),
		executiveArguments(s, r),
		risks(s, r),
		marginFocus(s, r),
	}
	return sections
}

// bestCase assumes the training lands 30% above target.
func bestCase(s roi.Scenario, r roi.Result) NarrativeSection {
	bestRevenue := r.MonthlyRevenue * 1.3
	bestProfit := bestRevenue * (s.MarginRate / 100)
	bestROI := r.ROIPercentage * 1.5
	bestPayback := int(float64(r.PaybackDays) * 0.7)

	return NarrativeSection{
		Title: "Best Case",
		Lines: []string{
			fmt.Sprintf("Additional revenue: %s per month", format.Currency(bestRevenue)),
			fmt.Sprintf("Additional margin: %s per month", format.Currency(bestProfit)),
			fmt.Sprintf("ROI: about %s", format.WholePercent(bestROI)),
			fmt.Sprintf("Payback: about %d days", bestPayback),
			fmt.Sprintf("Even the conservative case yields %s additional annual margin", format.Currency(r.AnnualMargin)),
		},
	}
}

func executiveArguments(s roi.Scenario, r roi.Result) NarrativeSection {
	lines := []string{
		fmt.Sprintf("The training generates %s additional annual margin", format.Currency(r.AnnualMargin)),
	}
	if r.MonthlyMargin > 0 {
		lines = append(lines,
			fmt.Sprintf("The investment amortizes in %d days", r.PaybackDays),
			fmt.Sprintf("Every month of delay forfeits %s of margin", format.Currency(r.MonthlyMargin)),
		)
	}
	if r.AdditionalDealsPerMonth != 0 {
		perDealMargin := r.MonthlyRevenue / r.AdditionalDealsPerMonth * (s.MarginRate / 100)
		lines = append(lines,
			fmt.Sprintf("Each additional deal contributes %s of margin, permanently", format.Currency(perDealMargin)))
	}
	lines = append(lines,
		fmt.Sprintf("The %s margin applies to all future sales, not only during the program", format.Percent(s.MarginRate)))

	return NarrativeSection{Title: "Executive Arguments", Lines: lines}
}

func risks(s roi.Scenario, r roi.Result) NarrativeSection {
	halfEffect := r.AnnualMargin * 0.5
	reducedMarginAnnual := r.MonthlyRevenue * (s.MarginRate - 5) / 100 * 12

	return NarrativeSection{
		Title: "Risks",
		Lines: []string{
			fmt.Sprintf("Training half as effective as planned: still %s annual margin", format.Currency(halfEffect)),
			fmt.Sprintf("Margin 5 points lower: still %s annual margin", format.Currency(reducedMarginAnnual)),
			fmt.Sprintf("Status quo forfeits %s of annual margin", format.Currency(r.AnnualMargin)),
		},
	}
}

func marginFocus(s roi.Scenario, r roi.Result) NarrativeSection {
	marginImpact := r.MonthlyRevenue * 0.05
	fiveYear := r.MonthlyMargin * 60

	lines := []string{
		fmt.Sprintf("%s additional revenue at %s margin yields %s per month",
			format.Currency(r.MonthlyRevenue), format.Percent(s.MarginRate), format.Currency(r.MonthlyMargin)),
		fmt.Sprintf("Five margin points more would add %s per month", format.Currency(marginImpact)),
		fmt.Sprintf("Over five years the margin uplift compounds to %s", format.Currency(fiveYear)),
	}
	if r.TotalInvestment > 0 {
		pureGain := (r.AnnualMargin/r.TotalInvestment - 1) * 100
		lines = append(lines,
			fmt.Sprintf("%s invested for %s annual margin is a %s net gain",
				format.Currency(r.TotalInvestment), format.Currency(r.AnnualMargin), format.WholePercent(pureGain)))
	}

	return NarrativeSection{Title: "Margin Focus", Lines: lines}
}
