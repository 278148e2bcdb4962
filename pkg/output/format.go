// Package output provides utilities for formatting and exporting ROI results.
package output

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jvelker/training-roi/internal/roi"
	"github.com/jvelker/training-roi/pkg/constants"
	"github.com/jvelker/training-roi/pkg/format"
)

// Report bundles one computed scenario for rendering.
type Report struct {
	Name           string             `json:"name"`
	Scenario       roi.Scenario       `json:"scenario"`
	Result         roi.Result         `json:"result"`
	Recommendation roi.Recommendation `json:"recommendation"`
}

// BuildReport computes the given scenario and wraps it for rendering.
func BuildReport(name string, scenario roi.Scenario) Report {
	result := roi.Compute(scenario)
	return Report{
		Name:           name,
		Scenario:       scenario,
		Result:         result,
		Recommendation: roi.Recommend(result),
	}
}

// Formats lists the available renderers. Both the CLI flag validation and
// the web UI read this registry.
func Formats() []string {
	return []string{
		constants.OutputFormatPretty,
		constants.OutputFormatCSV,
		constants.OutputFormatJSON,
		constants.OutputFormatSlides,
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(reports []Report) {
	fmt.Print(PrettyString(reports))
}

// PrettyString renders the human-readable report as a string.
func PrettyString(reports []Report) string {
	var b strings.Builder
	for i, report := range reports {
		s := report.Scenario
		r := report.Result

		fmt.Fprintf(&b, "--- Results for scenario %s ---\n", report.Name)
		fmt.Fprintf(&b, "Training cost         %14s   (%d x %s)\n",
			format.Currency(r.TrainingCost), s.Participants, format.Currency(s.CostPerPerson))
		fmt.Fprintf(&b, "Opportunity cost      %14s   (%d x %d days x %s)\n",
			format.Currency(r.OpportunityCost), s.Participants, s.TrainingDays,
			format.Currency(s.DailyOpportunityRate))
		fmt.Fprintf(&b, "Total investment      %14s\n", format.Currency(r.TotalInvestment))
		fmt.Fprintf(&b, "Deals before          %14s per month   (%d leads x %s)\n",
			format.Deals(r.CurrentDealsPerMonth), s.MonthlyLeads, format.Percent(s.CurrentCloseRate))
		fmt.Fprintf(&b, "Deals after           %14s per month   (%d leads x %s)\n",
			format.Deals(r.TargetDealsPerMonth), s.MonthlyLeads, format.Percent(s.TargetCloseRate))
		fmt.Fprintf(&b, "Additional deals      %14s per month\n", format.Deals(r.AdditionalDealsPerMonth))
		fmt.Fprintf(&b, "Additional revenue    %14s per month\n", format.Currency(r.MonthlyRevenue))
		fmt.Fprintf(&b, "Additional margin     %14s per month   (at %s margin)\n",
			format.Currency(r.MonthlyMargin), format.Percent(s.MarginRate))
		fmt.Fprintf(&b, "Annual margin         %14s\n", format.Currency(r.AnnualMargin))
		fmt.Fprintf(&b, "Net benefit           %14s\n", format.Currency(r.NetBenefit))
		fmt.Fprintf(&b, "ROI (12 months)       %14s\n", format.Percent(r.ROIPercentage))
		fmt.Fprintf(&b, "Payback               %14s\n", paybackText(r))
		fmt.Fprintf(&b, "Recommendation: %s (%s)\n",
			report.Recommendation.Verdict, report.Recommendation.Rationale)
		if i < len(reports)-1 {
			fmt.Fprintf(&b, "\n")
		}
	}
	return b.String()
}

func paybackText(r roi.Result) string {
	if r.MonthlyMargin <= 0 {
		return "n/a (no positive monthly margin)"
	}
	return fmt.Sprintf("%d days", r.PaybackDays)
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(reports []Report) {
	fmt.Print(CsvString(reports))
}

// CsvString renders all scenario metrics in comma-separated value format.
func CsvString(reports []Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\"scenario\",\"metric\",\"value\",\"formatted\"\n")
	for _, report := range reports {
		r := report.Result
		rows := []struct {
			metric    string
			value     float64
			formatted string
		}{
			{"trainingCost", r.TrainingCost, format.Currency(r.TrainingCost)},
			{"opportunityCost", r.OpportunityCost, format.Currency(r.OpportunityCost)},
			{"totalInvestment", r.TotalInvestment, format.Currency(r.TotalInvestment)},
			{"currentDealsPerMonth", r.CurrentDealsPerMonth, format.Deals(r.CurrentDealsPerMonth)},
			{"targetDealsPerMonth", r.TargetDealsPerMonth, format.Deals(r.TargetDealsPerMonth)},
			{"additionalDealsPerMonth", r.AdditionalDealsPerMonth, format.Deals(r.AdditionalDealsPerMonth)},
			{"monthlyRevenue", r.MonthlyRevenue, format.Currency(r.MonthlyRevenue)},
			{"monthlyMargin", r.MonthlyMargin, format.Currency(r.MonthlyMargin)},
			{"annualMargin", r.AnnualMargin, format.Currency(r.AnnualMargin)},
			{"netBenefit", r.NetBenefit, format.Currency(r.NetBenefit)},
			{"roiPercentage", r.ROIPercentage, format.Percent(r.ROIPercentage)},
			{"roiMultiple", r.ROIMultiple, fmt.Sprintf("%.1fx", r.ROIMultiple)},
			{"paybackDays", float64(r.PaybackDays), paybackText(r)},
		}
		for _, row := range rows {
			fmt.Fprintf(&b, "\"%s\",\"%s\",\"%.2f\",\"%s\"\n",
				report.Name, row.metric, row.value, row.formatted)
		}
	}
	return b.String()
}

type exportDocument struct {
	Timestamp string   `json:"timestamp"`
	Reports   []Report `json:"reports"`
}

// JSONFormat outputs a timestamped structured export.
func JSONFormat(reports []Report) error {
	s, err := JSONString(reports)
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}

// JSONString renders a timestamped structured export of all reports.
func JSONString(reports []Report) (string, error) {
	doc := exportDocument{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Reports:   reports,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode export: %w", err)
	}
	return string(data), nil
}

// SlidesFormat outputs slide-deck text for pasting into a management deck.
func SlidesFormat(reports []Report) {
	fmt.Print(SlidesString(reports))
}

// SlidesString renders the slide-deck text export: key results, the
// recommendation, and the supporting argument sections per scenario.
func SlidesString(reports []Report) string {
	var b strings.Builder
	for i, report := range reports {
		r := report.Result

		fmt.Fprintf(&b, "# Sales Training ROI - %s\n\n", report.Name)
		fmt.Fprintf(&b, "## Key Results\n")
		fmt.Fprintf(&b, "- Total investment: %s\n", format.Currency(r.TotalInvestment))
		fmt.Fprintf(&b, "- Additional revenue per month: %s\n", format.Currency(r.MonthlyRevenue))
		fmt.Fprintf(&b, "- Additional margin per month: %s\n", format.Currency(r.MonthlyMargin))
		fmt.Fprintf(&b, "- ROI (12 months): %s\n", format.WholePercent(r.ROIPercentage))
		fmt.Fprintf(&b, "- Payback: %s\n", paybackText(r))
		fmt.Fprintf(&b, "- Annual margin: %s\n\n", format.Currency(r.AnnualMargin))

		fmt.Fprintf(&b, "## Recommendation\n")
		fmt.Fprintf(&b, "%s: %s\n\n", strings.ToUpper(string(report.Recommendation.Verdict)),
			report.Recommendation.Rationale)

		for _, section := range Narrative(report.Scenario, r) {
			fmt.Fprintf(&b, "## %s\n", section.Title)
			for _, line := range section.Lines {
				fmt.Fprintf(&b, "- %s\n", line)
			}
			fmt.Fprintf(&b, "\n")
		}

		if i < len(reports)-1 {
			fmt.Fprintf(&b, "\n")
		}
	}
	return b.String()
}
