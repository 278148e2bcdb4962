package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jvelker/training-roi/internal/roi"
)

func referenceReport() Report {
	return BuildReport("baseline", roi.DefaultScenario())
}

func regressionReport() Report {
	s := roi.DefaultScenario()
	s.TargetCloseRate = 8
	return BuildReport("regression", s)
}

func TestBuildReport(t *testing.T) {
	report := referenceReport()

	if report.Name != "baseline" {
		t.Errorf("Name = %q, expected baseline", report.Name)
	}
	if report.Result.PaybackDays != 28 {
		t.Errorf("PaybackDays = %d, expected 28", report.Result.PaybackDays)
	}
	if report.Recommendation.Verdict != roi.VerdictStrong {
		t.Errorf("Verdict = %s, expected strong", report.Recommendation.Verdict)
	}
}

func TestPrettyString(t *testing.T) {
	out := PrettyString([]Report{referenceReport()})

	for _, want := range []string{
		"--- Results for scenario baseline ---",
		"33.600 €",
		"432.000 €",
		"398.400 €",
		"1.185,7 %",
		"28 days",
		"Recommendation: strong",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output missing %q:\n%s", want, out)
		}
	}
}

func TestPrettyStringPaybackSentinel(t *testing.T) {
	out := PrettyString([]Report{regressionReport()})

	if !strings.Contains(out, "n/a (no positive monthly margin)") {
		t.Errorf("expected sentinel payback to render as n/a:\n%s", out)
	}
	if strings.Contains(out, "0 days") {
		t.Errorf("sentinel payback must not render as 0 days:\n%s", out)
	}
}

func TestCsvString(t *testing.T) {
	out := CsvString([]Report{referenceReport(), regressionReport()})

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Header plus 13 metric rows per scenario.
	if len(lines) != 1+2*13 {
		t.Fatalf("expected %d lines, got %d", 1+2*13, len(lines))
	}
	if lines[0] != `"scenario","metric","value","formatted"` {
		t.Errorf("unexpected header: %s", lines[0])
	}

	for _, want := range []string{
		`"baseline","totalInvestment","33600.00","33.600 €"`,
		`"baseline","paybackDays","28.00","28 days"`,
		`"regression","additionalDealsPerMonth","-6.00","-6,0"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("CSV missing %q:\n%s", want, out)
		}
	}
}

func TestJSONString(t *testing.T) {
	out, err := JSONString([]Report{referenceReport()})
	if err != nil {
		t.Fatalf("JSONString failed: %v", err)
	}

	var doc struct {
		Timestamp string   `json:"timestamp"`
		Reports   []Report `json:"reports"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}

	if doc.Timestamp == "" {
		t.Error("expected a timestamp")
	}
	if len(doc.Reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(doc.Reports))
	}
	if doc.Reports[0].Result.TotalInvestment != 33600 {
		t.Errorf("TotalInvestment = %.2f, expected 33600", doc.Reports[0].Result.TotalInvestment)
	}
	if doc.Reports[0].Scenario.Participants != 8 {
		t.Errorf("Participants = %d, expected 8", doc.Reports[0].Scenario.Participants)
	}
}

func TestSlidesString(t *testing.T) {
	out := SlidesString([]Report{referenceReport()})

	for _, want := range []string{
		"# Sales Training ROI - baseline",
		"## Key Results",
		"- Total investment: 33.600 €",
		"- ROI (12 months): 1.186 %",
		"## Recommendation",
		"STRONG:",
		"## Best Case",
		"## Executive Arguments",
		"## Risks",
		"## Margin Focus",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("slides output missing %q:\n%s", want, out)
		}
	}
}

func TestFormats(t *testing.T) {
	formats := Formats()
	if len(formats) != 4 {
		t.Fatalf("expected 4 formats, got %d", len(formats))
	}
	if formats[0] != "pretty" {
		t.Errorf("first format = %q, expected pretty", formats[0])
	}
}
