package output

import (
	"strings"
	"testing"

	"github.com/jvelker/training-roi/internal/roi"
)

func TestNarrativeSections(t *testing.T) {
	s := roi.DefaultScenario()
	r := roi.Compute(s)

	sections := Narrative(s, r)
	if len(sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(sections))
	}

	titles := []string{"Best Case", "Executive Arguments", "Risks", "Margin Focus"}
	for i, section := range sections {
		if section.Title != titles[i] {
			t.Errorf("section %d title = %q, expected %q", i, section.Title, titles[i])
		}
		if len(section.Lines) == 0 {
			t.Errorf("section %q has no lines", section.Title)
		}
	}

	joined := strings.Join(sections[1].Lines, "\n")
	if !strings.Contains(joined, "432.000 €") {
		t.Errorf("executive arguments missing annual margin figure:\n%s", joined)
	}
	if !strings.Contains(joined, "28 days") {
		t.Errorf("executive arguments missing payback figure:\n%s", joined)
	}
}

func TestNarrativeDegenerateScenario(t *testing.T) {
	// Zero additional deals and zero investment must not divide by zero.
	s := roi.Scenario{
		MonthlyLeads:     100,
		CurrentCloseRate: 10,
		TargetCloseRate:  10,
		DealValue:        5000,
		MarginRate:       25,
	}
	r := roi.Compute(s)

	sections := Narrative(s, r)
	if len(sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(sections))
	}

	// Per-deal and amortization lines are skipped when undefined.
	joined := strings.Join(sections[1].Lines, "\n")
	if strings.Contains(joined, "amortizes") {
		t.Errorf("amortization line present despite non-positive margin:\n%s", joined)
	}
	if strings.Contains(joined, "Each additional deal") {
		t.Errorf("per-deal line present despite zero additional deals:\n%s", joined)
	}
}
