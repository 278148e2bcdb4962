// Package roi implements the return-on-investment computation for a
// sales-training scenario. Compute is a pure function: it performs no I/O,
// keeps no state between calls, and yields identical results for identical
// inputs.
package roi

import (
	"github.com/jvelker/training-roi/pkg/constants"
	"github.com/jvelker/training-roi/pkg/mathutil"
)

// Scenario holds the input parameters describing a sales-training program.
// It is a value object; construct it once and pass it to Compute.
type Scenario struct {
	Participants         int     `json:"participants" mapstructure:"participants"`
	CostPerPerson        float64 `json:"costPerPerson" mapstructure:"costPerPerson"`
	MonthlyLeads         int     `json:"monthlyLeads" mapstructure:"monthlyLeads"`
	CurrentCloseRate     float64 `json:"currentCloseRate" mapstructure:"currentCloseRate"`
	TargetCloseRate      float64 `json:"targetCloseRate" mapstructure:"targetCloseRate"`
	DealValue            float64 `json:"dealValue" mapstructure:"dealValue"`
	MarginRate           float64 `json:"marginRate" mapstructure:"marginRate"`
	TrainingDays         int     `json:"trainingDays" mapstructure:"trainingDays"`
	DailyOpportunityRate float64 `json:"dailyOpportunityRate" mapstructure:"dailyOpportunityRate"`
}

// Result holds the derived financial metrics for a scenario.
//
// PaybackDays is 0 whenever MonthlyMargin is not positive. That 0 is a
// sentinel meaning the payback period is undefined (the investment never
// amortizes), not an instant payback; consumers rendering it should label
// it accordingly.
type Result struct {
	TrainingCost            float64 `json:"trainingCost"`
	OpportunityCost         float64 `json:"opportunityCost"`
	TotalInvestment         float64 `json:"totalInvestment"`
	CurrentDealsPerMonth    float64 `json:"currentDealsPerMonth"`
	TargetDealsPerMonth     float64 `json:"targetDealsPerMonth"`
	AdditionalDealsPerMonth float64 `json:"additionalDealsPerMonth"`
	MonthlyRevenue          float64 `json:"monthlyRevenue"`
	MonthlyMargin           float64 `json:"monthlyMargin"`
	AnnualMargin            float64 `json:"annualMargin"`
	NetBenefit              float64 `json:"netBenefit"`
	ROIPercentage           float64 `json:"roiPercentage"`
	ROIMultiple             float64 `json:"roiMultiple"`
	PaybackDays             int     `json:"paybackDays"`
}

// DefaultScenario returns the documented reference scenario.
func DefaultScenario() Scenario {
	return Scenario{
		Participants:         constants.DefaultParticipants,
		CostPerPerson:        constants.DefaultCostPerPerson,
		MonthlyLeads:         constants.DefaultMonthlyLeads,
		CurrentCloseRate:     constants.DefaultCurrentCloseRate,
		TargetCloseRate:      constants.DefaultTargetCloseRate,
		DealValue:            constants.DefaultDealValue,
		MarginRate:           constants.DefaultMarginRate,
		TrainingDays:         constants.DefaultTrainingDays,
		DailyOpportunityRate: constants.DefaultDailyOpportunityRate,
	}
}

// Normalized returns a copy of the scenario with the two optional parameters
// filled in when unset: TrainingDays defaults to 3 and DailyOpportunityRate
// to 400. All other fields are left as provided; a zero participant or lead
// count is a meaningful input, not an omission.
func (s Scenario) Normalized() Scenario {
	if s.TrainingDays == 0 {
		s.TrainingDays = constants.DefaultTrainingDays
	}
	if s.DailyOpportunityRate == 0 {
		s.DailyOpportunityRate = constants.DefaultDailyOpportunityRate
	}
	return s
}

// Compute derives all financial metrics for the given scenario.
//
// The computation proceeds in a fixed order: investment, deal delta,
// revenue and margin impact, annualized margin, net benefit, ROI, payback.
// Monetary figures are rounded to cents at the point they are first derived;
// the sums and deltas built from them stay exact. Ranges are not enforced
// here; callers validate before invoking. Degenerate inputs fall through to
// defined values rather than errors: a zero total investment yields zero ROI
// figures, and a non-positive monthly margin yields the PaybackDays
// sentinel 0.
func Compute(s Scenario) Result {
	trainingCost := mathutil.Round(float64(s.Participants) * s.CostPerPerson)
	opportunityCost := mathutil.Round(float64(s.Participants) * float64(s.TrainingDays) * s.DailyOpportunityRate)
	totalInvestment := trainingCost + opportunityCost

	currentDeals := mathutil.ApplyPercentage(float64(s.MonthlyLeads), s.CurrentCloseRate)
	targetDeals := mathutil.ApplyPercentage(float64(s.MonthlyLeads), s.TargetCloseRate)
	additionalDeals := targetDeals - currentDeals

	monthlyRevenue := mathutil.Round(additionalDeals * s.DealValue)
	monthlyMargin := mathutil.Round(mathutil.ApplyPercentage(monthlyRevenue, s.MarginRate))
	annualMargin := monthlyMargin * constants.MonthsPerYear

	netBenefit := annualMargin - totalInvestment

	var roiPercentage, roiMultiple float64
	if totalInvestment > 0 {
		roiPercentage = mathutil.CalculatePercentage(netBenefit, totalInvestment)
		roiMultiple = netBenefit / totalInvestment
	}

	paybackDays := 0
	if monthlyMargin > 0 {
		paybackDays = int(totalInvestment / monthlyMargin * constants.DaysPerMonth)
	}

	return Result{
		TrainingCost:            trainingCost,
		OpportunityCost:         opportunityCost,
		TotalInvestment:         totalInvestment,
		CurrentDealsPerMonth:    currentDeals,
		TargetDealsPerMonth:     targetDeals,
		AdditionalDealsPerMonth: additionalDeals,
		MonthlyRevenue:          monthlyRevenue,
		MonthlyMargin:           monthlyMargin,
		AnnualMargin:            annualMargin,
		NetBenefit:              netBenefit,
		ROIPercentage:           roiPercentage,
		ROIMultiple:             roiMultiple,
		PaybackDays:             paybackDays,
	}
}
