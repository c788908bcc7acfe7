// Package planner contains itinerary strategies. TemplateStrategy is the
// fixed five-slot day template used until a smarter allocator lands.
package planner

import (
	"context"
	"fmt"
	"strings"

	models "github.com/kabirm/safarnama/internal"
	"github.com/shopspring/decimal"
)

// planningMargin reserves 10% of the budget as headroom. Policy constant,
// placeholder for a future cost-optimizing allocator.
var planningMargin = decimal.NewFromFloat(0.9)

type TemplateStrategy struct{}

func NewTemplateStrategy() *TemplateStrategy {
	return &TemplateStrategy{}
}

// GeneratePlan expects a request that already passed validation: the date
// range must span at least one day.
//
// The aggregate estimate is budget * planningMargin while each day carries
// the fixed template cost. The two figures deliberately do not reconcile;
// callers must not assume day costs sum to the total.
func (s *TemplateStrategy) GeneratePlan(ctx context.Context, request *models.TripRequest) (*models.TripPlan, error) {
	duration := request.StartDate.DaysUntil(request.EndDate) + 1
	if duration < 1 {
		return nil, models.ErrInvalidDates
	}

	dailyPlans := make([]models.TripDayPlan, 0, duration)
	for day := 0; day < duration; day++ {
		activities := dayTemplate(request.Destination)
		cost := decimal.Zero
		for _, a := range activities {
			cost = cost.Add(a.Cost)
		}
		dailyPlans = append(dailyPlans, models.TripDayPlan{
			Date:          request.StartDate.AddDays(day),
			Activities:    activities,
			EstimatedCost: cost,
		})
	}

	return &models.TripPlan{
		Destination:        request.Destination,
		StartDate:          request.StartDate,
		EndDate:            request.EndDate,
		TotalEstimatedCost: request.Budget.Mul(planningMargin),
		DailyPlans:         dailyPlans,
		Summary:            summarize(duration, request),
	}, nil
}

func dayTemplate(destination string) []models.Activity {
	return []models.Activity{
		{Time: "09:00", Name: "Breakfast at a local cafe", Duration: 60, Cost: decimal.NewFromInt(15), Location: "Downtown"},
		{Time: "10:30", Name: fmt.Sprintf("%s City Tour", destination), Duration: 180, Cost: decimal.NewFromInt(45), Location: "City Center"},
		{Time: "14:00", Name: "Lunch at a local restaurant", Duration: 90, Cost: decimal.NewFromInt(25), Location: "Main Square"},
		{Time: "16:00", Name: "Free time to explore", Duration: 120, Cost: decimal.Zero, Location: ""},
		{Time: "19:30", Name: "Dinner at a recommended restaurant", Duration: 120, Cost: decimal.NewFromInt(40), Location: "Riverside District"},
	}
}

func summarize(duration int, request *models.TripRequest) string {
	return fmt.Sprintf("A %d-day trip to %s with a %s budget, focusing on %s.",
		duration,
		request.Destination,
		request.BudgetLevel,
		strings.Join(request.Themes, ", "),
	)
}
