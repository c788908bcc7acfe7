package planner_test

import (
	"context"
	"testing"
	"time"

	models "github.com/kabirm/safarnama/internal"
	"github.com/kabirm/safarnama/internal/planner"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tripRequest() *models.TripRequest {
	return &models.TripRequest{
		Destination: "Goa",
		StartDate:   models.NewDate(2024, time.January, 10),
		EndDate:     models.NewDate(2024, time.January, 12),
		Budget:      decimal.NewFromInt(10000),
		BudgetLevel: models.BudgetMidRange,
		Themes:      []string{"beach", "nightlife"},
	}
}

func TestGeneratePlan(t *testing.T) {
	strategy := planner.NewTemplateStrategy()
	ctx := context.Background()

	plan, err := strategy.GeneratePlan(ctx, tripRequest())
	require.NoError(t, err)

	t.Run("one day plan per calendar day", func(t *testing.T) {
		require.Len(t, plan.DailyPlans, 3)
		for i, day := range plan.DailyPlans {
			assert.Equal(t, models.NewDate(2024, time.January, 10+i), day.Date)
		}
	})

	t.Run("aggregate estimate is 90 percent of budget", func(t *testing.T) {
		assert.True(t, plan.TotalEstimatedCost.Equal(decimal.NewFromInt(9000)),
			"got %s", plan.TotalEstimatedCost)
	})

	t.Run("day cost is the template sum", func(t *testing.T) {
		for _, day := range plan.DailyPlans {
			assert.True(t, day.EstimatedCost.Equal(decimal.NewFromInt(125)),
				"got %s", day.EstimatedCost)
		}
	})

	t.Run("five slots with the city tour keyed by destination", func(t *testing.T) {
		day := plan.DailyPlans[0]
		require.Len(t, day.Activities, 5)
		assert.Equal(t, "09:00", day.Activities[0].Time)
		assert.Equal(t, "Goa City Tour", day.Activities[1].Name)
		assert.True(t, day.Activities[3].Cost.IsZero())
	})

	t.Run("summary mentions duration and destination", func(t *testing.T) {
		assert.Contains(t, plan.Summary, "3-day trip to Goa")
		assert.Contains(t, plan.Summary, "mid_range budget")
		assert.Contains(t, plan.Summary, "beach, nightlife")
	})
}

func TestGeneratePlanSingleNight(t *testing.T) {
	strategy := planner.NewTemplateStrategy()
	request := tripRequest()
	request.EndDate = models.NewDate(2024, time.January, 11)

	plan, err := strategy.GeneratePlan(context.Background(), request)
	require.NoError(t, err)
	assert.Len(t, plan.DailyPlans, 2)
}

func TestGeneratePlanReversedRange(t *testing.T) {
	strategy := planner.NewTemplateStrategy()
	request := tripRequest()
	request.EndDate = models.NewDate(2024, time.January, 1)

	_, err := strategy.GeneratePlan(context.Background(), request)
	assert.ErrorIs(t, err, models.ErrInvalidDates)
}
