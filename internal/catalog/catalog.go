// Package catalog serves the static destination records the planner and
// frontend browse. A durable catalog can replace it behind
// ports.DestinationCatalog.
package catalog

import (
	"context"
	"sort"
	"strings"

	models "github.com/kabirm/safarnama/internal"
	"github.com/shopspring/decimal"
)

const defaultLimit = 10

type StaticCatalog struct {
	destinations []models.Destination
	activities   map[string][]models.DestinationActivity
}

func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{
		destinations: seedDestinations(),
		activities:   seedActivities(),
	}
}

func (c *StaticCatalog) GetByID(ctx context.Context, id string) (*models.Destination, error) {
	for _, dest := range c.destinations {
		if dest.ID == id {
			d := dest
			return &d, nil
		}
	}
	return nil, models.ErrDestinationNotFound
}

func (c *StaticCatalog) Search(ctx context.Context, query string, limit int) ([]models.Destination, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	q := strings.ToLower(query)

	results := []models.Destination{}
	for _, dest := range c.destinations {
		if strings.Contains(strings.ToLower(dest.Name), q) ||
			strings.Contains(strings.ToLower(dest.Description), q) ||
			strings.Contains(strings.ToLower(dest.Country), q) {
			results = append(results, dest)
		}
		if len(results) == limit {
			break
		}
	}
	return results, nil
}

func (c *StaticCatalog) Popular(ctx context.Context, limit int, country string) ([]models.Destination, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	results := []models.Destination{}
	for _, dest := range c.destinations {
		if country == "" || strings.EqualFold(dest.Country, country) {
			results = append(results, dest)
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Popularity > results[j].Popularity
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (c *StaticCatalog) Activities(ctx context.Context, destinationID string) ([]models.DestinationActivity, error) {
	activities, ok := c.activities[destinationID]
	if !ok {
		return nil, models.ErrDestinationNotFound
	}
	return activities, nil
}

func seedDestinations() []models.Destination {
	return []models.Destination{
		{
			ID:                "1",
			Name:              "Goa",
			Country:           "India",
			Description:       "Famous for its beaches, nightlife, and Portuguese heritage.",
			ImageURL:          "https://example.com/goa.jpg",
			Popularity:        95,
			BestTimeToVisit:   "November to February",
			AverageCostPerDay: decimal.NewFromInt(3500),
		},
		{
			ID:                "2",
			Name:              "Jaipur",
			Country:           "India",
			Description:       "The Pink City known for its rich history and majestic forts.",
			ImageURL:          "https://example.com/jaipur.jpg",
			Popularity:        90,
			BestTimeToVisit:   "October to March",
			AverageCostPerDay: decimal.NewFromInt(4000),
		},
		{
			ID:                "3",
			Name:              "Kerala",
			Country:           "India",
			Description:       "God's Own Country with backwaters, beaches, and hill stations.",
			ImageURL:          "https://example.com/kerala.jpg",
			Popularity:        92,
			BestTimeToVisit:   "September to March",
			AverageCostPerDay: decimal.NewFromInt(3800),
		},
	}
}

func seedActivities() map[string][]models.DestinationActivity {
	return map[string][]models.DestinationActivity{
		"1": {
			{ID: "a1", Name: "Beach Hopping", Duration: 6, PriceRange: "500-1500"},
			{ID: "a2", Name: "Water Sports at Baga Beach", Duration: 3, PriceRange: "1000-3000"},
			{ID: "a3", Name: "Fort Aguada Visit", Duration: 2, PriceRange: "200-500"},
		},
		"2": {
			{ID: "a4", Name: "Amber Fort Tour", Duration: 3, PriceRange: "800-2000"},
			{ID: "a5", Name: "City Palace Visit", Duration: 2, PriceRange: "500-1500"},
			{ID: "a6", Name: "Elephant Ride", Duration: 1, PriceRange: "1000-2000"},
		},
		"3": {
			{ID: "a7", Name: "Backwater Cruise", Duration: 8, PriceRange: "2000-5000"},
			{ID: "a8", Name: "Ayurvedic Massage", Duration: 2, PriceRange: "1500-4000"},
			{ID: "a9", Name: "Tea Plantation Tour", Duration: 4, PriceRange: "1000-2500"},
		},
	}
}
