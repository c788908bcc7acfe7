package models_test

import (
	"encoding/json"
	"testing"
	"time"

	models "github.com/kabirm/safarnama/internal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	var d models.Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-10"`), &d))
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 10, d.Day())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-10"`, string(out))
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	var d models.Date
	assert.Error(t, json.Unmarshal([]byte(`"10/01/2024"`), &d))
}

func TestDateArithmetic(t *testing.T) {
	start := models.NewDate(2024, time.January, 10)
	end := models.NewDate(2024, time.January, 12)

	assert.Equal(t, 2, start.DaysUntil(end))
	assert.Equal(t, end, start.AddDays(2))
}

func TestCreateBookingTotalAmount(t *testing.T) {
	items := []models.BookingItem{
		{Type: "hotel", ItemID: "h1", Name: "Beach Resort", Quantity: 2, Price: decimal.NewFromInt(500)},
		{Type: "activity", ItemID: "a1", Name: "City Tour", Quantity: 1, Price: decimal.NewFromInt(300)},
	}

	request := &models.CreateBookingRequest{Items: items}
	assert.True(t, request.TotalAmount().Equal(decimal.NewFromInt(1300)))

	// total is independent of item order
	reversed := &models.CreateBookingRequest{Items: []models.BookingItem{items[1], items[0]}}
	assert.True(t, reversed.TotalAmount().Equal(decimal.NewFromInt(1300)))
}

func TestCreateBookingTotalAmountDefaultsQuantity(t *testing.T) {
	request := &models.CreateBookingRequest{
		Items: []models.BookingItem{
			{Type: "flight", ItemID: "f1", Name: "Red-eye", Price: decimal.NewFromInt(250)},
		},
	}
	assert.True(t, request.TotalAmount().Equal(decimal.NewFromInt(250)))
}
