package validator

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	models "github.com/kabirm/safarnama/internal"
	"github.com/shopspring/decimal"
)

var tripThemes = map[string]bool{
	"adventure":   true,
	"beach":       true,
	"cultural":    true,
	"luxury":      true,
	"backpacking": true,
	"family":      true,
	"honeymoon":   true,
	"road_trip":   true,
	"food":        true,
	"nightlife":   true,
	"shopping":    true,
	"wildlife":    true,
	"wellness":    true,
	"photography": true,
	"religious":   true,
	"educational": true,
	"business":    true,
}

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	v.RegisterCustomTypeFunc(decimalToFloat, decimal.Decimal{})
	v.RegisterCustomTypeFunc(dateToTime, models.Date{})
	v.RegisterValidation("trip_theme", validateTripTheme)

	return &CustomValidator{validator: v}
}

// ValidateTripRequest checks date order before anything else; planning must
// never run against a reversed date range.
func (cv *CustomValidator) ValidateTripRequest(request *models.TripRequest) error {
	if !request.EndDate.After(request.StartDate.Time) {
		return models.ErrInvalidDates
	}
	return cv.validateStruct(request)
}

func (cv *CustomValidator) ValidateCreateBooking(request *models.CreateBookingRequest) error {
	return cv.validateStruct(request)
}

func (cv *CustomValidator) validateStruct(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return fmt.Errorf("%w: %s", models.ErrValidation, err.Error())
	}
	return nil
}

func validateTripTheme(fl validator.FieldLevel) bool {
	return tripThemes[fl.Field().String()]
}

func decimalToFloat(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func dateToTime(field reflect.Value) interface{} {
	if d, ok := field.Interface().(models.Date); ok {
		return d.Time
	}
	return nil
}
