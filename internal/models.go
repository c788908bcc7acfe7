package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BudgetLevel string

const (
	BudgetLow      BudgetLevel = "budget"
	BudgetMidRange BudgetLevel = "mid_range"
	BudgetLuxury   BudgetLevel = "luxury"
)

type TravelerType string

const (
	TravelerSolo     TravelerType = "solo"
	TravelerCouple   TravelerType = "couple"
	TravelerFamily   TravelerType = "family"
	TravelerFriends  TravelerType = "friends"
	TravelerBusiness TravelerType = "business"
)

type ActivityPreference struct {
	Name          string `json:"name" validate:"required"`
	InterestLevel int    `json:"interest_level" validate:"min=1,max=5"`
}

type TripRequest struct {
	Destination         string               `json:"destination" validate:"required"`
	StartDate           Date                 `json:"start_date" validate:"required"`
	EndDate             Date                 `json:"end_date" validate:"required"`
	Budget              decimal.Decimal      `json:"budget" validate:"required,gt=0"`
	BudgetLevel         BudgetLevel          `json:"budget_level" validate:"omitempty,oneof=budget mid_range luxury"`
	Travelers           int                  `json:"travelers" validate:"omitempty,min=1"`
	TravelerType        TravelerType         `json:"traveler_type" validate:"omitempty,oneof=solo couple family friends business"`
	Themes              []string             `json:"themes" validate:"dive,trip_theme"`
	Interests           []ActivityPreference `json:"interests" validate:"dive"`
	AccommodationTypes  []string             `json:"preferred_accommodation_types"`
	Transportation      []string             `json:"preferred_transportation"`
	DietaryRestrictions []string             `json:"dietary_restrictions"`
	AccessibilityNeeds  []string             `json:"accessibility_needs"`
	SpecialRequests     string               `json:"special_requests,omitempty"`
}

type Activity struct {
	Time     string          `json:"time"`
	Name     string          `json:"name"`
	Duration int             `json:"duration"`
	Cost     decimal.Decimal `json:"cost"`
	Location string          `json:"location"`
}

// TripDayPlan is one calendar day of a generated itinerary. Day plans are
// produced in bulk by the itinerary strategy and never mutated afterwards.
type TripDayPlan struct {
	Date          Date            `json:"date"`
	Activities    []Activity      `json:"activities"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
}

type TripPlan struct {
	ID                 uuid.UUID       `json:"id"`
	Destination        string          `json:"destination"`
	StartDate          Date            `json:"start_date"`
	EndDate            Date            `json:"end_date"`
	TotalEstimatedCost decimal.Decimal `json:"total_estimated_cost"`
	DailyPlans         []TripDayPlan   `json:"daily_plans"`
	Summary            string          `json:"summary"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	MethodCreditCard PaymentMethod = "credit_card"
	MethodDebitCard  PaymentMethod = "debit_card"
	MethodUPI        PaymentMethod = "upi"
	MethodNetBanking PaymentMethod = "net_banking"
	MethodWallet     PaymentMethod = "wallet"
)

type BookingItem struct {
	Type     string            `json:"type" validate:"required"`
	ItemID   string            `json:"item_id" validate:"required"`
	Name     string            `json:"name" validate:"required"`
	Quantity int               `json:"quantity" validate:"min=0"`
	Price    decimal.Decimal   `json:"price" validate:"gte=0"`
	Date     Date              `json:"date" validate:"required"`
	Time     string            `json:"time,omitempty"`
	Details  map[string]string `json:"details,omitempty"`
}

type CreateBookingRequest struct {
	TripID          string            `json:"trip_id" validate:"required"`
	Items           []BookingItem     `json:"items" validate:"required,min=1,dive"`
	PaymentMethod   PaymentMethod     `json:"payment_method" validate:"required,oneof=credit_card debit_card upi net_banking wallet"`
	ContactInfo     map[string]string `json:"contact_info"`
	SpecialRequests string            `json:"special_requests,omitempty"`
}

// TotalAmount sums price * quantity over all items. An omitted quantity
// counts as a single unit.
func (r *CreateBookingRequest) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range r.Items {
		qty := item.Quantity
		if qty == 0 {
			qty = 1
		}
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(qty))))
	}
	return total
}

type Booking struct {
	ID              uuid.UUID         `json:"id"`
	UserID          string            `json:"user_id"`
	TripID          string            `json:"trip_id"`
	Items           []BookingItem     `json:"items"`
	Status          BookingStatus     `json:"status"`
	PaymentStatus   PaymentStatus     `json:"payment_status"`
	PaymentMethod   PaymentMethod     `json:"payment_method"`
	TotalAmount     decimal.Decimal   `json:"total_amount"`
	Currency        string            `json:"currency"`
	ContactInfo     map[string]string `json:"contact_info"`
	SpecialRequests string            `json:"special_requests,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type PaymentResult struct {
	Status    PaymentStatus `json:"status"`
	Reference string        `json:"reference"`
}

// Identity is the authenticated caller as supplied by the auth layer.
// The email doubles as the owner key on bookings.
type Identity struct {
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	IsActive bool   `json:"is_active"`
}

type Destination struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Country           string          `json:"country"`
	Description       string          `json:"description"`
	ImageURL          string          `json:"image_url,omitempty"`
	Popularity        int             `json:"popularity"`
	BestTimeToVisit   string          `json:"best_time_to_visit"`
	AverageCostPerDay decimal.Decimal `json:"average_cost_per_day"`
}

type DestinationSearchRequest struct {
	Query string `json:"query" validate:"required"`
	Limit int    `json:"limit"`
}

type DestinationActivity struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Duration   int    `json:"duration"`
	PriceRange string `json:"price_range"`
}
