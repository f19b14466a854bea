// Package queries contains read-only operations that bypass the domain model.
// Query handlers read the database directly and return read models shaped for
// the API surface, implementing the read side of the CQRS architecture.
package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UserSummary is the identity projection of a user: everything a caller may
// see about an account except its credential.
type UserSummary struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role"`
}

// OrderView is the read model for one order, with resolved rider and driver
// identity projections.
type OrderView struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	RiderID         string          `json:"riderId"`
	DriverID        *string         `json:"driverId,omitempty"`
	PickupLocation  string          `json:"pickupLocation"`
	DropoffLocation string          `json:"dropoffLocation"`
	Distance        float64         `json:"distance"`
	Duration        float64         `json:"duration"`
	Fare            decimal.Decimal `json:"fare"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"paymentStatus"`
	PaymentMethod   string          `json:"paymentMethod,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	ScheduledTime   *time.Time      `json:"scheduledTime,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`

	Rider    *UserSummary     `json:"rider,omitempty"`
	Driver   *UserSummary     `json:"driver,omitempty"`
	Tracking *TrackingSummary `json:"tracking,omitempty"`
}

// TrackingSummary is the short tracking projection embedded in an order view.
type TrackingSummary struct {
	ID             string `json:"id"`
	TrackingNumber string `json:"trackingNumber"`
	Status         string `json:"status"`
}

// TrackingView is the read model for one tracking record with its full
// history ledger, newest event first.
type TrackingView struct {
	ID               string     `json:"id"`
	TrackingNumber   string     `json:"trackingNumber"`
	OrderID          string     `json:"orderId"`
	Status           string     `json:"status"`
	CurrentLocation  string     `json:"currentLocation,omitempty"`
	EstimatedArrival *time.Time `json:"estimatedArrival,omitempty"`
	Notes            string     `json:"notes,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`

	History []HistoryEventView `json:"history"`
	Order   *OrderView         `json:"order,omitempty"`
}

// HistoryEventView is the read model for one ledger event.
type HistoryEventView struct {
	ID          string    `json:"id"`
	TrackingID  string    `json:"trackingId"`
	Status      string    `json:"status"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// Row types map the persistence tables for direct reads. Column layout must
// stay in sync with the adapters' DTOs.

type orderRow struct {
	ID              uuid.UUID
	Number          string
	RiderID         uuid.UUID
	DriverID        *uuid.UUID
	PickupLocation  string
	DropoffLocation string
	Distance        float64
	Duration        float64
	Fare            decimal.Decimal
	Status          string
	PaymentStatus   string
	PaymentMethod   string
	Notes           string
	ScheduledTime   *time.Time
	CreatedAt       time.Time
}

func (orderRow) TableName() string { return "orders" }

type trackingRow struct {
	ID               uuid.UUID
	Number           string
	OrderID          uuid.UUID
	Status           string
	CurrentLocation  string
	EstimatedArrival *time.Time
	Notes            string
	CreatedAt        time.Time
}

func (trackingRow) TableName() string { return "trackings" }

type historyRow struct {
	ID          uuid.UUID
	TrackingID  uuid.UUID
	Status      string
	Location    string
	Description string
	Timestamp   time.Time
}

func (historyRow) TableName() string { return "tracking_history" }

type userRow struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	PhoneNumber  string
	Address      string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	DeletedAt    gorm.DeletedAt
}

func (userRow) TableName() string { return "users" }

func (r orderRow) toView() OrderView {
	var driverID *string
	if r.DriverID != nil {
		s := r.DriverID.String()
		driverID = &s
	}

	return OrderView{
		ID:              r.ID.String(),
		OrderNumber:     r.Number,
		RiderID:         r.RiderID.String(),
		DriverID:        driverID,
		PickupLocation:  r.PickupLocation,
		DropoffLocation: r.DropoffLocation,
		Distance:        r.Distance,
		Duration:        r.Duration,
		Fare:            r.Fare,
		Status:          r.Status,
		PaymentStatus:   r.PaymentStatus,
		PaymentMethod:   r.PaymentMethod,
		Notes:           r.Notes,
		ScheduledTime:   r.ScheduledTime,
		CreatedAt:       r.CreatedAt,
	}
}

func (r trackingRow) toView() TrackingView {
	return TrackingView{
		ID:               r.ID.String(),
		TrackingNumber:   r.Number,
		OrderID:          r.OrderID.String(),
		Status:           r.Status,
		CurrentLocation:  r.CurrentLocation,
		EstimatedArrival: r.EstimatedArrival,
		Notes:            r.Notes,
		CreatedAt:        r.CreatedAt,
		History:          make([]HistoryEventView, 0),
	}
}

func (r historyRow) toView() HistoryEventView {
	return HistoryEventView{
		ID:          r.ID.String(),
		TrackingID:  r.TrackingID.String(),
		Status:      r.Status,
		Location:    r.Location,
		Description: r.Description,
		Timestamp:   r.Timestamp,
	}
}

func (r userRow) toSummary() UserSummary {
	return UserSummary{
		ID:          r.ID.String(),
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Role:        r.Role,
	}
}
