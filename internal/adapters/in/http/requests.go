package http

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request bodies for the API surface. Pointer fields on update requests
// distinguish "absent" from "set to zero value".

type registerRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Role        string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createOrderRequest struct {
	RiderID         string          `json:"riderId"`
	PickupLocation  string          `json:"pickupLocation"`
	DropoffLocation string          `json:"dropoffLocation"`
	Distance        float64         `json:"distance"`
	Duration        float64         `json:"duration"`
	Fare            decimal.Decimal `json:"fare"`
	PaymentMethod   string          `json:"paymentMethod"`
	Notes           string          `json:"notes"`
	ScheduledTime   *time.Time      `json:"scheduledTime"`
}

type updateOrderRequest struct {
	DriverID      *string    `json:"driverId"`
	Status        *string    `json:"status"`
	PaymentMethod *string    `json:"paymentMethod"`
	PaymentStatus *string    `json:"paymentStatus"`
	Notes         *string    `json:"notes"`
	ScheduledTime *time.Time `json:"scheduledTime"`
}

type createTrackingRequest struct {
	OrderID          string     `json:"orderId"`
	Status           string     `json:"status"`
	CurrentLocation  string     `json:"currentLocation"`
	EstimatedArrival *time.Time `json:"estimatedArrival"`
	Notes            string     `json:"notes"`
}

type updateTrackingRequest struct {
	Status           *string    `json:"status"`
	CurrentLocation  *string    `json:"currentLocation"`
	EstimatedArrival *time.Time `json:"estimatedArrival"`
	Notes            *string    `json:"notes"`
}

type addTrackingHistoryRequest struct {
	Status      string `json:"status"`
	Location    string `json:"location"`
	Description string `json:"description"`
}
