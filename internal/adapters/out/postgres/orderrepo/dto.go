// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"ridetrack/internal/core/domain/model/kernel"
	"ridetrack/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order number carries a unique index: it is the correctness backstop for
// the probabilistic number generator.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number          string     `gorm:"uniqueIndex;size:16"`
	RiderID         uuid.UUID  `gorm:"type:uuid;index"`
	DriverID        *uuid.UUID `gorm:"type:uuid;index"`
	PickupLocation  string
	DropoffLocation string
	Distance        float64
	Duration        float64
	Fare            decimal.Decimal `gorm:"type:numeric(10,2)"`
	Status          string          `gorm:"index;size:32"`
	PaymentStatus   string          `gorm:"size:32"`
	PaymentMethod   string
	Notes           string
	ScheduledTime   *time.Time `gorm:"index"`
	CreatedAt       time.Time
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		Number:          aggregate.Number().String(),
		RiderID:         aggregate.RiderID().Bytes(),
		DriverID:        driverID,
		PickupLocation:  aggregate.PickupLocation(),
		DropoffLocation: aggregate.DropoffLocation(),
		Distance:        aggregate.Distance(),
		Duration:        aggregate.Duration(),
		Fare:            aggregate.Fare(),
		Status:          aggregate.Status().String(),
		PaymentStatus:   aggregate.PaymentStatus().String(),
		PaymentMethod:   aggregate.PaymentMethod(),
		Notes:           aggregate.Notes(),
		ScheduledTime:   aggregate.ScheduledTime(),
		CreatedAt:       aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	riderID, err := kernel.UUIDFromBytes(dto.RiderID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	number, err := order.NumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		number,
		riderID,
		driverID,
		dto.PickupLocation,
		dto.DropoffLocation,
		dto.Distance,
		dto.Duration,
		dto.Fare,
		order.Status(dto.Status),
		order.PaymentStatus(dto.PaymentStatus),
		dto.PaymentMethod,
		dto.Notes,
		dto.ScheduledTime,
		dto.CreatedAt,
	)
}
