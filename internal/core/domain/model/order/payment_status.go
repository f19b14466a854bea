package order

import (
	"fmt"

	"ridetrack/internal/pkg/errs"
)

// PaymentStatus represents the payment state of an order. It is an axis
// independent from Status: a cancelled order may still move to refunded
// through the payment flow before the order reaches its terminal status.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// Validate checks that the payment status is one of the known values.
func (s PaymentStatus) Validate() error {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%q is not a valid payment status", string(s)))
}

// String implements fmt.Stringer.
func (s PaymentStatus) String() string {
	return string(s)
}
