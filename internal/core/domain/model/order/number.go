package order

import (
	"fmt"
	"math/rand"
	"regexp"
	"time"

	"ridetrack/internal/pkg/errs"
)

// NumberPrefix is the literal prefix of every order number.
const NumberPrefix = "RIDE"

var numberPattern = regexp.MustCompile(`^RIDE\d{6}-\d{4}$`)

// Number is the human-readable unique identifier of an order, in the form
// RIDE<YYYY><MM>-<4-digit random suffix>, e.g. RIDE202601-0421.
//
// The random suffix makes uniqueness probabilistic only; the unique
// constraint on the orders table is the correctness backstop, and a
// collision surfaces as a retryable errs.DuplicateIdentifierError.
type Number string

// GenerateNumber produces a new order number for the given creation time.
// It is a pure function of the clock and the supplied random source.
func GenerateNumber(now time.Time, rnd *rand.Rand) Number {
	return Number(fmt.Sprintf("%s%04d%02d-%04d", NumberPrefix, now.Year(), int(now.Month()), rnd.Intn(10000)))
}

// NumberFromString validates and converts a raw string into a Number.
func NumberFromString(s string) (Number, error) {
	n := Number(s)
	if err := n.Validate(); err != nil {
		return "", err
	}
	return n, nil
}

// Validate checks that the number matches the RIDE<YYYYMM>-<NNNN> format.
func (n Number) Validate() error {
	if !numberPattern.MatchString(string(n)) {
		return errs.NewValueIsInvalidErrorWithCause("orderNumber", fmt.Errorf("%q does not match %s", string(n), numberPattern))
	}
	return nil
}

// String implements fmt.Stringer.
func (n Number) String() string {
	return string(n)
}
