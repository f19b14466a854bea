package tracking

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"time"

	"ridetrack/internal/pkg/errs"
)

// NumberPrefix is the literal prefix of every tracking number.
const NumberPrefix = "TRK"

var numberPattern = regexp.MustCompile(`^TRK\d{11}$`)

// Number is the human-readable unique identifier of a tracking record:
// TRK, the last 8 digits of the creation epoch milliseconds, and a 3-digit
// random suffix, e.g. TRK86400123042.
//
// As with order numbers, uniqueness is probabilistic; the unique constraint
// on the trackings table backstops it and a collision surfaces as a
// retryable errs.DuplicateIdentifierError.
type Number string

// GenerateNumber produces a new tracking number for the given creation time.
// It is a pure function of the clock and the supplied random source.
func GenerateNumber(now time.Time, rnd *rand.Rand) Number {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	return Number(fmt.Sprintf("%s%s%03d", NumberPrefix, ms[len(ms)-8:], rnd.Intn(1000)))
}

// NumberFromString validates and converts a raw string into a Number.
func NumberFromString(s string) (Number, error) {
	n := Number(s)
	if err := n.Validate(); err != nil {
		return "", err
	}
	return n, nil
}

// Validate checks that the number matches the TRK<8 digits><3 digits> format.
func (n Number) Validate() error {
	if !numberPattern.MatchString(string(n)) {
		return errs.NewValueIsInvalidErrorWithCause("trackingNumber", fmt.Errorf("%q does not match %s", string(n), numberPattern))
	}
	return nil
}

// String implements fmt.Stringer.
func (n Number) String() string {
	return string(n)
}
