package order_test

import (
	"math/rand"
	"regexp"
	"testing"
	"time"

	"ridetrack/internal/core/domain/model/order"
	"ridetrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderNumberFormat = regexp.MustCompile(`^RIDE\d{6}-\d{4}$`)

func TestGenerateNumber_Format(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	for range 100 {
		n := order.GenerateNumber(time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC), rnd)
		assert.Regexp(t, orderNumberFormat, n.String())
	}
}

func TestGenerateNumber_EmbedsYearAndMonth(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	n := order.GenerateNumber(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), rnd)

	assert.Equal(t, "RIDE202603", n.String()[:10])
	require.NoError(t, n.Validate())
}

func TestGenerateNumber_ZeroPadsMonthAndSuffix(t *testing.T) {
	// Seed chosen so the first Intn(10000) draw is small enough to need padding.
	rnd := rand.New(rand.NewSource(7))
	n := order.GenerateNumber(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), rnd)

	require.Len(t, n.String(), 15)
	assert.Equal(t, byte('-'), n.String()[10])
}

func TestNumberFromString(t *testing.T) {
	t.Run("accepts well-formed number", func(t *testing.T) {
		n, err := order.NumberFromString("RIDE202601-0042")
		require.NoError(t, err)
		assert.Equal(t, order.Number("RIDE202601-0042"), n)
	})

	t.Run("rejects malformed numbers", func(t *testing.T) {
		for _, raw := range []string{
			"",
			"RIDE20261-0042",
			"ORD202601-0042",
			"RIDE202601-42",
			"RIDE202601-00421",
			"ride202601-0042",
		} {
			_, err := order.NumberFromString(raw)
			require.Error(t, err, "expected %q to be rejected", raw)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}
