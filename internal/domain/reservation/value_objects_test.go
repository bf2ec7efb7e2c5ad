//go:build unit

package reservation_test

import (
	"math"
	"testing"
	"time"

	"hotel-reservation/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, in, out string) reservation.DateRange {
	t.Helper()
	r, err := reservation.ParseDateRange(in, out)
	require.NoError(t, err)
	return r
}

func TestDateRange(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		cases := []struct {
			name     string
			checkIn  string
			checkOut string
			errIs    error
		}{
			{name: "valid range", checkIn: "2025-06-10", checkOut: "2025-06-15"},
			{name: "one night", checkIn: "2025-06-10", checkOut: "2025-06-11"},
			{name: "same day", checkIn: "2025-06-10", checkOut: "2025-06-10", errIs: reservation.ErrInvalidDateRange},
			{name: "reversed", checkIn: "2025-06-15", checkOut: "2025-06-10", errIs: reservation.ErrInvalidDateRange},
			{name: "bad check-in format", checkIn: "10/06/2025", checkOut: "2025-06-15", errIs: reservation.ErrInvalidDate},
			{name: "bad check-out format", checkIn: "2025-06-10", checkOut: "2025-13-01", errIs: reservation.ErrInvalidDate},
			{name: "empty", checkIn: "", checkOut: "", errIs: reservation.ErrInvalidDate},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := reservation.ParseDateRange(c.checkIn, c.checkOut)
				if c.errIs == nil {
					require.NoError(t, err)
					return
				}
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})

	t.Run("normalizes to UTC midnight", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		r, err := reservation.NewDateRange(
			time.Date(2025, 6, 10, 15, 30, 0, 0, tokyo),
			time.Date(2025, 6, 12, 1, 0, 0, 0, tokyo),
		)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), r.CheckIn())
		assert.Equal(t, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), r.CheckOut())
		assert.Equal(t, 2, r.Nights())
	})

	t.Run("nights", func(t *testing.T) {
		assert.Equal(t, 5, mustRange(t, "2025-06-10", "2025-06-15").Nights())
		assert.Equal(t, 1, mustRange(t, "2025-06-30", "2025-07-01").Nights())
		assert.Equal(t, 366, mustRange(t, "2024-01-01", "2025-01-01").Nights())
	})

	t.Run("shift keeps length", func(t *testing.T) {
		r := mustRange(t, "2025-06-28", "2025-07-02")

		later := r.Shift(3)
		assert.Equal(t, "2025-07-01/2025-07-05", later.String())
		assert.Equal(t, r.Nights(), later.Nights())

		earlier := r.Shift(-30)
		assert.Equal(t, "2025-05-29/2025-06-02", earlier.String())
	})
}

func TestOverlaps(t *testing.T) {
	base := mustRange(t, "2025-06-10", "2025-06-15")

	cases := []struct {
		name     string
		other    reservation.DateRange
		expected bool
	}{
		{name: "identical", other: base, expected: true},
		{name: "inside", other: mustRange(t, "2025-06-11", "2025-06-12"), expected: true},
		{name: "contains", other: mustRange(t, "2025-06-01", "2025-06-30"), expected: true},
		{name: "overlaps start", other: mustRange(t, "2025-06-08", "2025-06-11"), expected: true},
		{name: "overlaps end", other: mustRange(t, "2025-06-14", "2025-06-20"), expected: true},
		{name: "back-to-back after", other: mustRange(t, "2025-06-15", "2025-06-18"), expected: false},
		{name: "back-to-back before", other: mustRange(t, "2025-06-07", "2025-06-10"), expected: false},
		{name: "disjoint", other: mustRange(t, "2025-07-01", "2025-07-05"), expected: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, base.Overlaps(c.other))
			assert.Equal(t, c.expected, c.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestMoney(t *testing.T) {
	m, err := reservation.NewMoneyFromAmount(450.5)
	require.NoError(t, err)
	assert.Equal(t, int64(45050), m.Cents())
	assert.InDelta(t, 450.5, m.Amount(), 0.0001)

	_, err = reservation.NewMoney(-100)
	assert.ErrorIs(t, err, reservation.ErrInvalidPrice)

	rejected := []struct {
		name   string
		amount float64
		errIs  error
	}{
		{name: "ゼロ", amount: 0, errIs: reservation.ErrInvalidPrice},
		{name: "負の金額", amount: -10, errIs: reservation.ErrInvalidPrice},
		{name: "1セント未満に丸められる", amount: 0.004, errIs: reservation.ErrPriceBelowCent},
		{name: "int64のセントに収まらない", amount: 1e19, errIs: reservation.ErrPriceTooLarge},
		{name: "無限大", amount: math.Inf(1), errIs: reservation.ErrPriceTooLarge},
	}
	for _, c := range rejected {
		t.Run(c.name, func(t *testing.T) {
			_, err := reservation.NewMoneyFromAmount(c.amount)
			assert.ErrorIs(t, err, c.errIs)
		})
	}

	t.Run("半セントは切り上げる", func(t *testing.T) {
		m, err := reservation.NewMoneyFromAmount(0.005)
		require.NoError(t, err)
		assert.Equal(t, int64(1), m.Cents())
	})
}

func TestStatus(t *testing.T) {
	for _, s := range []string{"active", "cancelled", "completed"} {
		status, err := reservation.NewStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, status.String())
	}

	_, err := reservation.NewStatus("confirmed")
	assert.ErrorIs(t, err, reservation.ErrInvalidStatus)

	assert.True(t, reservation.StatusActive.ConsumesInventory())
	assert.False(t, reservation.StatusCancelled.ConsumesInventory())
	assert.False(t, reservation.StatusCompleted.ConsumesInventory())
}
