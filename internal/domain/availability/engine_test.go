//go:build unit

package availability_test

import (
	"math/rand/v2"
	"testing"

	"hotel-reservation/internal/domain/availability"
	"hotel-reservation/internal/domain/reservation"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stay(t *testing.T, in, out string) reservation.DateRange {
	t.Helper()
	r, err := reservation.ParseDateRange(in, out)
	require.NoError(t, err)
	return r
}

func booking(t *testing.T, in, out string) availability.Booking {
	t.Helper()
	return availability.Booking{ID: uuid.New(), Stay: stay(t, in, out)}
}

type suggestionView struct {
	Stay string
	Days int
}

func views(s []availability.Suggestion) []suggestionView {
	out := make([]suggestionView, 0, len(s))
	for _, v := range s {
		out = append(out, suggestionView{Stay: v.Stay.String(), Days: v.DaysDifference})
	}
	return out
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name        string
		inventory   int
		overlapping int
		expected    availability.Result
	}{
		{name: "empty room", inventory: 3, overlapping: 0, expected: availability.Result{Available: true, FreeUnits: 3}},
		{name: "one unit left", inventory: 3, overlapping: 2, expected: availability.Result{Available: true, FreeUnits: 1}},
		{name: "fully booked", inventory: 3, overlapping: 3, expected: availability.Result{Available: false, FreeUnits: 0}},
		{name: "overbooked after inventory change", inventory: 1, overlapping: 3, expected: availability.Result{Available: false, FreeUnits: -2}},
		{name: "no inventory", inventory: 0, overlapping: 0, expected: availability.Result{Available: false, FreeUnits: 0}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, availability.Evaluate(c.inventory, c.overlapping))
		})
	}
}

func TestCountOverlapping(t *testing.T) {
	requested := stay(t, "2025-06-12", "2025-06-16")
	bookings := []availability.Booking{
		booking(t, "2025-06-10", "2025-06-15"),
		booking(t, "2025-06-15", "2025-06-18"),
		booking(t, "2025-06-16", "2025-06-20"),
		booking(t, "2025-06-01", "2025-06-12"),
	}

	assert.Equal(t, 2, availability.CountOverlapping(requested, bookings))
	assert.Equal(t, 0, availability.CountOverlapping(requested, nil))
}

func TestResolveRadius(t *testing.T) {
	r, err := availability.ResolveRadius(nil)
	require.NoError(t, err)
	assert.Equal(t, availability.DefaultSearchRadius, r)

	for _, valid := range []int{1, 7, 365} {
		r, err := availability.ResolveRadius(&valid)
		require.NoError(t, err)
		assert.Equal(t, valid, r)
	}

	for _, invalid := range []int{0, -3, 366} {
		_, err := availability.ResolveRadius(&invalid)
		assert.ErrorIs(t, err, availability.ErrInvalidSearchRadius)
	}
}

func TestSearchWindow(t *testing.T) {
	w := availability.SearchWindow(stay(t, "2025-06-12", "2025-06-16"), 7)
	assert.Equal(t, "2025-06-05/2025-06-23", w.String())
}

func TestFindAlternatives(t *testing.T) {
	t.Run("requested stay is free", func(t *testing.T) {
		bookings := []availability.Booking{booking(t, "2025-06-15", "2025-06-18")}

		got, err := availability.FindAlternatives(stay(t, "2025-06-10", "2025-06-15"), 7, bookings)
		require.NoError(t, err)

		assert.True(t, got.Available)
		assert.Empty(t, got.Conflicts)
		assert.NotNil(t, got.Conflicts)
		assert.Empty(t, got.Suggestions)
		assert.NotNil(t, got.Suggestions)
	})

	t.Run("booked June 10 to 15, asking June 12 to 16", func(t *testing.T) {
		existing := booking(t, "2025-06-10", "2025-06-15")

		got, err := availability.FindAlternatives(stay(t, "2025-06-12", "2025-06-16"), 7, []availability.Booking{existing})
		require.NoError(t, err)

		assert.False(t, got.Available)
		require.Len(t, got.Conflicts, 1)
		assert.Equal(t, existing.ID, got.Conflicts[0].ID)

		expected := []suggestionView{
			{Stay: "2025-06-15/2025-06-19", Days: 3},
			{Stay: "2025-06-16/2025-06-20", Days: 4},
			{Stay: "2025-06-17/2025-06-21", Days: 5},
			{Stay: "2025-06-06/2025-06-10", Days: 6},
			{Stay: "2025-06-18/2025-06-22", Days: 6},
		}
		if diff := cmp.Diff(expected, views(got.Suggestions)); diff != "" {
			t.Errorf("suggestions mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("closest candidates win over scan order", func(t *testing.T) {
		// Every earlier day is free; +2 is the only free later candidate.
		bookings := []availability.Booking{
			booking(t, "2025-06-10", "2025-06-12"),
			booking(t, "2025-06-13", "2025-06-30"),
		}

		got, err := availability.FindAlternatives(stay(t, "2025-06-10", "2025-06-11"), 7, bookings)
		require.NoError(t, err)

		expected := []suggestionView{
			{Stay: "2025-06-09/2025-06-10", Days: 1},
			{Stay: "2025-06-08/2025-06-09", Days: 2},
			{Stay: "2025-06-12/2025-06-13", Days: 2},
			{Stay: "2025-06-07/2025-06-08", Days: 3},
			{Stay: "2025-06-06/2025-06-07", Days: 4},
		}
		if diff := cmp.Diff(expected, views(got.Suggestions)); diff != "" {
			t.Errorf("suggestions mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("nothing free in window", func(t *testing.T) {
		bookings := []availability.Booking{booking(t, "2025-05-01", "2025-08-01")}

		got, err := availability.FindAlternatives(stay(t, "2025-06-12", "2025-06-16"), 7, bookings)
		require.NoError(t, err)

		assert.False(t, got.Available)
		assert.Len(t, got.Conflicts, 1)
		assert.Empty(t, got.Suggestions)
	})

	t.Run("invalid radius", func(t *testing.T) {
		for _, r := range []int{0, -1, 366} {
			_, err := availability.FindAlternatives(stay(t, "2025-06-12", "2025-06-16"), r, nil)
			assert.ErrorIs(t, err, availability.ErrInvalidSearchRadius)
		}
	})
}

func TestFindAlternativesProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	base := stay(t, "2025-06-01", "2025-06-02")

	for i := 0; i < 200; i++ {
		nights := 1 + rng.IntN(6)
		radius := 1 + rng.IntN(10)
		requested := base.Shift(rng.IntN(20))
		requested, err := reservation.NewDateRange(requested.CheckIn(), requested.CheckIn().AddDate(0, 0, nights))
		require.NoError(t, err)

		count := 1 + rng.IntN(5)
		bookings := make([]availability.Booking, 0, count)
		for j := 0; j < count; j++ {
			b := base.Shift(rng.IntN(40) - 5)
			b, err := reservation.NewDateRange(b.CheckIn(), b.CheckIn().AddDate(0, 0, 1+rng.IntN(5)))
			require.NoError(t, err)
			bookings = append(bookings, availability.Booking{ID: uuid.New(), Stay: b})
		}

		got, err := availability.FindAlternatives(requested, radius, bookings)
		require.NoError(t, err)

		assert.Equal(t, len(got.Conflicts) == 0, got.Available)
		assert.LessOrEqual(t, len(got.Suggestions), availability.MaxSuggestions)

		prev := 0
		for _, s := range got.Suggestions {
			assert.Equal(t, nights, s.Stay.Nights())
			assert.GreaterOrEqual(t, s.DaysDifference, prev)
			assert.LessOrEqual(t, s.DaysDifference, radius)
			assert.NotZero(t, s.DaysDifference)
			offset := int(s.Stay.CheckIn().Sub(requested.CheckIn()).Hours() / 24)
			assert.Equal(t, s.DaysDifference, max(offset, -offset))
			for _, b := range bookings {
				assert.False(t, s.Stay.Overlaps(b.Stay), "suggestion %s overlaps booking %s", s.Stay, b.Stay)
			}
			prev = s.DaysDifference
		}
	}
}
