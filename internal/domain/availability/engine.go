// Package availability decides whether a room is free for a stay and searches
// nearby stays of the same length when it is not.
package availability

import (
	"errors"
	"slices"

	"hotel-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

const (
	DefaultSearchRadius = 7
	MaxSearchRadius     = 365
	MaxSuggestions      = 5
)

var ErrInvalidSearchRadius = errors.New("days range must be an integer between 1 and 365")

// Booking is an active reservation occupying one unit of a room.
type Booking struct {
	ID   uuid.UUID
	Stay reservation.DateRange
}

type Result struct {
	Available bool
	// FreeUnits is inventory minus overlapping bookings and may be negative
	// when the inventory was lowered below existing bookings.
	FreeUnits int
}

func Evaluate(inventory, overlapping int) Result {
	free := inventory - overlapping
	return Result{Available: free > 0, FreeUnits: free}
}

func CountOverlapping(requested reservation.DateRange, bookings []Booking) int {
	n := 0
	for _, b := range bookings {
		if b.Stay.Overlaps(requested) {
			n++
		}
	}
	return n
}

func Conflicts(requested reservation.DateRange, bookings []Booking) []Booking {
	conflicts := make([]Booking, 0)
	for _, b := range bookings {
		if b.Stay.Overlaps(requested) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}

type Suggestion struct {
	Stay           reservation.DateRange
	DaysDifference int
}

type Alternatives struct {
	Available   bool
	Conflicts   []Booking
	Suggestions []Suggestion
}

// ResolveRadius applies the default to a missing radius and bounds the rest.
func ResolveRadius(radius *int) (int, error) {
	if radius == nil {
		return DefaultSearchRadius, nil
	}
	if *radius < 1 || *radius > MaxSearchRadius {
		return 0, ErrInvalidSearchRadius
	}
	return *radius, nil
}

// SearchWindow spans every candidate stay for the given radius:
// [checkIn - radius, checkIn + radius + nights].
func SearchWindow(requested reservation.DateRange, radius int) reservation.DateRange {
	nights := requested.Nights()
	from := requested.CheckIn().AddDate(0, 0, -radius)
	to := requested.CheckIn().AddDate(0, 0, radius+nights)
	window, _ := reservation.NewDateRange(from, to)
	return window
}

// FindAlternatives expects bookings to hold every active booking of the room
// intersecting SearchWindow(requested, radius). A candidate is offered only
// when it overlaps none of them, regardless of the room's inventory.
func FindAlternatives(requested reservation.DateRange, radius int, bookings []Booking) (Alternatives, error) {
	if radius < 1 || radius > MaxSearchRadius {
		return Alternatives{}, ErrInvalidSearchRadius
	}

	conflicts := Conflicts(requested, bookings)
	if len(conflicts) == 0 {
		return Alternatives{
			Available:   true,
			Conflicts:   conflicts,
			Suggestions: []Suggestion{},
		}, nil
	}

	suggestions := make([]Suggestion, 0, MaxSuggestions)
	for offset := -radius; offset <= radius; offset++ {
		if offset == 0 {
			continue
		}
		candidate := requested.Shift(offset)
		if overlapsAny(candidate, bookings) {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Stay:           candidate,
			DaysDifference: abs(offset),
		})
	}

	slices.SortStableFunc(suggestions, func(a, b Suggestion) int {
		if a.DaysDifference != b.DaysDifference {
			return a.DaysDifference - b.DaysDifference
		}
		return a.Stay.CheckIn().Compare(b.Stay.CheckIn())
	})
	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}

	return Alternatives{
		Available:   false,
		Conflicts:   conflicts,
		Suggestions: suggestions,
	}, nil
}

func overlapsAny(candidate reservation.DateRange, bookings []Booking) bool {
	for _, b := range bookings {
		if b.Stay.Overlaps(candidate) {
			return true
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
