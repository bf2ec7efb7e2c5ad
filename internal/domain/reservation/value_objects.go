package reservation

import (
	"errors"
	"math"
	"time"
)

// DateLayout is the wire and storage format of stay dates.
const DateLayout = "2006-01-02"

var (
	ErrInvalidDate      = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidDateRange = errors.New("check-out must be after check-in")
	ErrInvalidPrice     = errors.New("total price must be greater than zero")
	ErrPriceBelowCent   = errors.New("total price must be at least 0.01")
	ErrPriceTooLarge    = errors.New("total price is too large")
)

// maxCents is 2^63, the first cent count int64 cannot hold.
const maxCents = float64(1 << 63)

// DateRange is a half-open stay [checkIn, checkOut) of calendar dates.
type DateRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	in, out := truncateToDate(checkIn), truncateToDate(checkOut)
	if !out.After(in) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{checkIn: in, checkOut: out}, nil
}

func ParseDateRange(checkIn, checkOut string) (DateRange, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return DateRange{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(in, out)
}

func (r DateRange) CheckIn() time.Time  { return r.checkIn }
func (r DateRange) CheckOut() time.Time { return r.checkOut }

// Nights rounds partial days up.
func (r DateRange) Nights() int {
	return int(math.Ceil(r.checkOut.Sub(r.checkIn).Hours() / 24))
}

// Overlaps treats ranges as half-open, so back-to-back stays never conflict.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.checkIn.Before(other.checkOut) && other.checkIn.Before(r.checkOut)
}

// Shift moves both ends by the given number of days, keeping the length.
func (r DateRange) Shift(days int) DateRange {
	return DateRange{
		checkIn:  r.checkIn.AddDate(0, 0, days),
		checkOut: r.checkOut.AddDate(0, 0, days),
	}
}

func (r DateRange) String() string {
	return r.checkIn.Format(DateLayout) + "/" + r.checkOut.Format(DateLayout)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents <= 0 {
		return Money{}, ErrInvalidPrice
	}
	return Money{cents: cents}, nil
}

// NewMoneyFromAmount converts a decimal amount such as 450.50 to cents,
// rounding half away from zero.
func NewMoneyFromAmount(amount float64) (Money, error) {
	if math.IsNaN(amount) || amount <= 0 {
		return Money{}, ErrInvalidPrice
	}
	cents := math.Round(amount * 100)
	switch {
	case cents >= maxCents:
		return Money{}, ErrPriceTooLarge
	case cents < 1:
		return Money{}, ErrPriceBelowCent
	}
	return NewMoney(int64(cents))
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}
