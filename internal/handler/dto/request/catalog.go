package request

import (
	"strings"

	"hotel-reservation/internal/usecase/queries"
)

type ListHotelsQuery struct {
	Location  *string  `form:"location"`
	MinRating *float64 `form:"min_rating" binding:"omitempty,min=0,max=5"`
}

func (q ListHotelsQuery) ToFilter() queries.HotelFilter {
	return queries.HotelFilter{
		Location:  trimmed(q.Location),
		MinRating: q.MinRating,
	}
}

type SearchRoomsQuery struct {
	Location *string `form:"location"`
	CheckIn  string  `form:"check_in" binding:"required"`
	CheckOut string  `form:"check_out" binding:"required"`
	Guests   *int    `form:"guests" binding:"omitempty,min=1"`
}

// DefaultSearchGuests applies when the query omits guests.
const DefaultSearchGuests = 1

func (q SearchRoomsQuery) ToSearch() queries.RoomSearch {
	search := queries.RoomSearch{
		Location: trimmed(q.Location),
		CheckIn:  q.CheckIn,
		CheckOut: q.CheckOut,
		Guests:   DefaultSearchGuests,
	}
	if q.Guests != nil {
		search.Guests = *q.Guests
	}
	return search
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
