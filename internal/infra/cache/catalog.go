// Package cache keeps read-mostly catalog lookups in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CatalogReadStore is a read-through decorator over another
// queries.CatalogReadStore. Redis failures are logged and the call falls
// through to the wrapped store. Room search results are never cached because
// they depend on live reservations.
type CatalogReadStore struct {
	next   queries.CatalogReadStore
	rdb    redis.Cmdable
	prefix string
	ttl    time.Duration
}

func NewCatalogReadStore(next queries.CatalogReadStore, rdb redis.Cmdable, prefix string, ttl time.Duration) *CatalogReadStore {
	return &CatalogReadStore{
		next:   next,
		rdb:    rdb,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *CatalogReadStore) ListHotels(ctx context.Context, filter queries.HotelFilter) ([]*queries.HotelView, error) {
	key := s.key("hotels", filterKey(filter))
	return readThrough(ctx, s, key, func() ([]*queries.HotelView, error) {
		return s.next.ListHotels(ctx, filter)
	})
}

func (s *CatalogReadStore) FindHotelByID(ctx context.Context, id uuid.UUID) (*queries.HotelView, error) {
	return readThrough(ctx, s, s.key("hotel", id.String()), func() (*queries.HotelView, error) {
		return s.next.FindHotelByID(ctx, id)
	})
}

func (s *CatalogReadStore) ListRoomsByHotel(ctx context.Context, hotelID uuid.UUID) ([]*queries.RoomView, error) {
	return readThrough(ctx, s, s.key("hotel", hotelID.String(), "rooms"), func() ([]*queries.RoomView, error) {
		return s.next.ListRoomsByHotel(ctx, hotelID)
	})
}

func (s *CatalogReadStore) FindRoomByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	return readThrough(ctx, s, s.key("room", id.String()), func() (*queries.RoomView, error) {
		return s.next.FindRoomByID(ctx, id)
	})
}

func (s *CatalogReadStore) SearchAvailableRooms(ctx context.Context, location *string, stay reservation.DateRange, minCapacity int32) ([]*queries.RoomSearchItem, error) {
	return s.next.SearchAvailableRooms(ctx, location, stay, minCapacity)
}

func (s *CatalogReadStore) key(parts ...string) string {
	return s.prefix + ":catalog:" + strings.Join(parts, ":")
}

// readThrough caches only successful loads; errors such as NotFound always
// reach the wrapped store again.
func readThrough[T any](ctx context.Context, s *CatalogReadStore, key string, load func() (T, error)) (T, error) {
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		slog.Warn("discarding undecodable cache entry", "key", key)
	} else if !errors.Is(err, redis.Nil) {
		slog.Warn("cache read failed", "key", key, "error", err.Error())
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return value, nil
	}
	if err := s.rdb.Set(ctx, key, encoded, s.ttl).Err(); err != nil {
		slog.Warn("cache write failed", "key", key, "error", err.Error())
	}
	return value, nil
}

func filterKey(f queries.HotelFilter) string {
	location, rating := "*", "*"
	if f.Location != nil {
		location = strings.ToLower(*f.Location)
	}
	if f.MinRating != nil {
		rating = fmt.Sprintf("%.2f", *f.MinRating)
	}
	return "loc=" + location + ":min=" + rating
}
