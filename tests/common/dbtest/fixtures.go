//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

const TestPassword = "password123"

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, name, password_hash, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, email, strings.Split(email, "@")[0], TestPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestHotel(t *testing.T, db DBLike, name, location string) uuid.UUID {
	t.Helper()

	hotelID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO hotels (id, name, location, rating) VALUES ($1, $2, $3, 4.5)",
		hotelID, name, location)
	require.NoError(t, err)
	return hotelID
}

type RoomFixture struct {
	RoomType           string
	PricePerNightCents int64
	Capacity           int
	AvailableRooms     int
}

func CreateTestRoom(t *testing.T, db DBLike, hotelID uuid.UUID, room RoomFixture) uuid.UUID {
	t.Helper()

	if room.RoomType == "" {
		room.RoomType = "Standard Double"
	}
	if room.PricePerNightCents == 0 {
		room.PricePerNightCents = 15000
	}
	if room.Capacity == 0 {
		room.Capacity = 2
	}

	roomID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO rooms (id, hotel_id, room_type, price_per_night_cents, capacity, available_rooms) VALUES ($1, $2, $3, $4, $5, $6)",
		roomID, hotelID, room.RoomType, room.PricePerNightCents, room.Capacity, room.AvailableRooms)
	require.NoError(t, err)
	return roomID
}

func AssignHotelManager(t *testing.T, db DBLike, hotelID, userID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO hotel_managers (hotel_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		hotelID, userID)
	require.NoError(t, err)
}

// CreateTestReservation inserts directly, bypassing the availability check.
func CreateTestReservation(t *testing.T, db DBLike, userID, hotelID, roomID uuid.UUID, checkIn, checkOut, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO reservations (id, user_id, hotel_id, room_id, check_in, check_out, guests, total_price_cents, status)
		 VALUES ($1, $2, $3, $4, $5::date, $6::date, 1, 10000, $7)`,
		id, userID, hotelID, roomID, checkIn, checkOut, status)
	require.NoError(t, err)
	return id
}

func CountReservations(t *testing.T, db DBLike, roomID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM reservations WHERE room_id = $1", roomID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountQueuedJobs(t *testing.T, db DBLike, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE topic = $1 AND status = 'queued'", topic).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every public table except the migration bookkeeping.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
