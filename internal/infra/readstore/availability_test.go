//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/infra"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAvailabilityQueries struct {
	mock.Mock
}

func (m *MockAvailabilityQueries) GetRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Rooms), args.Error(1)
}

func (m *MockAvailabilityQueries) CountActiveOverlappingReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.CountActiveOverlappingReservationsParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAvailabilityQueries) ListActiveReservationsInWindow(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveReservationsInWindowParams) ([]sqlc.ListActiveReservationsInWindowRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListActiveReservationsInWindowRow), args.Error(1)
}

func pgDate(y int, m time.Month, d int) pgtype.Date {
	return pgtype.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

func TestAvailabilityReadStore_RoomInventory(t *testing.T) {
	roomID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockQueries := new(MockAvailabilityQueries)
		mockQueries.On("GetRoomByID", mock.Anything, mock.Anything, roomID).
			Return(sqlc.Rooms{ID: roomID, Capacity: 2, AvailableRooms: 3}, nil)

		view, err := NewAvailabilityReadStore(mockQueries).RoomInventory(context.Background(), nil, roomID)

		require.NoError(t, err)
		assert.Equal(t, int32(3), view.AvailableRooms)
		assert.Equal(t, int32(2), view.Capacity)
	})

	t.Run("missing room is NotFound", func(t *testing.T) {
		mockQueries := new(MockAvailabilityQueries)
		mockQueries.On("GetRoomByID", mock.Anything, mock.Anything, roomID).Return(sqlc.Rooms{}, pgx.ErrNoRows)

		_, err := NewAvailabilityReadStore(mockQueries).RoomInventory(context.Background(), nil, roomID)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestAvailabilityReadStore_CountActiveOverlapping(t *testing.T) {
	roomID := uuid.New()
	stay, err := reservation.ParseDateRange("2025-06-12", "2025-06-16")
	require.NoError(t, err)

	mockQueries := new(MockAvailabilityQueries)
	mockQueries.On("CountActiveOverlappingReservations", mock.Anything, mock.Anything, sqlc.CountActiveOverlappingReservationsParams{
		RoomID:   roomID,
		CheckIn:  pgDate(2025, 6, 12),
		CheckOut: pgDate(2025, 6, 16),
	}).Return(int64(2), nil)

	n, err := NewAvailabilityReadStore(mockQueries).CountActiveOverlapping(context.Background(), nil, roomID, stay)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	mockQueries.AssertExpectations(t)
}

func TestAvailabilityReadStore_ListActiveInWindow(t *testing.T) {
	roomID := uuid.New()
	bookingID := uuid.New()
	window, err := reservation.ParseDateRange("2025-06-05", "2025-06-23")
	require.NoError(t, err)

	mockQueries := new(MockAvailabilityQueries)
	mockQueries.On("ListActiveReservationsInWindow", mock.Anything, mock.Anything, sqlc.ListActiveReservationsInWindowParams{
		RoomID:      roomID,
		WindowStart: pgDate(2025, 6, 5),
		WindowEnd:   pgDate(2025, 6, 23),
	}).Return([]sqlc.ListActiveReservationsInWindowRow{
		{ID: bookingID, CheckIn: pgDate(2025, 6, 10), CheckOut: pgDate(2025, 6, 15)},
	}, nil)

	bookings, err := NewAvailabilityReadStore(mockQueries).ListActiveInWindow(context.Background(), nil, roomID, window)

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, bookingID, bookings[0].ID)
	assert.Equal(t, "2025-06-10/2025-06-15", bookings[0].Stay.String())
}
