//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/infra"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationWriteQueries struct {
	mock.Mock
}

func (m *MockReservationWriteQueries) CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockReservationWriteQueries) UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationWriteQueries) DeleteReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestReservationRepository_Create(t *testing.T) {
	res, err := builder.NewReservationBuilder().BuildDomain()
	require.NoError(t, err)

	t.Run("stay dates and cents are persisted", func(t *testing.T) {
		mockQueries := new(MockReservationWriteQueries)
		mockQueries.On("CreateReservation", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateReservationParams) bool {
			return p.ID == res.ID() &&
				p.RoomID == res.RoomID() &&
				p.CheckIn.Time.Format(reservation.DateLayout) == "2025-06-10" &&
				p.CheckOut.Time.Format(reservation.DateLayout) == "2025-06-15" &&
				p.TotalPriceCents == res.TotalPrice().Cents() &&
				p.Status == "active"
		})).Return(res.ID(), nil)

		id, err := NewReservationRepository(mockQueries).Create(context.Background(), fakeDBTX{}, res)

		require.NoError(t, err)
		assert.Equal(t, res.ID(), id)
		mockQueries.AssertExpectations(t)
	})

	t.Run("check violation is classified", func(t *testing.T) {
		mockQueries := new(MockReservationWriteQueries)
		mockQueries.On("CreateReservation", mock.Anything, mock.Anything, mock.Anything).
			Return(uuid.Nil, &pgconn.PgError{Code: "23514"})

		_, err := NewReservationRepository(mockQueries).Create(context.Background(), fakeDBTX{}, res)

		assert.True(t, infra.IsKind(err, infra.KindCheckViolated))
	})
}

func TestReservationRepository_UpdateStatus(t *testing.T) {
	id := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		affected int64
		dbErr    error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "updated", affected: 1},
		{name: "no row matched", affected: 0, wantKind: infra.KindNotFound},
		{name: "database error", dbErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockReservationWriteQueries)
			mockQueries.On("UpdateReservationStatus", mock.Anything, mock.Anything, sqlc.UpdateReservationStatusParams{
				ID:        id,
				Status:    "cancelled",
				UpdatedAt: timestamptz(now),
			}).Return(tt.affected, tt.dbErr)

			err := NewReservationRepository(mockQueries).UpdateStatus(context.Background(), fakeDBTX{}, id, reservation.StatusCancelled, now)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestReservationRepository_Delete(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		affected int64
		dbErr    error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "deleted", affected: 1},
		{name: "no row matched", affected: 0, wantKind: infra.KindNotFound},
		{name: "database error", dbErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockReservationWriteQueries)
			mockQueries.On("DeleteReservation", mock.Anything, mock.Anything, id).Return(tt.affected, tt.dbErr)

			err := NewReservationRepository(mockQueries).Delete(context.Background(), fakeDBTX{}, id)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
