//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"hotel-reservation/internal/infra"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotificationWriteQueries struct {
	mock.Mock
}

func (m *MockNotificationWriteQueries) CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *MockNotificationWriteQueries) ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.NotificationJobs, error) {
	args := m.Called(ctx, db, limit)
	return args.Get(0).([]sqlc.NotificationJobs), args.Error(1)
}

func (m *MockNotificationWriteQueries) MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error {
	return m.Called(ctx, db, id).Error(0)
}

func (m *MockNotificationWriteQueries) RecordNotificationJobFailure(ctx context.Context, db sqlc.DBTX, arg sqlc.RecordNotificationJobFailureParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TestNotificationRepository_CreateJob(t *testing.T) {
	runAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	payload := []byte(`{"reservation_id":"x"}`)

	mockQueries := new(MockNotificationWriteQueries)
	mockQueries.On("CreateNotificationJob", mock.Anything, mock.Anything, sqlc.CreateNotificationJobParams{
		Kind:    "reservation",
		Topic:   "reservation.created",
		Payload: payload,
		RunAt:   timestamptz(runAt),
		Status:  JobStatusQueued,
	}).Return(nil)

	err := NewNotificationRepository(mockQueries).CreateJob(context.Background(), fakeDBTX{}, "reservation", "reservation.created", payload, runAt)

	require.NoError(t, err)
	mockQueries.AssertExpectations(t)
}

func TestNotificationRepository_ClaimDue(t *testing.T) {
	id := uuid.New()
	mockQueries := new(MockNotificationWriteQueries)
	mockQueries.On("ClaimDueNotificationJobs", mock.Anything, mock.Anything, int32(10)).Return([]sqlc.NotificationJobs{{
		ID:        id,
		Kind:      "reservation",
		Topic:     "reservation.deleted",
		Payload:   []byte(`{}`),
		Attempts:  2,
		Status:    JobStatusQueued,
		LastError: pgtype.Text{String: "broker down", Valid: true},
	}}, nil)

	jobs, err := NewNotificationRepository(mockQueries).ClaimDue(context.Background(), fakeDBTX{}, 10)

	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, id, jobs[0].ID)
	assert.Equal(t, int32(2), jobs[0].Attempts)
	require.NotNil(t, jobs[0].LastError)
	assert.Equal(t, "broker down", *jobs[0].LastError)
}

func TestNotificationRepository_RecordFailure(t *testing.T) {
	id := uuid.New()
	runAt := time.Date(2025, 6, 1, 9, 0, 30, 0, time.UTC)

	tests := []struct {
		name       string
		exhausted  bool
		wantStatus string
	}{
		{name: "retry is rescheduled", exhausted: false, wantStatus: JobStatusQueued},
		{name: "exhausted job is parked", exhausted: true, wantStatus: JobStatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockNotificationWriteQueries)
			mockQueries.On("RecordNotificationJobFailure", mock.Anything, mock.Anything, sqlc.RecordNotificationJobFailureParams{
				ID:        id,
				Status:    tt.wantStatus,
				LastError: pgtype.Text{String: "publish failed", Valid: true},
				RunAt:     timestamptz(runAt),
			}).Return(nil)

			err := NewNotificationRepository(mockQueries).RecordFailure(context.Background(), fakeDBTX{}, id, "publish failed", runAt, tt.exhausted)

			require.NoError(t, err)
			mockQueries.AssertExpectations(t)
		})
	}

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockNotificationWriteQueries)
		mockQueries.On("RecordNotificationJobFailure", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

		err := NewNotificationRepository(mockQueries).RecordFailure(context.Background(), fakeDBTX{}, id, "x", runAt, false)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
