//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/tests/common/builder"
	queriesmock "hotel-reservation/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationQueriesTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	store    *queriesmock.MockReservationReadStore
	managers *queriesmock.MockHotelManagerReadStore
	catalog  *queriesmock.MockCatalogReadStore
	sut      queries.ReservationQueries
}

func TestReservationQueriesSuite(t *testing.T) {
	suite.Run(t, new(ReservationQueriesTestSuite))
}

func (s *ReservationQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockReservationReadStore(s.ctrl)
	s.managers = queriesmock.NewMockHotelManagerReadStore(s.ctrl)
	s.catalog = queriesmock.NewMockCatalogReadStore(s.ctrl)
	s.sut = queries.NewReservationQueries(s.store, s.managers, s.catalog)
}

func (s *ReservationQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReservationQueriesTestSuite) TestGetByID() {
	view := builder.NewReservationBuilder().BuildView()

	tests := []struct {
		name       string
		actor      user.Actor
		assigned   *bool
		wantDenied bool
	}{
		{name: "所有者", actor: user.Actor{ID: view.UserID, Role: user.RoleUser}},
		{name: "管理者", actor: user.Actor{ID: uuid.New(), Role: user.RoleAdmin}},
		{name: "他の利用者", actor: user.Actor{ID: uuid.New(), Role: user.RoleUser}, wantDenied: true},
		{name: "担当マネージャー", actor: user.Actor{ID: uuid.New(), Role: user.RoleHotelManager}, assigned: ptrTo(true)},
		{name: "担当外マネージャー", actor: user.Actor{ID: uuid.New(), Role: user.RoleHotelManager}, assigned: ptrTo(false), wantDenied: true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
			if tt.assigned != nil {
				s.managers.EXPECT().IsHotelManager(gomock.Any(), view.HotelID, tt.actor.ID).Return(*tt.assigned, nil)
			}

			got, err := s.sut.GetByID(context.Background(), tt.actor, view.ID)
			if tt.wantDenied {
				s.True(errs.Is(err, errs.ErrUnauthorized))
				return
			}
			s.Require().NoError(err)
			s.Equal(view, got)
		})
	}

	s.Run("存在しない予約", func() {
		id := uuid.New()
		s.store.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		_, err := s.sut.GetByID(context.Background(), user.Actor{ID: uuid.New(), Role: user.RoleAdmin}, id)
		s.True(errs.Is(err, errs.ErrReservationNotFound))
	})
}

func ptrTo[T any](v T) *T { return &v }

func (s *ReservationQueriesTestSuite) TestListMinePagination() {
	actor := user.Actor{ID: uuid.New(), Role: user.RoleUser}
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	rows := make([]*queries.ReservationView, 0, 3)
	for i := range 3 {
		v := builder.NewReservationBuilder().BuildView()
		v.CreatedAt = base.Add(-time.Duration(i) * time.Hour)
		rows = append(rows, v)
	}

	s.Run("limit+1件取得して次のカーソルを返す", func() {
		s.store.EXPECT().ListByUser(gomock.Any(), actor.ID, nil, int32(3)).Return(rows, nil)

		page, err := s.sut.ListMine(context.Background(), actor, nil, 2)
		s.Require().NoError(err)
		s.Len(page.Items, 2)
		s.Require().NotNil(page.NextCursor)

		at, id, err := queries.DecodeAfterCursor(page.NextCursor.After)
		s.Require().NoError(err)
		s.Equal(rows[1].ID, id)
		s.True(rows[1].CreatedAt.Equal(at))
	})

	s.Run("カーソルを復号してストアに渡す", func() {
		cursor := queries.EncodeAfterCursor(rows[1].CreatedAt, rows[1].ID)
		s.store.EXPECT().ListByUser(gomock.Any(), actor.ID, gomock.Any(), int32(queries.DefaultListLimit+1)).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, after *queries.KeysetCursor, _ int32) ([]*queries.ReservationView, error) {
				s.Require().NotNil(after)
				s.Equal(rows[1].ID, after.ID)
				return rows[2:], nil
			})

		page, err := s.sut.ListMine(context.Background(), actor, &queries.Cursor{After: cursor}, 0)
		s.Require().NoError(err)
		s.Len(page.Items, 1)
		s.Nil(page.NextCursor)
	})

	s.Run("壊れたカーソルは検証エラー", func() {
		_, err := s.sut.ListMine(context.Background(), actor, &queries.Cursor{After: "%%%"}, 10)
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("上限を超えるlimitは丸める", func() {
		s.store.EXPECT().ListByUser(gomock.Any(), actor.ID, nil, int32(queries.MaxListLimit+1)).Return(nil, nil)

		page, err := s.sut.ListMine(context.Background(), actor, nil, 10_000)
		s.Require().NoError(err)
		s.NotNil(page.Items)
		s.Empty(page.Items)
	})
}

func (s *ReservationQueriesTestSuite) TestListByHotel() {
	hotelID := uuid.New()

	s.Run("管理者は割り当て確認なしで一覧できる", func() {
		s.catalog.EXPECT().FindHotelByID(gomock.Any(), hotelID).Return(&queries.HotelView{ID: hotelID}, nil)
		s.store.EXPECT().ListByHotel(gomock.Any(), hotelID, nil, gomock.Any()).Return(nil, nil)

		_, err := s.sut.ListByHotel(context.Background(), user.Actor{ID: uuid.New(), Role: user.RoleAdmin}, hotelID, nil, 0)
		s.NoError(err)
	})

	s.Run("担当外マネージャーは拒否", func() {
		manager := user.Actor{ID: uuid.New(), Role: user.RoleHotelManager}
		s.catalog.EXPECT().FindHotelByID(gomock.Any(), hotelID).Return(&queries.HotelView{ID: hotelID}, nil)
		s.managers.EXPECT().IsHotelManager(gomock.Any(), hotelID, manager.ID).Return(false, nil)

		_, err := s.sut.ListByHotel(context.Background(), manager, hotelID, nil, 0)
		s.True(errs.Is(err, errs.ErrUnauthorized))
	})

	s.Run("存在しないホテル", func() {
		s.catalog.EXPECT().FindHotelByID(gomock.Any(), hotelID).Return(nil, infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound))

		_, err := s.sut.ListByHotel(context.Background(), user.Actor{ID: uuid.New(), Role: user.RoleAdmin}, hotelID, nil, 0)
		s.True(errs.Is(err, errs.ErrHotelNotFound))
	})
}
