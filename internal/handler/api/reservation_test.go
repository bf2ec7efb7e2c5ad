//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/handler/api"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/tests/common/builder"
	"hotel-reservation/tests/common/httptest"
	"hotel-reservation/tests/common/testutil"
	commandsmock "hotel-reservation/tests/mock/commands"
	queriesmock "hotel-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// withActor stands in for RequireAuth.
func withActor(actor user.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", actor.ID)
		c.Set("user_role", actor.Role)
		c.Next()
	}
}

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	actor        user.Actor
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.actor = builder.NewUserBuilder().BuildActor()

	h := api.NewReservationHandler(s.mockCommands, s.mockQueries)
	g := s.router.Group("/reservations", withActor(s.actor))
	g.POST("", h.Create)
	g.GET("", h.ListAll)
	g.GET("/my", h.ListMine)
	g.GET("/:id", h.Get)
	g.PATCH("/:id/status", h.UpdateStatus)
	g.DELETE("/:id", h.Delete)
	s.router.GET("/hotels/:id/reservations", withActor(s.actor), h.ListByHotel)
	s.router.POST("/anonymous/reservations", h.Create)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	s.Run("success: 201 with Location header", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), b.BuildCreateInput(), s.actor).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", reqBody, "")

		var res resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(view.ID, res.ID)
		s.Equal("2025-06-10", res.CheckIn)
		s.Equal("2025-06-15", res.CheckOut)
		s.InDelta(750.0, res.TotalPrice, 0.001)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/reservations/" + view.ID.String()})
	})

	s.Run("error: 400 on binding failures", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing hotel_id", mutate: testutil.Field("hotel_id", nil)},
			{name: "missing room_id", mutate: testutil.Field("room_id", nil)},
			{name: "missing check_in", mutate: testutil.Field("check_in", nil)},
			{name: "zero guests", mutate: testutil.Field("guests", 0)},
			{name: "negative guests", mutate: testutil.Field("guests", -1)},
			{name: "zero total_price", mutate: testutil.Field("total_price", 0)},
			{name: "malformed room_id", mutate: testutil.Field("room_id", "not-a-uuid")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors", func() {
		cases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{name: "validation", err: errs.Mark(errs.New("check-out must be after check-in"), errs.ErrValidation), status: http.StatusBadRequest, msg: "Invalid request"},
			{name: "room not found", err: errs.ErrRoomNotFound, status: http.StatusNotFound, msg: "Room not found"},
			{name: "no availability", err: errs.ErrNoAvailability, status: http.StatusConflict, msg: "No rooms available"},
			{name: "database", err: errors.New("connection reset"), status: http.StatusInternalServerError, msg: "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.actor).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})

	s.Run("error: 500 when no actor is present", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/anonymous/reservations", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	view := builder.NewReservationBuilder().BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+view.ID.String(), nil, "")
		var res resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(view.HotelName, res.HotelName)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 403 for someone else's reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, view.ID).Return(nil, errs.ErrUnauthorized).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})

	s.Run("error: 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, view.ID).Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestList() {
	page := &queries.ReservationPage{
		Items:      []*queries.ReservationView{builder.NewReservationBuilder().BuildView()},
		NextCursor: &queries.Cursor{After: "next-page"},
	}

	s.Run("mine: forwards cursor and limit", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.actor, &queries.Cursor{After: "abc"}, 5).Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/my?after=abc&limit=5", nil, "")
		var res resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Len(res.Reservations, 1)
		s.Require().NotNil(res.NextCursor)
		s.Equal("next-page", *res.NextCursor)
	})

	s.Run("mine: first page has nil cursor", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.actor, nil, 0).
			Return(&queries.ReservationPage{Items: []*queries.ReservationView{}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/my", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"reservations":[]}`, rec.Body.String())
	})

	s.Run("mine: 400 on non-positive limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/my?limit=-1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("all", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any(), nil, 0).Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("by hotel", func() {
		hotelID := uuid.New()
		s.mockQueries.EXPECT().ListByHotel(gomock.Any(), s.actor, hotelID, nil, 0).Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels/"+hotelID.String()+"/reservations", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("by hotel: 403 for an unassigned manager", func() {
		hotelID := uuid.New()
		s.mockQueries.EXPECT().ListByHotel(gomock.Any(), s.actor, hotelID, nil, 0).Return(nil, errs.ErrUnauthorized).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels/"+hotelID.String()+"/reservations", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *ReservationHandlerTestSuite) TestUpdateStatus() {
	view := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.Status = "cancelled" }).BuildView()
	url := "/reservations/" + view.ID.String() + "/status"

	s.Run("success", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), view.ID, "cancelled", s.actor).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"status": "cancelled"}, "")
		var res resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("cancelled", res.Status)
	})

	s.Run("error: 400 on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"status": "pending"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *ReservationHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id, s.actor).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 404", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id, s.actor).Return(errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
