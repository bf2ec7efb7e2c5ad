//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/handler/dto/request"
	"hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/tests/common/authtest"
	"hotel-reservation/tests/common/dbtest"
	"hotel-reservation/tests/common/httptest"
	"hotel-reservation/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const reservationsURL = "/api/reservations"

type reservationSuite struct {
	e2e.SharedSuite

	guestID    uuid.UUID
	guestToken string
	otherToken string
	hotelID    uuid.UUID
	roomID     uuid.UUID
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

// SetupSubTest seeds a hotel with a single-unit room and two guests.
func (s *reservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	s.guestID = dbtest.CreateTestUser(t, s.DB, "guest@example.com", string(user.RoleUser))
	s.guestToken = authtest.LoginUser(t, s.Router, "guest@example.com", dbtest.TestPassword)
	s.otherToken = authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleUser))

	s.hotelID = dbtest.CreateTestHotel(t, s.DB, "Seaside Inn", "Lisbon")
	s.roomID = dbtest.CreateTestRoom(t, s.DB, s.hotelID, dbtest.RoomFixture{AvailableRooms: 1, Capacity: 2})
}

func (s *reservationSuite) book(token, checkIn, checkOut string) *nethttptest.ResponseRecorder {
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, request.CreateReservationRequest{
		HotelID:    s.hotelID,
		RoomID:     s.roomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     2,
		TotalPrice: 750,
	}, token)
}

func availabilityURL(roomID uuid.UUID, checkIn, checkOut string) string {
	return fmt.Sprintf("/api/rooms/availability?room_id=%s&check_in=%s&check_out=%s", roomID, checkIn, checkOut)
}

func (s *reservationSuite) TestCreate() {
	tests := []struct {
		name           string
		existing       [][2]string
		checkIn        string
		checkOut       string
		expectedStatus int
	}{
		{name: "空室があれば予約できる", checkIn: "2025-06-10", checkOut: "2025-06-15", expectedStatus: http.StatusCreated},
		{name: "重複する期間は409", existing: [][2]string{{"2025-06-10", "2025-06-15"}}, checkIn: "2025-06-12", checkOut: "2025-06-14", expectedStatus: http.StatusConflict},
		{name: "チェックアウト日からの連泊は重複しない", existing: [][2]string{{"2025-06-10", "2025-06-15"}}, checkIn: "2025-06-15", checkOut: "2025-06-17", expectedStatus: http.StatusCreated},
		{name: "チェックアウトがチェックイン以前は400", checkIn: "2025-06-15", checkOut: "2025-06-15", expectedStatus: http.StatusBadRequest},
		{name: "日付形式が不正なら400", checkIn: "10/06/2025", checkOut: "2025-06-15", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			for _, stay := range tt.existing {
				w := s.book(s.otherToken, stay[0], stay[1])
				require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
			}

			w := s.book(s.guestToken, tt.checkIn, tt.checkOut)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusCreated {
				var res response.ReservationResponse
				httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
				assert.Equal(t, s.guestID, res.UserID)
				assert.Equal(t, "active", res.Status)
				assert.Equal(t, tt.checkIn, res.CheckIn)
				assert.Equal(t, reservationsURL+"/"+res.ID.String(), w.Header().Get("Location"))
			}
			if tt.expectedStatus == http.StatusConflict {
				assert.Equal(t, len(tt.existing), dbtest.CountReservations(t, s.DB, s.roomID), "競合時は予約が作成されない")
			}
		})
	}
}

func (s *reservationSuite) TestCreateConcurrently() {
	s.Run("最後の1室への同時予約は1件だけ成立する", func() {
		t := s.T()
		const attempts = 6

		start := make(chan struct{})
		codes := make([]int, attempts)
		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				codes[i] = s.book(s.guestToken, "2025-07-01", "2025-07-04").Code
			}()
		}
		close(start)
		wg.Wait()

		created, conflicts := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicts++
			}
		}
		assert.Equal(t, 1, created, "statuses: %v", codes)
		assert.Equal(t, attempts-1, conflicts, "statuses: %v", codes)
		assert.Equal(t, 1, dbtest.CountReservations(t, s.DB, s.roomID))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityURL(s.roomID, "2025-07-01", "2025-07-04"), nil, "")
		var res response.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.False(t, res.Available)
		assert.Equal(t, 0, res.AvailableRooms)
	})
}

func (s *reservationSuite) TestCreateQueuesNotification() {
	s.Run("予約作成で通知ジョブが積まれる", func() {
		t := s.T()

		w := s.book(s.guestToken, "2025-06-10", "2025-06-15")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, 1, dbtest.CountQueuedJobs(t, s.DB, "reservation.created"))
	})
}

func (s *reservationSuite) TestCreateRejectsRoomOfOtherHotel() {
	s.Run("他ホテルの部屋は400", func() {
		t := s.T()
		otherHotel := dbtest.CreateTestHotel(t, s.DB, "Mountain Lodge", "Porto")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, request.CreateReservationRequest{
			HotelID:    otherHotel,
			RoomID:     s.roomID,
			CheckIn:    "2025-06-10",
			CheckOut:   "2025-06-15",
			Guests:     1,
			TotalPrice: 100,
		}, s.guestToken)
		httptest.AssertValidationReason(t, w, "does not belong to the hotel")
		assert.Zero(t, dbtest.CountReservations(t, s.DB, s.roomID))
	})
}

func (s *reservationSuite) TestAvailabilityLifecycle() {
	s.Run("予約の削除で在庫が戻る", func() {
		t := s.T()

		check := func() response.AvailabilityResponse {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityURL(s.roomID, "2025-06-12", "2025-06-14"), nil, "")
			var res response.AvailabilityResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
			return res
		}

		require.True(t, check().Available)

		w := s.book(s.guestToken, "2025-06-10", "2025-06-15")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		first, second := check(), check()
		assert.False(t, first.Available)
		assert.Equal(t, 0, first.AvailableRooms)
		assert.Equal(t, first, second, "空室確認は状態を変更しない")

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationsURL+"/"+created.ID.String(), nil, s.guestToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		after := check()
		assert.True(t, after.Available)
		assert.Equal(t, 1, after.AvailableRooms)
	})

	s.Run("キャンセルでも在庫が戻る", func() {
		t := s.T()

		w := s.book(s.guestToken, "2025-06-10", "2025-06-15")
		var created response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, reservationsURL+"/"+created.ID.String()+"/status",
			request.UpdateReservationStatusRequest{Status: "cancelled"}, s.guestToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = s.book(s.otherToken, "2025-06-10", "2025-06-15")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})
}

func (s *reservationSuite) TestHotelLocationFilter() {
	tests := []struct {
		name     string
		location string
		want     []string
	}{
		{name: "大文字小文字を区別しない部分一致", location: "LISB", want: []string{"Seaside Inn"}},
		{name: "%は文字として扱う", location: "%", want: []string{}},
		{name: "_は文字として扱う", location: "_", want: []string{"Harbour Loft"}},
		{name: "一致しなければ空", location: "Madrid", want: []string{}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			dbtest.CreateTestHotel(t, s.DB, "Harbour Loft", "Porto_Ribeira")

			w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/hotels?location="+url.QueryEscape(tt.location), nil, "")
			var res []response.HotelResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)

			names := []string{}
			for _, h := range res {
				names = append(names, h.Name)
			}
			assert.ElementsMatch(t, tt.want, names)
		})
	}
}

func (s *reservationSuite) TestAlternatives() {
	s.Run("競合時に近い日程を提案する", func() {
		t := s.T()

		w := s.book(s.otherToken, "2025-06-10", "2025-06-15")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		url := fmt.Sprintf("/api/rooms/alternatives?room_id=%s&check_in=2025-06-12&check_out=2025-06-14&days_range=7", s.roomID)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")

		var res response.AlternativesResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.False(t, res.Available)
		require.Len(t, res.ConflictingReservations, 1)
		require.NotEmpty(t, res.Suggestions)
		assert.LessOrEqual(t, len(res.Suggestions), 5)
		assert.Equal(t, "2025-06-15", res.Suggestions[0].CheckIn)
		assert.Equal(t, "2025-06-17", res.Suggestions[0].CheckOut)
		assert.Equal(t, 3, res.Suggestions[0].DaysDifference)
	})

	s.Run("範囲外のdays_rangeは400", func() {
		url := fmt.Sprintf("/api/rooms/alternatives?room_id=%s&check_in=2025-06-12&check_out=2025-06-14&days_range=0", s.roomID)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, "")
		httptest.AssertValidationReason(s.T(), w, "between 1 and 365")
	})
}

func (s *reservationSuite) TestAccessControl() {
	s.Run("他人の予約は参照できない", func() {
		t := s.T()

		w := s.book(s.guestToken, "2025-06-10", "2025-06-15")
		var created response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/"+created.ID.String(), nil, s.otherToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationsURL+"/"+created.ID.String(), nil, s.otherToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})

	s.Run("担当マネージャーはホテルの予約一覧を参照できる", func() {
		t := s.T()

		w := s.book(s.guestToken, "2025-06-10", "2025-06-15")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		managerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "manager@example.com", string(user.RoleHotelManager))
		var managerID uuid.UUID
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT id FROM users WHERE email = 'manager@example.com'").Scan(&managerID))

		url := "/api/hotels/" + s.hotelID.String() + "/reservations"
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, managerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")

		dbtest.AssignHotelManager(t, s.DB, s.hotelID, managerID)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, managerToken)
		var res response.ReservationListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Len(t, res.Reservations, 1)
	})

	s.Run("一覧は自分の予約のみ", func() {
		t := s.T()

		require.Equal(t, http.StatusCreated, s.book(s.guestToken, "2025-06-10", "2025-06-12").Code)
		require.Equal(t, http.StatusCreated, s.book(s.otherToken, "2025-06-20", "2025-06-22").Code)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/my", nil, s.guestToken)
		var res response.ReservationListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Len(t, res.Reservations, 1)
		assert.Equal(t, s.guestID, res.Reservations[0].UserID)
	})
}
