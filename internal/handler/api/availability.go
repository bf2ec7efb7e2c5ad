package api

import (
	"net/http"

	reqdto "hotel-reservation/internal/handler/dto/request"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Check room availability
// @Description Free units of a room for a half-open stay [check_in, check_out)
// @Tags availability
// @Produce json
// @Param room_id query string true "Room ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/availability [get]
func (h *AvailabilityHandler) Check(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.q.CheckAvailability(c.Request.Context(), q.ParsedRoomID(), q.CheckIn, q.CheckOut)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Suggest alternative dates
// @Description Same-length stays within days_range days of the request that overlap no active booking
// @Tags availability
// @Produce json
// @Param room_id query string true "Room ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param days_range query int false "Search radius in days (1-365, default 7)"
// @Success 200 {object} resdto.AlternativesResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/alternatives [get]
func (h *AvailabilityHandler) Alternatives(c *gin.Context) {
	var q reqdto.AlternativesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.q.FindAlternatives(c.Request.Context(), q.ParsedRoomID(), q.CheckIn, q.CheckOut, q.DaysRange)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAlternativesView(view))
}
