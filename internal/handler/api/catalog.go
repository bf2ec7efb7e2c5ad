package api

import (
	"net/http"

	reqdto "hotel-reservation/internal/handler/dto/request"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/handler/httperr"
	"hotel-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List hotels
// @Tags catalog
// @Produce json
// @Param location query string false "Case-insensitive location substring"
// @Param min_rating query number false "Minimum rating (0-5)"
// @Success 200 {array} resdto.HotelResponse
// @Failure 400 {object} httperr.Response
// @Router /hotels [get]
func (h *CatalogHandler) ListHotels(c *gin.Context) {
	var q reqdto.ListHotelsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithBindError(c, err)
		return
	}

	hotels, err := h.q.ListHotels(c.Request.Context(), q.ToFilter())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromHotelViews(hotels)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get hotel
// @Tags catalog
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} resdto.HotelResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id} [get]
func (h *CatalogHandler) GetHotel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	hotel, err := h.q.GetHotel(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromHotelView(hotel)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List hotel rooms
// @Tags catalog
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id}/rooms [get]
func (h *CatalogHandler) ListRooms(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rooms, err := h.q.ListRooms(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromRoomViews(rooms)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get room
// @Tags catalog
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *CatalogHandler) GetRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	room, err := h.q.GetRoom(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromRoomView(room)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Search available rooms
// @Description Rooms with a free unit for the whole stay and enough capacity
// @Tags catalog
// @Produce json
// @Param location query string false "Case-insensitive location substring"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param guests query int false "Guests (default 1)"
// @Success 200 {array} resdto.RoomSearchResponse
// @Failure 400 {object} httperr.Response
// @Router /rooms/search [get]
func (h *CatalogHandler) SearchRooms(c *gin.Context) {
	var q reqdto.SearchRoomsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithBindError(c, err)
		return
	}

	items, err := h.q.SearchAvailableRooms(c.Request.Context(), q.ToSearch())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromRoomSearchItems(items)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
