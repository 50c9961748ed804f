package api

import (
	"errors"
	"net/http"
	"time"

	resdto "reservation-portal/internal/handler/dto/response"
	"reservation-portal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type ScheduleHandler struct {
	scheduleQueries queries.ScheduleQueries
}

func NewScheduleHandler(scheduleQueries queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleQueries: scheduleQueries,
	}
}

// @Summary List rooms
// @Tags schedule
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *ScheduleHandler) ListRooms(c *gin.Context) {
	views := h.scheduleQueries.Rooms(c.Request.Context())
	rooms := make([]resdto.RoomResponse, len(views))
	for i, v := range views {
		rooms[i] = resdto.FromRoomView(v)
	}
	c.JSON(http.StatusOK, rooms)
}

// @Summary Day schedule
// @Description Half-hour slots of the working window with any occupying reservation
// @Tags schedule
// @Produce json
// @Param roomId path string true "Room ID"
// @Param date query string true "Day (2006-01-02)"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{roomId}/schedule [get]
func (h *ScheduleHandler) DaySchedule(c *gin.Context) {
	day, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing date, expected YYYY-MM-DD",
		})
		return
	}

	views, err := h.scheduleQueries.DaySchedule(c.Request.Context(), c.Param("roomId"), day)
	if err != nil {
		h.renderScheduleError(c, err)
		return
	}

	slots := make([]resdto.SlotResponse, len(views))
	for i, v := range views {
		slots[i] = resdto.FromSlotView(v)
	}
	c.JSON(http.StatusOK, slots)
}

// @Summary Occupancy
// @Description Confirmed-slot ratio for one day (?date=) or a whole month (?month=)
// @Tags schedule
// @Produce json
// @Param roomId path string true "Room ID"
// @Param date query string false "Day (2006-01-02)"
// @Param month query string false "Month (2006-01)"
// @Success 200 {object} resdto.DayOccupancyResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{roomId}/occupancy [get]
func (h *ScheduleHandler) Occupancy(c *gin.Context) {
	roomID := c.Param("roomId")

	if rawDate := c.Query("date"); rawDate != "" {
		day, err := time.Parse(dateLayout, rawDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date, expected YYYY-MM-DD",
			})
			return
		}

		view, err := h.scheduleQueries.DayOccupancy(c.Request.Context(), roomID, day)
		if err != nil {
			h.renderScheduleError(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromDayOccupancyView(*view))
		return
	}

	rawMonth := c.Query("month")
	if rawMonth == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Either date or month query parameter is required",
		})
		return
	}

	firstOfMonth, err := time.Parse("2006-01", rawMonth)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid month, expected YYYY-MM",
		})
		return
	}

	views, err := h.scheduleQueries.MonthOccupancy(c.Request.Context(), roomID, firstOfMonth.Year(), firstOfMonth.Month())
	if err != nil {
		h.renderScheduleError(c, err)
		return
	}

	days := make([]resdto.DayOccupancyResponse, len(views))
	for i, v := range views {
		days[i] = resdto.FromDayOccupancyView(v)
	}
	c.JSON(http.StatusOK, days)
}

func (h *ScheduleHandler) renderScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Room not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
