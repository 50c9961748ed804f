package api

import (
	"context"
	"errors"
	"net/http"

	"reservation-portal/internal/domain/session"
	reqdto "reservation-portal/internal/handler/dto/request"
	resdto "reservation-portal/internal/handler/dto/response"
	"reservation-portal/internal/handler/middleware"
	"reservation-portal/internal/usecase/commands"
	"reservation-portal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
}

func NewBookingHandler(bookingCommands commands.BookingCommands) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
	}
}

// @Summary Request a reservation
// @Description Submit a user booking request for a free slot
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Booking request"
// @Success 201 {object} resdto.CreateReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations [post]
func (h *BookingHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.RequestReservation(c.Request.Context(), commands.RequestReservationInput{
		RoomID:    req.RoomID,
		Start:     req.Start,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Purpose:   req.GetPurpose(),
	})
	if err != nil {
		h.renderBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateReservationResponse{
		Reservation:      resdto.FromReservationView(queries.NewReservationView(result.Reservation)),
		NotificationSent: result.NotificationSent,
	})
}

// @Summary Block a slot
// @Description Mark a free slot as unavailable; admin session required
// @Tags reservations
// @Accept json
// @Produce json
// @Param roomId path string true "Room ID"
// @Param request body reqdto.BlockSlotRequest true "Block request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms/{roomId}/blocks [post]
func (h *BookingHandler) BlockSlot(c *gin.Context) {
	sess, _ := middleware.GetSession(c)

	var req reqdto.BlockSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	res, err := h.bookingCommands.BlockSlot(c.Request.Context(), sess, c.Param("roomId"), req.Start)
	if err != nil {
		h.renderBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(queries.NewReservationView(res)))
}

// @Summary Approve a pending reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.StatusChangeResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations/{id}/approve [post]
func (h *BookingHandler) ApproveReservation(c *gin.Context) {
	h.resolveReservation(c, h.bookingCommands.Approve)
}

// @Summary Reject a pending reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.StatusChangeResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations/{id}/reject [post]
func (h *BookingHandler) RejectReservation(c *gin.Context) {
	h.resolveReservation(c, h.bookingCommands.Reject)
}

// @Summary Delete a reservation
// @Description Remove a reservation of any status; requires an explicit confirm flag
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.DeleteReservationRequest true "Confirmation"
// @Success 200 {object} resdto.DeleteReservationResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [delete]
func (h *BookingHandler) DeleteReservation(c *gin.Context) {
	sess, _ := middleware.GetSession(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	var req reqdto.DeleteReservationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	deleted, err := h.bookingCommands.Delete(c.Request.Context(), sess, id, req.Confirm)
	if err != nil {
		h.renderBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.DeleteReservationResponse{Deleted: deleted})
}

// @Summary Sending indicator
// @Description Whether a notification is currently in flight
// @Tags status
// @Produce json
// @Success 200 {object} resdto.SendingStatusResponse
// @Router /status [get]
func (h *BookingHandler) SendingStatus(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.SendingStatusResponse{
		Sending: h.bookingCommands.Sending(),
	})
}

func (h *BookingHandler) resolveReservation(
	c *gin.Context,
	op func(ctx context.Context, sess *session.Session, id uuid.UUID) (*commands.MutationResult, error),
) {
	sess, _ := middleware.GetSession(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	result, err := op(c.Request.Context(), sess, id)
	if err != nil {
		h.renderBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.StatusChangeResponse{
		Reservation:      resdto.FromReservationView(queries.NewReservationView(result.Reservation)),
		NotificationSent: result.NotificationSent,
	})
}

func (h *BookingHandler) renderBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Room not found",
		})
	case errors.Is(err, commands.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
	case errors.Is(err, commands.ErrSlotInPast):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Slot is in the past",
		})
	case errors.Is(err, commands.ErrInvalidSlot):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Slot start is outside the work hours or misaligned",
		})
	case errors.Is(err, commands.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking details",
		})
	case errors.Is(err, commands.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Slot already occupied",
		})
	case errors.Is(err, commands.ErrNotificationInFlight):
		c.JSON(http.StatusConflict, gin.H{
			"error": "A notification is currently being sent, try again",
		})
	case errors.Is(err, commands.ErrNotRoomAdmin):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Admin rights for this room required",
		})
	case errors.Is(err, commands.ErrNotPending):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Reservation is not pending",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
