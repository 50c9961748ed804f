package response

import (
	"time"

	"reservation-portal/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequesterResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type ReservationResponse struct {
	ID        uuid.UUID          `json:"id"`
	RoomID    string             `json:"roomId"`
	Start     time.Time          `json:"start"`
	End       time.Time          `json:"end"`
	Status    string             `json:"status"`
	Requester *RequesterResponse `json:"requester,omitempty"`
	Purpose   *string            `json:"purpose,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

type CreateReservationResponse struct {
	Reservation      *ReservationResponse `json:"reservation"`
	NotificationSent bool                 `json:"notificationSent"`
}

type StatusChangeResponse struct {
	Reservation      *ReservationResponse `json:"reservation"`
	NotificationSent bool                 `json:"notificationSent"`
}

type DeleteReservationResponse struct {
	Deleted bool `json:"deleted"`
}

type SendingStatusResponse struct {
	Sending bool `json:"sending"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	if rm == nil {
		return nil
	}
	resp := &ReservationResponse{
		ID:        rm.ID,
		RoomID:    rm.RoomID,
		Start:     rm.Start,
		End:       rm.End,
		Status:    rm.Status,
		CreatedAt: rm.CreatedAt,
		UpdatedAt: rm.UpdatedAt,
	}
	if rm.Requester != nil {
		resp.Requester = &RequesterResponse{
			FirstName: rm.Requester.FirstName,
			LastName:  rm.Requester.LastName,
			Email:     rm.Requester.Email,
		}
	}
	if rm.Purpose != "" {
		purpose := rm.Purpose
		resp.Purpose = &purpose
	}
	return resp
}
