package request

import "time"

type CreateReservationRequest struct {
	RoomID    string    `json:"roomId" binding:"required"`
	Start     time.Time `json:"start" binding:"required"`
	FirstName string    `json:"firstName" binding:"required"`
	LastName  string    `json:"lastName" binding:"required"`
	Email     string    `json:"email" binding:"required,email"`
	Purpose   *string   `json:"purpose,omitempty"`
}

func (r CreateReservationRequest) GetPurpose() string {
	if r.Purpose == nil {
		return ""
	}
	return *r.Purpose
}

type BlockSlotRequest struct {
	Start time.Time `json:"start" binding:"required"`
}

// DeleteReservationRequest carries the destructive-action confirmation; a
// missing or false confirm turns the delete into a no-op.
type DeleteReservationRequest struct {
	Confirm bool `json:"confirm"`
}
