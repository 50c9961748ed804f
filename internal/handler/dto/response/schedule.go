package response

import (
	"time"

	"reservation-portal/internal/usecase/queries"
)

type RoomResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AdminName string `json:"adminName"`
	Color     string `json:"color"`
}

type SlotResponse struct {
	Start       time.Time            `json:"start"`
	End         time.Time            `json:"end"`
	Reservation *ReservationResponse `json:"reservation,omitempty"`
}

type DayOccupancyResponse struct {
	Date           string `json:"date"`
	WorkDay        bool   `json:"workDay"`
	ConfirmedCount int    `json:"confirmedCount"`
	PendingCount   int    `json:"pendingCount"`
	Percentage     int    `json:"percentage"`
}

func FromRoomView(rm queries.RoomView) RoomResponse {
	return RoomResponse{
		ID:        rm.ID,
		Name:      rm.Name,
		AdminName: rm.AdminName,
		Color:     rm.Color,
	}
}

func FromSlotView(rm queries.SlotView) SlotResponse {
	return SlotResponse{
		Start:       rm.Start,
		End:         rm.End,
		Reservation: FromReservationView(rm.Reservation),
	}
}

func FromDayOccupancyView(rm queries.DayOccupancyView) DayOccupancyResponse {
	return DayOccupancyResponse{
		Date:           rm.Date,
		WorkDay:        rm.WorkDay,
		ConfirmedCount: rm.ConfirmedCount,
		PendingCount:   rm.PendingCount,
		Percentage:     rm.Percentage,
	}
}
