package response

import "reservation-portal/internal/domain/session"

type SessionResponse struct {
	Perspective  string   `json:"perspective"`
	ActiveRoomID string   `json:"activeRoomId"`
	Rooms        []string `json:"rooms"`
}

type LoginResponse struct {
	Token   string          `json:"token"`
	Session SessionResponse `json:"session"`
}

func FromSessionView(view session.View) SessionResponse {
	return SessionResponse{
		Perspective:  string(view.Perspective),
		ActiveRoomID: view.ActiveRoomID,
		Rooms:        view.Rooms,
	}
}
