package request

type RoomLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type SelectRoomRequest struct {
	RoomID string `json:"roomId" binding:"required"`
}
