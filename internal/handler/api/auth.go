package api

import (
	"errors"
	"net/http"

	reqdto "reservation-portal/internal/handler/dto/request"
	resdto "reservation-portal/internal/handler/dto/response"
	"reservation-portal/internal/handler/middleware"
	"reservation-portal/internal/pkg/config"
	"reservation-portal/internal/pkg/cookie"
	"reservation-portal/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	cfg          config.Config
}

func NewAuthHandler(authCommands commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		cfg:          cfg,
	}
}

// @Summary Room admin login
// @Description Authenticate as the administrator of one room; rights are per room
// @Tags auth
// @Accept json
// @Produce json
// @Param roomId path string true "Room ID"
// @Param request body reqdto.RoomLoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/rooms/{roomId}/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.RoomLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	sess, _ := middleware.GetSession(c)

	result, err := h.authCommands.AuthenticateRoom(c.Request.Context(), sess, c.Param("roomId"), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrIncorrectPassword):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Incorrect password for this room",
			})
		case errors.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.SetSessionCookie(c, h.cfg.Session, result.Token, h.cfg.Session.TokenDuration)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		Token:   result.Token,
		Session: resdto.FromSessionView(result.Session.Snapshot()),
	})
}

// @Summary Current session
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Failure 401 {object} map[string]string
// @Router /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Session token required",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionView(sess.Snapshot()))
}

// @Summary Select active room
// @Description Switch the session's active room; demotes to USER perspective for rooms without rights
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SelectRoomRequest true "Room selection"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/session/room [put]
func (h *AuthHandler) SelectRoom(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Session token required",
		})
		return
	}

	var req reqdto.SelectRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	updated, err := h.authCommands.SelectRoom(c.Request.Context(), sess, req.RoomID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionView(updated.Snapshot()))
}
