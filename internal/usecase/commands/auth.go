package commands

import (
	"context"
	"log/slog"

	"reservation-portal/internal/domain/session"
	"reservation-portal/internal/pkg/clock"
	"reservation-portal/internal/pkg/errs"
)

var (
	ErrIncorrectPassword = errs.New("incorrect password for this room")
	ErrTokenGeneration   = errs.New("token generation failed")
)

type LoginResult struct {
	Session *session.Session
	Token   string
}

type AuthCommands interface {
	// AuthenticateRoom runs the per-room password check. sess may be nil for
	// a first login; a fresh session is created and a token issued for it.
	AuthenticateRoom(ctx context.Context, sess *session.Session, roomID, password string) (*LoginResult, error)
	// SelectRoom changes the session's active room, demoting an ADMIN
	// perspective when the session holds no rights for the new room.
	SelectRoom(ctx context.Context, sess *session.Session, roomID string) (*session.Session, error)
}

type authCommandsImpl struct {
	sessions SessionStore
	rooms    RoomDirectory
	checker  CredentialChecker
	tokens   SessionTokenIssuer
	clock    clock.Clock
}

func NewAuthCommands(
	sessions SessionStore,
	rooms RoomDirectory,
	checker CredentialChecker,
	tokens SessionTokenIssuer,
	clk clock.Clock,
) AuthCommands {
	return &authCommandsImpl{
		sessions: sessions,
		rooms:    rooms,
		checker:  checker,
		tokens:   tokens,
		clock:    clk,
	}
}

func (a *authCommandsImpl) AuthenticateRoom(ctx context.Context, sess *session.Session, roomID, password string) (*LoginResult, error) {
	if _, err := a.rooms.FindByID(roomID); err != nil {
		return nil, ErrRoomNotFound
	}

	// A mismatch never alters existing grants.
	if err := a.checker.VerifySecret(roomID, password); err != nil {
		slog.WarnContext(ctx, "admin authentication failed", "room_id", roomID)
		return nil, ErrIncorrectPassword
	}

	if sess == nil {
		sess = session.NewSession(roomID, a.clock.Now())
	}
	sess.GrantRoom(roomID)
	a.sessions.Put(sess)

	token, err := a.tokens.GenerateSessionToken(sess.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	slog.InfoContext(ctx, "admin authenticated for room", "room_id", roomID, "session_id", sess.ID())
	return &LoginResult{Session: sess, Token: token}, nil
}

func (a *authCommandsImpl) SelectRoom(ctx context.Context, sess *session.Session, roomID string) (*session.Session, error) {
	if _, err := a.rooms.FindByID(roomID); err != nil {
		return nil, ErrRoomNotFound
	}
	sess.SelectRoom(roomID)
	return sess, nil
}
