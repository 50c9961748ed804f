package session

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrRoomNotAuthorized = errors.New("room not authorized for this session")

type Perspective string

const (
	PerspectiveUser  Perspective = "USER"
	PerspectiveAdmin Perspective = "ADMIN"
)

// Session owns all per-visitor mutable state: the active perspective, the
// selected room and the per-room admin grants. Grants never auto-expire and
// live only as long as the session itself.
//
// Sessions are touched from concurrent HTTP handlers, hence the mutex; the
// lifecycle operations themselves serialize separately on the busy flag.
type Session struct {
	mu           sync.Mutex
	id           uuid.UUID
	perspective  Perspective
	activeRoomID string
	authorized   map[string]bool
	createdAt    time.Time
}

func NewSession(activeRoomID string, now time.Time) *Session {
	return &Session{
		id:           uuid.New(),
		perspective:  PerspectiveUser,
		activeRoomID: activeRoomID,
		authorized:   make(map[string]bool),
		createdAt:    now,
	}
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// GrantRoom records a successful password check for the room and switches the
// perspective to ADMIN with that room active. Rights for other rooms are
// unaffected: authentication is strictly per room.
func (s *Session) GrantRoom(roomID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authorized[roomID] = true
	s.activeRoomID = roomID
	s.perspective = PerspectiveAdmin
}

// HasRoom reports whether this session holds admin rights for the room.
func (s *Session) HasRoom(roomID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authorized[roomID]
}

// SelectRoom changes the active room. Selecting a room the session is not
// authenticated for while in ADMIN perspective demotes the perspective back
// to USER so admin controls never show for a foreign room.
func (s *Session) SelectRoom(roomID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeRoomID = roomID
	if s.perspective == PerspectiveAdmin && !s.authorized[roomID] {
		s.perspective = PerspectiveUser
	}
}

// SwitchToAdmin raises the perspective for the active room; it fails when the
// session never authenticated for it.
func (s *Session) SwitchToAdmin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authorized[s.activeRoomID] {
		return ErrRoomNotAuthorized
	}
	s.perspective = PerspectiveAdmin
	return nil
}

func (s *Session) SwitchToUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.perspective = PerspectiveUser
}

// View is an immutable snapshot for responses.
type View struct {
	ID           uuid.UUID
	Perspective  Perspective
	ActiveRoomID string
	Rooms        []string
}

func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	rooms := make([]string, 0, len(s.authorized))
	for id, ok := range s.authorized {
		if ok {
			rooms = append(rooms, id)
		}
	}
	sort.Strings(rooms)
	return View{
		ID:           s.id,
		Perspective:  s.perspective,
		ActiveRoomID: s.activeRoomID,
		Rooms:        rooms,
	}
}
