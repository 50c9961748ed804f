package room

import (
	"encoding/json"
	"errors"

	"reservation-portal/internal/pkg/password"
)

var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrInvalidDefinition = errors.New("invalid room definition")
	ErrSecretMismatch    = errors.New("incorrect password for this room")
)

// Room is a static presentation-level entity; the set is fixed at startup.
type Room struct {
	id        string
	name      string
	adminName string
	color     string
}

func NewRoom(id, name, adminName, color string) (Room, error) {
	if id == "" || name == "" {
		return Room{}, ErrInvalidDefinition
	}
	return Room{
		id:        id,
		name:      name,
		adminName: adminName,
		color:     color,
	}, nil
}

func (r Room) ID() string        { return r.id }
func (r Room) Name() string      { return r.name }
func (r Room) AdminName() string { return r.adminName }
func (r Room) Color() string     { return r.color }

// Definition is the configuration shape a Registry is built from. The secret
// is consumed at construction and only its bcrypt hash is retained.
type Definition struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AdminName string `json:"adminName"`
	Color     string `json:"color"`
	Secret    string `json:"secret"`
}

// DefaultDefinitions is the built-in room set used when no ROOMS env is given.
func DefaultDefinitions() []Definition {
	return []Definition{
		{ID: "room-1", Name: "Zasadacia miestnosť A (Alfa)", AdminName: "Peter Správca", Color: "blue", Secret: "SpravcaA*"},
		{ID: "room-2", Name: "Zasadacia miestnosť B (Beta)", AdminName: "Mária Správkyňa", Color: "emerald", Secret: "SpravcaB*"},
		{ID: "room-3", Name: "Zasadacia miestnosť C (Gama)", AdminName: "Ján Vedúci", Color: "indigo", Secret: "SpravcaC*"},
	}
}

func ParseDefinitions(raw string) ([]Definition, error) {
	if raw == "" {
		return DefaultDefinitions(), nil
	}
	var defs []Definition
	if err := json.Unmarshal([]byte(raw), &defs); err != nil {
		return nil, errors.Join(ErrInvalidDefinition, err)
	}
	if len(defs) == 0 {
		return nil, ErrInvalidDefinition
	}
	return defs, nil
}

// Registry owns the fixed room set and the per-room secrets. It implements
// both the directory and the credential check consumed by the use cases.
type Registry struct {
	rooms   []Room
	secrets map[string]string // room id -> bcrypt hash
}

func NewRegistry(defs []Definition) (*Registry, error) {
	reg := &Registry{
		secrets: make(map[string]string, len(defs)),
	}
	for _, def := range defs {
		r, err := NewRoom(def.ID, def.Name, def.AdminName, def.Color)
		if err != nil {
			return nil, err
		}
		if _, dup := reg.secrets[def.ID]; dup {
			return nil, ErrInvalidDefinition
		}
		hash, err := password.HashPassword(def.Secret)
		if err != nil {
			return nil, err
		}
		reg.rooms = append(reg.rooms, r)
		reg.secrets[def.ID] = hash
	}
	return reg, nil
}

func (g *Registry) All() []Room {
	out := make([]Room, len(g.rooms))
	copy(out, g.rooms)
	return out
}

func (g *Registry) FindByID(id string) (Room, error) {
	for _, r := range g.rooms {
		if r.ID() == id {
			return r, nil
		}
	}
	return Room{}, ErrRoomNotFound
}

// VerifySecret reports ErrSecretMismatch on a wrong password and never mutates
// any authentication state; granting rights is the caller's concern.
func (g *Registry) VerifySecret(roomID, candidate string) error {
	hash, ok := g.secrets[roomID]
	if !ok {
		return ErrRoomNotFound
	}
	if err := password.ComparePassword(hash, candidate); err != nil {
		return ErrSecretMismatch
	}
	return nil
}
