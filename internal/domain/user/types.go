package user

import "github.com/google/uuid"

type Role string

const (
	RoleUser         Role = "user"
	RoleHotelManager Role = "hotel_manager"
	RoleAdmin        Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleHotelManager, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Actor is the authenticated caller of a usecase.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func NewActor(id uuid.UUID, role string) (Actor, error) {
	r, err := NewRole(role)
	if err != nil {
		return Actor{}, err
	}
	return Actor{ID: id, Role: r}, nil
}

func (a Actor) IsAdmin() bool        { return a.Role == RoleAdmin }
func (a Actor) IsHotelManager() bool { return a.Role == RoleHotelManager }
