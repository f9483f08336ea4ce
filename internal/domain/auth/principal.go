package auth

import "github.com/google/uuid"

// Principal is the acting identity of a request as reported by the identity provider.
// The zero value is the anonymous principal.
type Principal struct {
	userID   uuid.UUID
	username string
}

func Anonymous() Principal {
	return Principal{}
}

func NewPrincipal(userID uuid.UUID, username string) Principal {
	return Principal{userID: userID, username: username}
}

func (p Principal) UserID() uuid.UUID     { return p.userID }
func (p Principal) Username() string      { return p.username }
func (p Principal) IsAuthenticated() bool { return p.userID != uuid.Nil }

// Is reports whether p is authenticated as userID.
func (p Principal) Is(userID uuid.UUID) bool {
	return p.IsAuthenticated() && p.userID == userID
}
