package domain

import "time"

type UserID = int64

// User is the persisted account record.
type User struct {
	ID        UserID    `json:"id"`
	Username  string    `json:"username"`
	PassHash  []byte    `json:"-"` // never leaves the service
	CreatedAt time.Time `json:"created_at"`
}

// PublicUser is the response projection of User (no hash).
type PublicUser struct {
	ID       UserID `json:"id"`
	Username string `json:"username"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username}
}
