package entity

import "time"

// Session is the single login record for a user. The user ID is the
// primary key, so a user can never hold more than one live refresh token.
type Session struct {
	UserID       string    `json:"user_id"`
	RefreshToken string    `json:"-"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}

func (s Session) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}
