package entity

import "time"

// Session links a cookie-carried identifier to an authenticated userName.
type Session struct {
	ID        string
	UserName  string
	CreatedAt time.Time
}
