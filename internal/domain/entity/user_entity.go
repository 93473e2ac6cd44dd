package entity

// User is the aggregate root for the user domain.
// PasswordHash holds a bcrypt hash, never the plaintext.
//
// email and userName are unique across users, enforced by pre-insert checks.
type User struct {
	ID           string
	Name         string
	UserName     string
	Email        string
	PasswordHash string
}
