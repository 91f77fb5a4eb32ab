package models

// User is a fixed account from the authorized user directory. PasswordHash is
// a bcrypt hash; plaintext passwords never leave the directory seed.
type User struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
}
