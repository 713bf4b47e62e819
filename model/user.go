package model

// User is the identity record held by the user store. The password field
// carries the bcrypt hash, never the plaintext, and is excluded from JSON
// responses.
type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"-"`
	IsActive bool   `json:"is_active"`
}
