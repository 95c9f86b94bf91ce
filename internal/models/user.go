package models

// User represents a row in the users table.
type User struct {
	UserID       string `json:"userID" db:"user_id"`
	Email        string `json:"email" db:"email"`
	Name         string `json:"name" db:"name"`
	PasswordHash string `json:"-" db:"password_hash"`
	AuditFields
}
