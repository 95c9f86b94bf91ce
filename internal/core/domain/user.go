package domain

// User represents a user of the application in the domain.
// The UserID is the sole tenant-isolation key for transactions.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	AuditFields
}
