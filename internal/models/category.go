package models

// Category represents a row in the categories table. Name carries a unique constraint.
type Category struct {
	CategoryID string `json:"categoryID" db:"category_id"`
	Name       string `json:"name" db:"name"`
	Active     bool   `json:"active" db:"active"`
	AuditFields
}
