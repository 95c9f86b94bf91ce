package domain

// Category is a named spending/income bucket. Names are unique across the app.
// An inactive category stays referenced by existing transactions; it is only
// hidden from category listings used to create new transactions.
type Category struct {
	CategoryID string `json:"categoryID"` // Primary Key (UUID)
	Name       string `json:"name"`
	Active     bool   `json:"active"`
	AuditFields
}
