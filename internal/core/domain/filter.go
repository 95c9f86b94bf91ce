package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FilterClause is one predicate over the transaction ledger. The storage
// adapter folds a clause list into a single conjunctive query; the clause
// types themselves carry no storage-specific query-building API.
type FilterClause interface {
	isFilterClause()
}

// OwnerEquals scopes a query to a single owner. Every compiled filter carries
// exactly one of these; it is the sole mechanism preventing cross-tenant reads.
type OwnerEquals struct{ OwnerID string }

// AmountAtLeast matches transactions with amount >= Min (inclusive).
type AmountAtLeast struct{ Min decimal.Decimal }

// AmountAtMost matches transactions with amount <= Max (inclusive).
type AmountAtMost struct{ Max decimal.Decimal }

// DateAtLeast matches transactions dated on or after Start.
type DateAtLeast struct{ Start time.Time }

// DateAtMost matches transactions dated on or before End.
type DateAtMost struct{ End time.Time }

// TypeEquals matches transactions of exactly the given type.
type TypeEquals struct{ Type TransactionType }

// CategoryEquals matches transactions referencing exactly the given category.
type CategoryEquals struct{ CategoryID string }

func (OwnerEquals) isFilterClause()    {}
func (AmountAtLeast) isFilterClause()  {}
func (AmountAtMost) isFilterClause()   {}
func (DateAtLeast) isFilterClause()    {}
func (DateAtMost) isFilterClause()     {}
func (TypeEquals) isFilterClause()     {}
func (CategoryEquals) isFilterClause() {}

// TransactionFilter is a compiled, owner-scoped conjunction of clauses.
// Construct it with NewTransactionFilter so the owner clause is never omitted.
type TransactionFilter struct {
	ownerID string
	clauses []FilterClause
}

// FilterCriteria are the optional listing criteria supplied by a caller.
// Nil fields contribute no clause: true omission, not a sentinel wildcard.
type FilterCriteria struct {
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	StartDate  *time.Time
	EndDate    *time.Time
	Type       *TransactionType
	CategoryID *string
}

// NewTransactionFilter compiles criteria into an owner-scoped filter.
// The OwnerEquals clause is added unconditionally.
func NewTransactionFilter(ownerID string, criteria FilterCriteria) TransactionFilter {
	clauses := []FilterClause{OwnerEquals{OwnerID: ownerID}}
	if criteria.MinAmount != nil {
		clauses = append(clauses, AmountAtLeast{Min: *criteria.MinAmount})
	}
	if criteria.MaxAmount != nil {
		clauses = append(clauses, AmountAtMost{Max: *criteria.MaxAmount})
	}
	if criteria.StartDate != nil {
		clauses = append(clauses, DateAtLeast{Start: *criteria.StartDate})
	}
	if criteria.EndDate != nil {
		clauses = append(clauses, DateAtMost{End: *criteria.EndDate})
	}
	if criteria.Type != nil {
		clauses = append(clauses, TypeEquals{Type: *criteria.Type})
	}
	if criteria.CategoryID != nil {
		clauses = append(clauses, CategoryEquals{CategoryID: *criteria.CategoryID})
	}
	return TransactionFilter{ownerID: ownerID, clauses: clauses}
}

// OwnerID returns the owner the filter is scoped to.
func (f TransactionFilter) OwnerID() string {
	return f.ownerID
}

// Clauses returns the clause list, OwnerEquals always first.
func (f TransactionFilter) Clauses() []FilterClause {
	return f.clauses
}
