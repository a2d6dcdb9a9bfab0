// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Comparison is the predicate function for comparison builders.
type Comparison func(*sql.Selector)

// Contract is the predicate function for contract builders.
type Contract func(*sql.Selector)

// ExtractionLog is the predicate function for extractionlog builders.
type ExtractionLog func(*sql.Selector)
