// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Invoice is the predicate function for invoice builders.
type Invoice func(*sql.Selector)

// Party is the predicate function for party builders.
type Party func(*sql.Selector)

// UploadJob is the predicate function for uploadjob builders.
type UploadJob func(*sql.Selector)
