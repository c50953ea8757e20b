// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AiQueueEntry is the predicate function for aiqueueentry builders.
type AiQueueEntry func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Batch is the predicate function for batch builders.
type Batch func(*sql.Selector)

// Campaign is the predicate function for campaign builders.
type Campaign func(*sql.Selector)

// Reservation is the predicate function for reservation builders.
type Reservation func(*sql.Selector)

// Scan is the predicate function for scan builders.
type Scan func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
