// Package psqlbuilder wraps squirrel with the PostgreSQL placeholder format,
// so repositories don't repeat PlaceholderFormat(squirrel.Dollar) on every query.
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select returns a SELECT builder with $-placeholders
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert returns an INSERT builder with $-placeholders
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update returns an UPDATE builder with $-placeholders
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete returns a DELETE builder with $-placeholders
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
