// Package psqlbuilder exposes squirrel builders preconfigured for
// PostgreSQL ($N placeholders).
package psqlbuilder

import (
	"github.com/Masterminds/squirrel"
)

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
