// Package psqlbuilder предоставляет squirrel builder, преднастроенный
// для PostgreSQL ($1, $2, ... плейсхолдеры).
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Insert возвращает InsertBuilder для таблицы
func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

// Select возвращает SelectBuilder для колонок
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Update возвращает UpdateBuilder для таблицы
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete возвращает DeleteBuilder для таблицы
func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}
