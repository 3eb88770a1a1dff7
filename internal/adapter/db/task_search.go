package db

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/caronvincent/todo-burbanie/internal/core/domain"
)

// likeEscape is accepted by both MySQL and SQLite without quoting rules
// getting in the way, unlike a backslash.
const likeEscape = "!"

var likeEscaper = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

// buildTaskSearch ANDs one predicate per filter field that is set.
func buildTaskSearch(filter domain.TaskFilter) sq.SelectBuilder {
	query := sq.Select("id", "name", "description", "deadline", "category_id", "author").
		From("tasks").
		OrderBy("id")

	if filter.Author != nil {
		query = query.Where(sq.Eq{"author": *filter.Author})
	}
	if filter.Name != nil {
		query = query.Where(containsExpr("name", *filter.Name))
	}
	if filter.Description != nil {
		query = query.Where(containsExpr("description", *filter.Description))
	}
	if filter.Deadline != nil {
		query = query.Where(sq.Eq{"deadline": filter.Deadline.UTC()})
	}
	if filter.CategoryID != nil {
		query = query.Where(sq.Eq{"category_id": *filter.CategoryID})
	}

	return query
}

func containsExpr(column, value string) sq.Sqlizer {
	return sq.Expr(column+" LIKE ? ESCAPE '"+likeEscape+"'", "%"+likeEscaper.Replace(value)+"%")
}
