package book

import (
	"fmt"
	"strings"
)

// SortField is a column the books listing may be ordered by. Only
// whitelisted columns ever reach the SQL text; anything else falls back to
// the default, never into the query.
type SortField string

const (
	SortByID          SortField = "id"
	SortByTitle       SortField = "title"
	SortByReleaseDate SortField = "release_date"
	SortByAuthor      SortField = "author"
)

// SortFieldFrom maps client input to a whitelisted sort column. Unknown
// values map to SortByID rather than failing.
func SortFieldFrom(s string) SortField {
	switch s {
	case "title":
		return SortByTitle
	case "release_date":
		return SortByReleaseDate
	case "author":
		return SortByAuthor
	default:
		return SortByID
	}
}

// Direction is a sort direction. Like SortField it is a closed set; unknown
// input maps to ascending.
type Direction string

const (
	Ascending  Direction = "ASC"
	Descending Direction = "DESC"
)

// DirectionFrom maps client input to a sort direction, case-insensitively.
func DirectionFrom(s string) Direction {
	if strings.EqualFold(s, "desc") {
		return Descending
	}
	return Ascending
}

// Condition is one equality filter on a whitelisted column. Values are
// always passed as bound parameters.
type Condition struct {
	Field string
	Value any
}

// filterFields are the columns a search may filter on, in the order they
// appear in generated SQL.
var filterFields = []string{"id", "title", "release_date", "author"}

// ConditionsFrom picks the recognized, non-empty filter parameters out of a
// query-string-shaped map. Unrecognized parameters are ignored.
func ConditionsFrom(get func(string) string) []Condition {
	var conds []Condition
	for _, f := range filterFields {
		if v := get(f); v != "" {
			conds = append(conds, Condition{Field: f, Value: v})
		}
	}
	return conds
}

const selectColumns = "id, title, release_date, author, description, image"

// whereClause renders the conditions as "WHERE f1 = $1 AND f2 = $2 ..."
// starting at placeholder $1, or an empty string when there are none.
func whereClause(conds []Condition) (string, []any) {
	if len(conds) == 0 {
		return "", nil
	}
	clauses := make([]string, 0, len(conds))
	args := make([]any, 0, len(conds))
	for i, c := range conds {
		clauses = append(clauses, fmt.Sprintf("%s = $%d", c.Field, i+1))
		args = append(args, c.Value)
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// BuildCountQuery returns the total-count query for the given filters.
func BuildCountQuery(conds []Condition) (string, []any) {
	where, args := whereClause(conds)
	return "SELECT COUNT(*) FROM books" + where, args
}

// BuildSearchQuery returns the page-fetch query for the given filters, sort
// and window. The sort column and direction are typed whitelists so placing
// them into the SQL text is safe.
func BuildSearchQuery(conds []Condition, sortBy SortField, dir Direction, limit, offset int) (string, []any) {
	where, args := whereClause(conds)
	sql := fmt.Sprintf("SELECT %s FROM books%s ORDER BY %s %s LIMIT $%d OFFSET $%d",
		selectColumns, where, sortBy, dir, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return sql, args
}
