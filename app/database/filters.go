package database

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// execQuerier is the subset of database operations shared by *sql.DB and
// *sql.Tx, so the guarded deletes can run standalone or inside a batch
// transaction.
type execQuerier interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// splitCSV turns a comma-separated filter value into its non-empty parts.
func splitCSV(value string) []string {
	if value == "" {
		return nil
	}
	var parts []string
	for _, p := range strings.Split(value, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// inClause builds "column IN ($n, $n+1, ...)" and appends the values to
// args, returning the clause and the extended argument list.
func inClause(column string, values []string, args []interface{}) (string, []interface{}) {
	placeholders := make([]string, len(values))
	for i, v := range values {
		args = append(args, v)
		placeholders[i] = fmt.Sprintf("$%d", len(args))
	}
	return fmt.Sprintf("%s IN (%s)", column, strings.Join(placeholders, ", ")), args
}

// sortDirection maps the query-string sort values used by the list pages
// ("az"/"za", "asc"/"desc", "oldest"/"newest") onto SQL directions. Unknown
// values fall back to ascending.
func sortDirection(value string) string {
	switch value {
	case "za", "desc", "newest":
		return "DESC"
	default:
		return "ASC"
	}
}

// pageWindow converts 1-based page/limit parameters into LIMIT/OFFSET
// values, applying the default page size of 20.
func pageWindow(page, limit int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	return limit, (page - 1) * limit
}
