package database

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrMissingArgs is returned by BuildDelete when the table or key column is
// absent; a statement without both would be meaningless.
var ErrMissingArgs = errors.New("table and key column are required")

// BuildUpdate produces a parameterized partial-update statement for an
// arbitrary subset of columns:
//
//	UPDATE <table> SET col1=$1, col2=$2 WHERE <key>=$3 RETURNING *
//
// Keys beginning with "_" are transport-only (a token travelling in the same
// payload as update data) and never reach the statement. Column names are
// sorted so the placeholder order is deterministic; the returned values end
// with the key value. No literal is ever written into the statement text —
// every value, the key included, is bound positionally.
//
// An empty fields map yields a statement with zero SET clauses; callers must
// guard against that before handing the statement to storage.
func BuildUpdate(table string, fields map[string]any, key string, id any) (string, []any) {
	cols := make([]string, 0, len(fields))
	for col := range fields {
		if strings.HasPrefix(col, "_") {
			continue
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)

	sets := make([]string, len(cols))
	values := make([]any, 0, len(cols)+1)
	for i, col := range cols {
		sets[i] = fmt.Sprintf("%s=$%d", col, i+1)
		values = append(values, fields[col])
	}
	values = append(values, id)

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s=$%d RETURNING *",
		table, strings.Join(sets, ", "), key, len(cols)+1,
	)
	return query, values
}

// BuildDelete produces a parameterized delete-by-key statement returning the
// deleted row. The key value may be anything bindable, including a composed
// composite key.
func BuildDelete(table, key string, id any) (string, any, error) {
	if table == "" || key == "" {
		return "", nil, ErrMissingArgs
	}
	query := fmt.Sprintf("DELETE FROM %s WHERE %s=$1 RETURNING *", table, key)
	return query, id, nil
}
