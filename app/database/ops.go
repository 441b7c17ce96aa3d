package database

import (
	"sort"
)

const (
	returnRepresentation = "representation"
	returnMinimal        = "minimal"
	countExact           = "exact"
)

// Insert writes data into table and returns the stored row.
func Insert[T any](m *Manager, table string, data T) Result[T] {
	body, _, err := m.run("insert", table, m.from(table).Insert(data, false, "", returnRepresentation, ""))
	if err != nil {
		return fail[T](err)
	}
	row, err := decodeOne[T](body)
	if err != nil {
		return fail[T](err)
	}
	return ok(row)
}

// Select returns every row of table. columns defaults to "*".
func Select[T any](m *Manager, table, columns string) Result[[]T] {
	if columns == "" {
		columns = "*"
	}
	body, _, err := m.run("select", table, m.from(table).Select(columns, "", false))
	if err != nil {
		return fail[[]T](err)
	}
	rows, err := decodeRows[T](body)
	if err != nil {
		return fail[[]T](err)
	}
	return ok(rows)
}

// SelectWhere returns the rows whose column equals value.
func SelectWhere[T any](m *Manager, table, column string, value any) Result[[]T] {
	fb := m.from(table).Select("*", "", false).Eq(column, str(value))
	body, _, err := m.run("select", table, fb)
	if err != nil {
		return fail[[]T](err)
	}
	rows, err := decodeRows[T](body)
	if err != nil {
		return fail[[]T](err)
	}
	return ok(rows)
}

// SelectSingle returns the first row whose column equals value, or
// ErrNotFound.
func SelectSingle[T any](m *Manager, table, column string, value any) Result[T] {
	fb := m.from(table).Select("*", "", false).Eq(column, str(value)).Limit(1, "")
	body, _, err := m.run("select", table, fb)
	if err != nil {
		return fail[T](err)
	}
	row, err := decodeOne[T](body)
	if err != nil {
		return fail[T](err)
	}
	return ok(row)
}

// Update applies data to the rows whose column equals value and returns the
// first updated row. ErrNotFound when nothing matched.
func Update[T any](m *Manager, table string, data T, column string, value any) Result[T] {
	fb := m.from(table).Update(data, returnRepresentation, "").Eq(column, str(value))
	body, _, err := m.run("update", table, fb)
	if err != nil {
		return fail[T](err)
	}
	row, err := decodeOne[T](body)
	if err != nil {
		return fail[T](err)
	}
	return ok(row)
}

// Upsert inserts data or merges it into the row conflicting on onConflict
// (comma separated columns; empty means the primary key).
func Upsert[T any](m *Manager, table string, data T, onConflict string) Result[T] {
	body, _, err := m.run("upsert", table, m.from(table).Upsert(data, onConflict, returnRepresentation, ""))
	if err != nil {
		return fail[T](err)
	}
	row, err := decodeOne[T](body)
	if err != nil {
		return fail[T](err)
	}
	return ok(row)
}

// Delete removes the rows whose column equals value.
func Delete(m *Manager, table, column string, value any) Result[struct{}] {
	fb := m.from(table).Delete(returnMinimal, "").Eq(column, str(value))
	if _, _, err := m.run("delete", table, fb); err != nil {
		return fail[struct{}](err)
	}
	return ok(struct{}{})
}

// ── Filtered, paginated reads ────────────────────────────────────────────────

// Op is a Postgrest comparison operator.
type Op string

const (
	OpEq    Op = "eq"
	OpIlike Op = "ilike"
)

// Filter is one column predicate. Ilike values are matched as substrings.
type Filter struct {
	Op    Op
	Value string
}

// Paginated is one page of rows plus the total match count.
type Paginated[T any] struct {
	Data     []T
	Total    int
	Page     int
	PageSize int
	HasMore  bool
}

// SelectWithFilters returns page (zero-based) of pageSize rows matching every
// filter, with the exact total count.
func SelectWithFilters[T any](m *Manager, table string, filters map[string]Filter, page, pageSize int) Result[Paginated[T]] {
	fb := m.from(table).Select("*", countExact, false)

	columns := make([]string, 0, len(filters))
	for col := range filters {
		columns = append(columns, col)
	}
	sort.Strings(columns)
	for _, col := range columns {
		f := filters[col]
		switch f.Op {
		case OpIlike:
			fb = fb.Ilike(col, "%"+f.Value+"%")
		default:
			fb = fb.Eq(col, f.Value)
		}
	}

	from := page * pageSize
	fb = fb.Range(from, from+pageSize-1, "")

	body, count, err := m.run("select", table, fb)
	if err != nil {
		return fail[Paginated[T]](err)
	}
	rows, err := decodeRows[T](body)
	if err != nil {
		return fail[Paginated[T]](err)
	}

	total := int(count)
	return ok(Paginated[T]{
		Data:     rows,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasMore:  (page+1)*pageSize < total,
	})
}
