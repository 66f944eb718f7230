// Package duck is a duckdb-backed record source: it loads a file into an
// in-memory table and serves counted, filtered pages from it.
package duck

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"tableau"
	nt "tableau/entity"
)

const recordsTable = "records"

// Duck serves records from an in-memory duckdb table.
type Duck struct {
	db       *sql.DB
	logger   nt.Logger
	filter   nt.Filter
	sorts    []nt.Sort
	keyField string
	filename string
}

// New opens an in-memory duckdb. keyField is the column row keys come
// from; blank means "id".
func New(keyField string, lgr nt.Logger) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", "")
	if err != nil {
		err = errors.Wrapf(err, "failed to open memo duck")
		return
	}

	if keyField == "" {
		keyField = "id"
	}

	dk = &Duck{
		db:       db,
		logger:   lgr,
		keyField: keyField,
		sorts:    []nt.Sort{},
	}

	return
}

func (dk *Duck) Close() {
	dk.db.Close()
}

// LoadNDJSON loads a newline-delimited json file, numbering rows into an
// id column.
func (dk *Duck) LoadNDJSON(path string) (err error) {

	dk.filename = path

	query := fmt.Sprintf(`
		CREATE OR REPLACE TABLE %s AS
		SELECT ROW_NUMBER() OVER () AS id, *
		FROM read_json('%s', format='newline_delimited')
	`, recordsTable, path)

	_, err = dk.db.Exec(query)
	err = errors.Wrapf(err, "failed to load %s", path)
	return
}

// Name returns the name of the loaded file.
func (dk *Duck) Name() string {
	return dk.filename
}

// SetView applies a filter and sorts to subsequent reads.
func (dk *Duck) SetView(filter nt.Filter, sorts []nt.Sort) (err error) {
	dk.filter = filter
	dk.sorts = sorts
	return nil
}

// Fields returns the fields of the records table in column order.
func (dk *Duck) Fields() (fields []nt.Field, err error) {

	rows, err := dk.db.Query(`
		SELECT column_name, data_type
		FROM information_schema.columns
		WHERE table_name = ?
		ORDER BY ordinal_position
	`, recordsTable)
	if err != nil {
		err = errors.Wrapf(err, "failed to query schema")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var field nt.Field
		err = rows.Scan(&field.Name, &field.Type)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan field")
			return
		}
		fields = append(fields, field)
	}

	err = errors.Wrapf(rows.Err(), "failed to read schema")
	return
}

// Count returns the number of records in the current view.
func (dk *Duck) Count() (count int, err error) {

	query := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", recordsTable, dk.whereClause())

	err = dk.db.QueryRow(query).Scan(&count)
	err = errors.Wrapf(err, "failed to count records")
	return
}

// Page returns records [offset, offset+size) of the current view.
func (dk *Duck) Page(offset, size int) (records []nt.Record, err error) {

	if offset < 0 {
		offset = 0
	}
	if size < 1 {
		return
	}

	query := fmt.Sprintf("SELECT * FROM %s %s %s LIMIT %d OFFSET %d",
		recordsTable, dk.whereClause(), dk.orderClause(), size, offset)

	rows, err := dk.db.Query(query)
	if err != nil {
		err = errors.Wrapf(err, "failed to query records")
		return
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		err = errors.Wrapf(err, "failed to get columns")
		return
	}

	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}

		err = rows.Scan(ptrs...)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan record")
			return
		}

		rec := make(nt.Record, len(cols))
		for i, col := range cols {
			rec[col] = nt.Value{Raw: vals[i]}
		}
		records = append(records, rec)
	}

	err = errors.Wrapf(rows.Err(), "failed to read records")
	return
}

// Get returns the full record behind a row key.
func (dk *Duck) Get(key string) (data map[string]any, err error) {

	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = ?", recordsTable, dk.keyField)

	rows, err := dk.db.Query(query, key)
	if err != nil {
		err = errors.Wrapf(err, "failed to query record %s", key)
		return
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		err = errors.Wrapf(err, "failed to get columns")
		return
	}

	if !rows.Next() {
		err = errors.Errorf("no record with key %s", key)
		return
	}

	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}

	err = rows.Scan(ptrs...)
	if err != nil {
		err = errors.Wrapf(err, "failed to scan record")
		return
	}

	data = make(map[string]any, len(cols))
	for i, col := range cols {
		data[col] = vals[i]
	}

	return
}

// Apply runs a bulk operation on a batch of row keys, one statement per
// key so each item succeeds or fails on its own.
func (dk *Duck) Apply(op string, keys []string) (results []tableau.Result, err error) {

	var statement string
	switch op {
	case "delete":
		statement = fmt.Sprintf("DELETE FROM %s WHERE %s = ?", recordsTable, dk.keyField)
	default:
		err = errors.Errorf("unknown bulk op: %s", op)
		return
	}

	results = make([]tableau.Result, 0, len(keys))
	for _, key := range keys {
		_, itemErr := dk.db.Exec(statement, key)
		results = append(results, tableau.Result{
			Key: key,
			Err: errors.Wrapf(itemErr, "failed to %s record %s", op, key),
		})
	}

	return
}

// unexported

// whereClause converts the current filter to a SQL WHERE clause.
func (dk *Duck) whereClause() string {

	clause := filterExpr(dk.filter)
	if clause == "" {
		return ""
	}
	return "WHERE " + clause
}

func (dk *Duck) orderClause() string {

	if len(dk.sorts) == 0 {
		return fmt.Sprintf("ORDER BY %s", dk.keyField)
	}

	terms := make([]string, 0, len(dk.sorts))
	for _, srt := range dk.sorts {
		dir := "ASC"
		if srt.Desc {
			dir = "DESC"
		}
		terms = append(terms, fmt.Sprintf("%s %s", srt.Field, dir))
	}
	return "ORDER BY " + strings.Join(terms, ", ")
}

// filterExpr recursively builds a filter expression without the WHERE
// prefix; empty and disabled nodes vanish.
func filterExpr(f nt.Filter) string {
	switch f.Op {
	case nt.Eq, nt.Ne, nt.Gt, nt.Gte, nt.Lt, nt.Lte, nt.Contains:
		if f.Field == "" {
			return ""
		}
	}

	switch f.Op {
	case nt.Eq:
		return fmt.Sprintf("%s = '%v'", f.Field, f.Value)
	case nt.Ne:
		return fmt.Sprintf("%s != '%v'", f.Field, f.Value)
	case nt.Gt:
		return fmt.Sprintf("%s > %v", f.Field, f.Value)
	case nt.Gte:
		return fmt.Sprintf("%s >= %v", f.Field, f.Value)
	case nt.Lt:
		return fmt.Sprintf("%s < %v", f.Field, f.Value)
	case nt.Lte:
		return fmt.Sprintf("%s <= %v", f.Field, f.Value)
	case nt.Contains:
		return fmt.Sprintf("%s LIKE '%%%v%%'", f.Field, f.Value)
	case nt.And:
		return joinChildren(f.Children, " AND ")
	case nt.Or:
		return joinChildren(f.Children, " OR ")
	case nt.Not:
		if len(f.Children) > 0 {
			if expr := filterExpr(f.Children[0]); expr != "" {
				return "NOT (" + expr + ")"
			}
		}
		return ""
	default:
		return ""
	}
}

func joinChildren(children []nt.Filter, sep string) string {

	var clauses []string
	for _, child := range children {
		if expr := filterExpr(child); expr != "" {
			clauses = append(clauses, expr)
		}
	}
	if len(clauses) == 0 {
		return ""
	}
	return "(" + strings.Join(clauses, sep) + ")"
}
