package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"taskflow/internal/config"
	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

// SQLStore serves the record store contract from MySQL. Each entity kind
// maps to a table whose columns carry the wire field names, so the codec
// above applies unchanged to both store implementations.
type SQLStore struct {
	db *sqlx.DB
}

var _ ports.RecordStore = (*SQLStore)(nil)

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	params := conf.DbParams
	if params == "" {
		params = "parseTime=false&multiStatements=true"
	}

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		conf.DbName,
		params,
	)

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) DB() *sqlx.DB {
	return s.db
}

func (s *SQLStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

func tableFor(kind string) (string, error) {
	switch kind {
	case ports.KindTask:
		return "tasks", nil
	case ports.KindCategory:
		return "categories", nil
	default:
		return "", fmt.Errorf("unknown entity kind %q", kind)
	}
}

func (s *SQLStore) FetchAll(ctx context.Context, kind string) ([]ports.RawRecord, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryxContext(ctx, fmt.Sprintf("SELECT * FROM `%s` ORDER BY `Id`", table))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var out []ports.RawRecord
	for rows.Next() {
		rec := ports.RawRecord{}
		if err := rows.MapScan(rec); err != nil {
			return nil, err
		}
		out = append(out, normalizeRow(rec))
	}
	return out, rows.Err()
}

func (s *SQLStore) FetchOne(ctx context.Context, kind string, id int) (ports.RawRecord, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRowxContext(ctx, fmt.Sprintf("SELECT * FROM `%s` WHERE `Id` = ?", table), id)
	rec := ports.RawRecord{}
	if err := row.MapScan(rec); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return normalizeRow(rec), nil
}

func (s *SQLStore) CreateOne(ctx context.Context, kind string, fields ports.RawRecord) (ports.BatchResult, error) {
	table, err := tableFor(kind)
	if err != nil {
		return ports.BatchResult{}, err
	}

	columns, args := splitFields(fields)
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	query := fmt.Sprintf(
		"INSERT INTO `%s` (%s) VALUES (%s)",
		table, quoteColumns(columns), placeholders,
	)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return failedResult(err), nil
	}
	id, err := res.LastInsertId()
	if err != nil {
		return failedResult(err), nil
	}

	rec, err := s.FetchOne(ctx, kind, int(id))
	if err != nil {
		return ports.BatchResult{}, err
	}
	return ports.BatchResult{
		Success: true,
		Results: []ports.RecordResult{{Success: true, Data: rec}},
	}, nil
}

func (s *SQLStore) UpdateOne(ctx context.Context, kind string, fields ports.RawRecord) (ports.BatchResult, error) {
	table, err := tableFor(kind)
	if err != nil {
		return ports.BatchResult{}, err
	}

	id, ok := recordInt(fields[fieldID])
	if !ok {
		return ports.BatchResult{Results: []ports.RecordResult{{
			Message: "record id is required",
			Errors:  []ports.FieldError{{FieldLabel: fieldID, Message: "missing"}},
		}}}, nil
	}

	assigns := cloneRecord(fields)
	delete(assigns, fieldID)
	columns, args := splitFields(assigns)
	sets := make([]string, 0, len(columns))
	for _, c := range columns {
		sets = append(sets, fmt.Sprintf("`%s` = ?", c))
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE `%s` SET %s WHERE `Id` = ?", table, strings.Join(sets, ", "))
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return failedResult(err), nil
	}

	rec, err := s.FetchOne(ctx, kind, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return ports.BatchResult{Results: []ports.RecordResult{{Message: "record not found"}}}, nil
		}
		return ports.BatchResult{}, err
	}
	return ports.BatchResult{
		Success: true,
		Results: []ports.RecordResult{{Success: true, Data: rec}},
	}, nil
}

func (s *SQLStore) DeleteOne(ctx context.Context, kind string, ids []int) (ports.BatchResult, error) {
	table, err := tableFor(kind)
	if err != nil {
		return ports.BatchResult{}, err
	}

	out := ports.BatchResult{Success: true}
	for _, id := range ids {
		res, err := s.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM `%s` WHERE `Id` = ?", table), id)
		if err != nil {
			out.Success = false
			out.Results = append(out.Results, ports.RecordResult{Message: err.Error()})
			continue
		}
		affected, err := res.RowsAffected()
		if err != nil || affected == 0 {
			out.Success = false
			out.Results = append(out.Results, ports.RecordResult{Message: "record not found"})
			continue
		}
		out.Results = append(out.Results, ports.RecordResult{Success: true})
	}
	return out, nil
}

func failedResult(err error) ports.BatchResult {
	return ports.BatchResult{Results: []ports.RecordResult{{Message: err.Error()}}}
}

// splitFields returns columns in a deterministic order so generated SQL
// is reproducible in tests and logs.
func splitFields(fields ports.RawRecord) ([]string, []any) {
	columns := make([]string, 0, len(fields))
	for c := range fields {
		columns = append(columns, c)
	}
	sort.Strings(columns)

	args := make([]any, 0, len(columns))
	for _, c := range columns {
		args = append(args, fields[c])
	}
	return columns, args
}

func quoteColumns(columns []string) string {
	quoted := make([]string, 0, len(columns))
	for _, c := range columns {
		quoted = append(quoted, "`"+c+"`")
	}
	return strings.Join(quoted, ", ")
}

// normalizeRow converts MapScan []byte values to strings so raw records
// look the same regardless of the backing store.
func normalizeRow(rec ports.RawRecord) ports.RawRecord {
	for k, v := range rec {
		if b, ok := v.([]byte); ok {
			rec[k] = string(b)
		}
	}
	return rec
}
