package export

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/charmap/internal/charset"
	"github.com/louisbranch/charmap/internal/export/migrations"
	"github.com/louisbranch/charmap/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

// Store persists records in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// OpenStore opens a SQLite records database and applies embedded migrations.
func OpenStore(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// ReplaceRecords swaps the stored records for records in one transaction,
// keeping their order in the position column.
func (s *Store) ReplaceRecords(ctx context.Context, records []charset.Record) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO records (
	   position, symbol, hex, code, name, category, entities, tags
	 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, record := range records {
		var code sql.NullInt64
		if record.Code.Valid {
			code = sql.NullInt64{Int64: int64(record.Code.Value), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx,
			i,
			record.Symbol,
			record.Hex,
			code,
			record.Name,
			record.Category,
			record.Entities,
			record.Tags,
		); err != nil {
			return fmt.Errorf("insert record %d (%s): %w", i, record.Hex, err)
		}
	}
	return tx.Commit()
}

// ListRecords returns stored records in position order.
func (s *Store) ListRecords(ctx context.Context) ([]charset.Record, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT symbol, hex, code, name, category, entities, tags
	 FROM records ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var out []charset.Record
	for rows.Next() {
		var record charset.Record
		var code sql.NullInt64
		if err := rows.Scan(
			&record.Symbol,
			&record.Hex,
			&code,
			&record.Name,
			&record.Category,
			&record.Entities,
			&record.Tags,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		if code.Valid {
			record.Code = charset.CodeOf(int(code.Int64))
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return out, nil
}

// WriteSQLite opens the database at path and replaces its records.
func WriteSQLite(ctx context.Context, path string, records []charset.Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	store, err := OpenStore(ctx, path)
	if err != nil {
		return err
	}
	if err := store.ReplaceRecords(ctx, records); err != nil {
		_ = store.Close()
		return err
	}
	return store.Close()
}
