package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"nodekey/internal/domain"
)

// recordModel maps the `records` table.
type recordModel struct {
	bun.BaseModel `bun:"table:records"`

	Name      string    `bun:"name,pk"`
	Content   []byte    `bun:"content,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// SQLStore stores records as rows of a SQLite database.
type SQLStore struct {
	db  *bun.DB
	now func() time.Time
}

// OpenSQLStore opens (creating if needed) the SQLite database at dsn.
func OpenSQLStore(ctx context.Context, dsn string) (*SQLStore, error) {
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}
	// A single connection keeps ":memory:" databases coherent.
	sqlDB.SetMaxOpenConns(1)

	db := bun.NewDB(sqlDB, sqlitedialect.New())
	if _, err := db.NewCreateTable().Model((*recordModel)(nil)).IfNotExists().Exec(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create records table: %w", err)
	}
	return &SQLStore{db: db, now: time.Now}, nil
}

// Read returns the content of record name.
func (s *SQLStore) Read(ctx context.Context, name string) ([]byte, error) {
	var rec recordModel
	err := s.db.NewSelect().Model(&rec).Where("name = ?", name).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return rec.Content, nil
}

// Write inserts or replaces record name.
func (s *SQLStore) Write(ctx context.Context, name string, content []byte) error {
	rec := &recordModel{
		Name:      name,
		Content:   append([]byte(nil), content...),
		UpdatedAt: s.now().UTC(),
	}
	_, err := s.db.NewInsert().
		Model(rec).
		On("CONFLICT (name) DO UPDATE").
		Set("content = EXCLUDED.content").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

// Close releases the database.
func (s *SQLStore) Close() error { return s.db.Close() }

// Compile-time assertion that SQLStore implements domain.BlobStore.
var _ domain.BlobStore = (*SQLStore)(nil)
