package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const createSavesTable = `CREATE TABLE IF NOT EXISTS saves (
	slot     TEXT PRIMARY KEY,
	game_id  TEXT NOT NULL,
	major    INTEGER NOT NULL,
	minor    INTEGER NOT NULL,
	data     BLOB NOT NULL,
	saved_at INTEGER NOT NULL
)`

// SqliteSaveStore keeps saves as rows of a single SQLite table.
type SqliteSaveStore struct {
	sqlDB *sql.DB
}

func OpenSqliteSaveStore(path string) (*SqliteSaveStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("save database path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(createSavesTable); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create saves table: %w", err)
	}
	return &SqliteSaveStore{sqlDB: sqlDB}, nil
}

func (s *SqliteSaveStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *SqliteSaveStore) Put(ctx context.Context, info SaveInfo, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateSlot(info.Slot); err != nil {
		return err
	}
	savedAt := info.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO saves (slot, game_id, major, minor, data, saved_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET
		   game_id = excluded.game_id,
		   major = excluded.major,
		   minor = excluded.minor,
		   data = excluded.data,
		   saved_at = excluded.saved_at`,
		info.Slot,
		info.GameID,
		info.Major,
		info.Minor,
		data,
		savedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put save: %w", err)
	}
	return nil
}

func (s *SqliteSaveStore) Get(ctx context.Context, slot string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var data []byte
	err := s.sqlDB.QueryRowContext(ctx, `SELECT data FROM saves WHERE slot = ?`, slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get save: %w", err)
	}
	return data, nil
}

// Info returns the stored metadata of slot.
func (s *SqliteSaveStore) Info(ctx context.Context, slot string) (SaveInfo, error) {
	info := SaveInfo{Slot: slot}
	var savedAt int64
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT game_id, major, minor, saved_at FROM saves WHERE slot = ?`,
		slot,
	).Scan(&info.GameID, &info.Major, &info.Minor, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return SaveInfo{}, ErrSlotNotFound
	}
	if err != nil {
		return SaveInfo{}, fmt.Errorf("get save info: %w", err)
	}
	info.SavedAt = time.UnixMilli(savedAt).UTC()
	return info, nil
}
