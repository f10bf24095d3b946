// internal/wordsdb/db.go
//
// SQLite-backed word lists.
// Responsibilities:
//   - Opening SQLite with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying embedded migrations (idempotent, recorded in _migrations).
//   - Importing words.Lists and loading them back for a words.Bank.
//
// The database is configuration input only; no game state is stored here.

package wordsdb

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/rudreshark/hangman-game-with-gui/internal/words"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Open opens (and creates if missing) a SQLite database file.
func Open(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// Migrate applies embedded migrations in lexical order, skipping those
// already recorded in _migrations.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		body, err := fs.ReadFile(migrations, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, string(body)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// Import inserts every entry of lists, normalized, ignoring ones already
// present. It returns the number of rows added.
func Import(ctx context.Context, db *sql.DB, lists words.Lists) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words (tier, category, entry) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	added := 0
	for _, t := range words.Tiers {
		for _, c := range []words.Category{words.Fruits, words.Vegetables} {
			for _, w := range words.Normalize(lists[t][c]) {
				res, err := stmt.ExecContext(ctx, t.Key(), c.Key(), w)
				if err != nil {
					return 0, fmt.Errorf("insert %s/%s %q: %w", t.Key(), c.Key(), w, err)
				}
				if n, _ := res.RowsAffected(); n > 0 {
					added++
				}
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}
	return added, nil
}

// Load reads every stored entry in insertion order. Rows naming an unknown
// tier or a non-base category are skipped with a warning.
func Load(ctx context.Context, db *sql.DB) (words.Lists, error) {
	rows, err := db.QueryContext(ctx, `SELECT tier, category, entry FROM words ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	lists := words.Lists{}
	for rows.Next() {
		var tierKey, catKey, entry string
		if err := rows.Scan(&tierKey, &catKey, &entry); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		t, err := words.ParseTier(tierKey)
		if err != nil {
			log.Warn().Err(err).Str("entry", entry).Msg("skip word row")
			continue
		}
		c, err := words.ParseCategory(catKey)
		if err != nil || c == words.Mixed {
			log.Warn().Str("category", strings.TrimSpace(catKey)).Str("entry", entry).Msg("skip word row")
			continue
		}
		lists.Set(t, c, append(lists[t][c], entry))
	}
	return lists, rows.Err()
}

// LoadFile opens path, migrates it and loads its lists.
func LoadFile(ctx context.Context, path string) (words.Lists, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	if err := Migrate(ctx, db); err != nil {
		return nil, err
	}
	return Load(ctx, db)
}
