package wordsdb

import (
	"context"
	"database/sql"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rudreshark/hangman-game-with-gui/internal/words"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "data", "words.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// second run must be a no-op
	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("migrate again: %v", err)
	}
	return db
}

func TestImportLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	in := words.Lists{}
	in.Set(words.Easy, words.Fruits, []string{"Apple", " apple", "Star  Fruit"})
	in.Set(words.Hard, words.Vegetables, []string{"kohlrabi"})

	n, err := Import(ctx, db, in)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if n != 3 {
		t.Fatalf("added = %d, want 3", n)
	}
	n, err = Import(ctx, db, in)
	if err != nil || n != 0 {
		t.Fatalf("re-import added %d, err %v", n, err)
	}

	out, err := Load(ctx, db)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := out[words.Easy][words.Fruits]; !reflect.DeepEqual(got, []string{"apple", "star fruit"}) {
		t.Fatalf("easy fruits = %q", got)
	}
	if got := out[words.Hard][words.Vegetables]; !reflect.DeepEqual(got, []string{"kohlrabi"}) {
		t.Fatalf("hard vegetables = %q", got)
	}

	b := words.NewBank(out, nil)
	if got := b.ResolvePool(words.Extreme, words.Fruits); !reflect.DeepEqual(got, []string{"apple", "star fruit"}) {
		t.Fatalf("extreme fruits fallback = %q", got)
	}
}

func TestLoadSkipsUnknownRows(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	for _, row := range [][3]string{
		{"legendary", "fruits", "durian"},
		{"easy", "mixed", "fig"},
		{"easy", "vegetables", "leek"},
	} {
		if _, err := db.ExecContext(ctx, `INSERT INTO words (tier, category, entry) VALUES (?, ?, ?)`, row[0], row[1], row[2]); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	out, err := Load(ctx, db)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := out[words.Easy][words.Vegetables]; !reflect.DeepEqual(got, []string{"leek"}) {
		t.Fatalf("easy vegetables = %q", got)
	}
	if len(out[words.Easy][words.Fruits]) != 0 {
		t.Fatalf("unexpected fruits: %q", out[words.Easy][words.Fruits])
	}
}

func TestLoadFileSeededFromEmbedded(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "words.db")

	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := Migrate(ctx, db); err != nil {
		t.Fatal(err)
	}
	embedded, err := words.LoadEmbedded()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Import(ctx, db, embedded); err != nil {
		t.Fatal(err)
	}
	_ = db.Close()

	lists, err := LoadFile(ctx, path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	want := words.NewBank(embedded, nil).Stats()
	got := words.NewBank(lists, nil).Stats()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("stats = %v, want %v", got, want)
	}
}
