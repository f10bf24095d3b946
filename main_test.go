package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/rudreshark/hangman-game-with-gui/internal/config"
	"github.com/rudreshark/hangman-game-with-gui/internal/pick"
	"github.com/rudreshark/hangman-game-with-gui/internal/words"
)

func writeList(t *testing.T, dir string, tier words.Tier, c words.Category, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, words.FileName(tier, c)), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadBankPrefersDatabase(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "words.db")
	n, err := importWords(ctx, dbPath, "")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n == 0 {
		t.Fatal("expected embedded entries to be imported")
	}

	dir := t.TempDir()
	writeList(t, dir, words.Easy, words.Fruits, "durian\n")

	bank, err := loadBank(ctx, &config.Config{WordsDB: dbPath, WordsDir: dir}, pick.Sequence(0))
	if err != nil {
		t.Fatal(err)
	}
	embedded, err := words.Default(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(bank.Stats(), embedded.Stats()) {
		t.Fatalf("db bank stats = %v, want %v", bank.Stats(), embedded.Stats())
	}
}

func TestLoadBankFromDir(t *testing.T) {
	dir := t.TempDir()
	writeList(t, dir, words.Easy, words.Fruits, "Mango\n# comment\n\n mango \n")

	bank, err := loadBank(context.Background(), &config.Config{WordsDir: dir}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := bank.ResolvePool(words.Extreme, words.Fruits); !reflect.DeepEqual(got, []string{"mango"}) {
		t.Fatalf("pool = %v", got)
	}
}

func TestLoadBankMissingDir(t *testing.T) {
	_, err := loadBank(context.Background(), &config.Config{WordsDir: filepath.Join(t.TempDir(), "nope")}, nil)
	if err == nil {
		t.Fatal("expected error for missing WORDS_DIR")
	}
}

func TestWordsListCommand(t *testing.T) {
	dir := t.TempDir()
	writeList(t, dir, words.Easy, words.Fruits, "mango\n")
	t.Chdir(t.TempDir())
	t.Setenv("WORDS_DIR", dir)
	t.Setenv("WORDS_DB", "")
	t.Setenv("LOG_FILE", "")

	var out bytes.Buffer
	cmd := newWordsCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"list", "--tier", "hard", "--category", "fruits"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Hard / Fruits", "fallback", "mango", "1 entries"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestWordsListRejectsUnknownTier(t *testing.T) {
	cmd := newWordsCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"list", "--tier", "impossible"})
	if err := cmd.Execute(); err == nil || !strings.Contains(err.Error(), "impossible") {
		t.Fatalf("err = %v", err)
	}
}

func TestNewSource(t *testing.T) {
	a, b := newSource("42"), newSource("42")
	for i := 0; i < 5; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatal("seeded sources diverged")
		}
	}
	if newSource("") == nil {
		t.Fatal("empty seed should still yield a source")
	}
}
