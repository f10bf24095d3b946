package store

import (
	"context"
	"errors"
	"testing"

	"github.com/rudreshark/hangman-game-with-gui/internal/game"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := game.New("pear", nil)

	if _, err := st.Get(ctx, s.ID()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get before Save: %v", err)
	}
	if err := st.Save(ctx, s); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := st.Get(ctx, s.ID())
	if err != nil || got != s {
		t.Fatalf("Get = %p, %v", got, err)
	}
	if st.Len() != 1 {
		t.Fatalf("Len = %d", st.Len())
	}
	if err := st.Delete(ctx, s.ID()); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := st.Delete(ctx, "missing"); err != nil {
		t.Fatalf("Delete unknown: %v", err)
	}
	if _, err := st.Get(ctx, s.ID()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after Delete: %v", err)
	}
}
