package words

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rudreshark/hangman-game-with-gui/internal/pick"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"case and whitespace dedupe", []string{"Apple", " apple ", "APPLE"}, []string{"apple"}},
		{"collapse internal runs", []string{"  Sweet \t  Potato ", "sweet potato"}, []string{"sweet potato"}},
		{"first seen order", []string{"pear", "Fig", "PEAR", "fig", "kiwi"}, []string{"pear", "fig", "kiwi"}},
		{"blanks dropped", []string{"", "   ", "plum"}, []string{"plum"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := Normalize(got); !reflect.DeepEqual(again, got) {
				t.Fatalf("Normalize not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestParseTierAndCategory(t *testing.T) {
	if tier, err := ParseTier("  EXTREME "); err != nil || tier != Extreme {
		t.Fatalf("ParseTier = %v, %v", tier, err)
	}
	if _, err := ParseTier("impossible"); !errors.Is(err, ErrUnknownTier) {
		t.Fatalf("ParseTier(impossible) err = %v", err)
	}
	if c, err := ParseCategory("vegetables"); err != nil || c != Vegetables {
		t.Fatalf("ParseCategory = %v, %v", c, err)
	}
	if _, err := ParseCategory("nuts"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("ParseCategory(nuts) err = %v", err)
	}
}

func fixtureLists() Lists {
	l := Lists{}
	l.Set(Easy, Fruits, []string{"apple", "pear"})
	l.Set(Easy, Vegetables, []string{"onion"})
	l.Set(Medium, Fruits, nil)
	l.Set(Medium, Vegetables, []string{"cabbage"})
	l.Set(Hard, Fruits, nil)
	l.Set(Hard, Vegetables, nil)
	l.Set(Extreme, Fruits, []string{"Jamun"})
	l.Set(Extreme, Vegetables, nil)
	return l
}

func TestResolvePoolFallback(t *testing.T) {
	b := NewBank(fixtureLists(), pick.Sequence(0))

	tests := []struct {
		tier Tier
		cat  Category
		want []string
	}{
		{Medium, Fruits, []string{"apple", "pear"}},
		{Medium, Vegetables, []string{"cabbage"}},
		{Medium, Mixed, []string{"cabbage"}},
		{Hard, Fruits, []string{"apple", "pear"}},
		{Hard, Vegetables, []string{"cabbage"}},
		{Hard, Mixed, []string{"cabbage"}},
		{Extreme, Fruits, []string{"jamun"}},
		{Extreme, Vegetables, []string{"cabbage"}},
		{Extreme, Mixed, []string{"jamun"}},
		{Easy, Mixed, []string{"apple", "pear", "onion"}},
	}
	for _, tt := range tests {
		t.Run(tt.tier.Key()+"/"+tt.cat.Key(), func(t *testing.T) {
			if got := b.ResolvePool(tt.tier, tt.cat); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ResolvePool = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolvePoolNeverEmpty(t *testing.T) {
	cases := map[string]Lists{
		"nil lists":   nil,
		"blank lists": {Easy: {Fruits: {"  "}, Vegetables: {""}}},
		"embedded":    mustEmbedded(t),
	}
	for name, lists := range cases {
		b := NewBank(lists, nil)
		for _, tier := range Tiers {
			for _, c := range Categories {
				if p := b.ResolvePool(tier, c); len(p) == 0 {
					t.Fatalf("%s: ResolvePool(%v, %v) empty", name, tier, c)
				}
			}
		}
	}

	b := NewBank(nil, nil)
	if got := b.ResolvePool(Extreme, Fruits); !reflect.DeepEqual(got, []string{DefaultWord}) {
		t.Fatalf("all-empty pool = %q, want default", got)
	}
}

func TestChooseWordIsPoolMember(t *testing.T) {
	b := NewBank(mustEmbedded(t), pick.Seeded("members"))
	for _, tier := range Tiers {
		for _, c := range Categories {
			pool := b.ResolvePool(tier, c)
			for i := 0; i < 20; i++ {
				w := b.ChooseWord(tier, c)
				found := false
				for _, p := range pool {
					if p == w {
						found = true
						break
					}
				}
				if !found {
					t.Fatalf("ChooseWord(%v, %v) = %q not in pool %q", tier, c, w, pool)
				}
			}
		}
	}
}

func TestChooseWordUsesSource(t *testing.T) {
	b := NewBank(fixtureLists(), pick.Sequence(1, 0))
	if got := b.ChooseWord(Easy, Fruits); got != "pear" {
		t.Fatalf("first draw = %q, want pear", got)
	}
	if got := b.ChooseWord(Easy, Fruits); got != "apple" {
		t.Fatalf("second draw = %q, want apple", got)
	}
}

func TestEmbeddedListsAreNormalizedAndNonEmptyAtEasy(t *testing.T) {
	b := NewBank(mustEmbedded(t), nil)
	if len(b.List(Easy, Fruits)) == 0 || len(b.List(Easy, Vegetables)) == 0 {
		t.Fatal("easy lists must be non-empty")
	}
	found := false
	for _, w := range b.List(Easy, Vegetables) {
		if w == "sweet potato" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected multi-word entry \"sweet potato\" in easy vegetables")
	}
	if got := b.Stats()["easy/mixed"]; got != len(b.ResolvePool(Easy, Mixed)) {
		t.Fatalf("Stats easy/mixed = %d", got)
	}
}

func TestLoadDirMissingFilesAreEmpty(t *testing.T) {
	dir := t.TempDir()
	content := "# comment\nPlum\n\n  Fig \n"
	if err := os.WriteFile(filepath.Join(dir, FileName(Hard, Fruits)), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	lists, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	b := NewBank(lists, nil)
	if got := b.List(Hard, Fruits); !reflect.DeepEqual(got, []string{"plum", "fig"}) {
		t.Fatalf("hard fruits = %q", got)
	}
	if got := b.List(Easy, Fruits); len(got) != 0 {
		t.Fatalf("easy fruits = %q, want empty", got)
	}
	if got := b.ResolvePool(Extreme, Fruits); !reflect.DeepEqual(got, []string{"plum", "fig"}) {
		t.Fatalf("extreme fruits fallback = %q", got)
	}

	if _, err := LoadDir(filepath.Join(dir, "missing")); err == nil {
		t.Fatal("LoadDir on missing dir should fail")
	}
}

func mustEmbedded(t *testing.T) Lists {
	t.Helper()
	l, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	return l
}
