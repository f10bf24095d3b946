// internal/words/bank.go
//
// WordBank: immutable tiered word lists and pool resolution.
//
// Fallback policy (ResolvePool):
//   - Fruits/Vegetables: the tier's list, else the next lower tier's list for
//     the same category, down to Easy.
//   - Mixed: union of the tier's Fruits and Vegetables, else the union one
//     tier lower, down to Easy.
//   - Everything empty: Easy Fruits ∪ Easy Vegetables, then DefaultWord.
//
// A Bank never returns an empty pool and never reports misconfiguration to
// the player; fallbacks are logged at debug level only.

package words

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/rudreshark/hangman-game-with-gui/internal/pick"
)

// DefaultWord is served when every list, Easy included, is empty.
const DefaultWord = "apple"

// lowerTier is the fallback table: each tier points at the next easier one.
// Easy has no entry and terminates the chain.
var lowerTier = map[Tier]Tier{
	Extreme: Hard,
	Hard:    Medium,
	Medium:  Easy,
}

// Lists holds raw entries per tier and base category (Fruits, Vegetables).
type Lists map[Tier]map[Category][]string

// Set stores entries for (t, c), creating the inner map as needed.
func (l Lists) Set(t Tier, c Category, entries []string) {
	if l[t] == nil {
		l[t] = map[Category][]string{}
	}
	l[t][c] = entries
}

// Bank is read-only after NewBank returns and safe for concurrent use.
type Bank struct {
	lists map[Tier]map[Category][]string
	src   pick.Source
}

// NewBank normalizes every list in lists. Mixed entries in lists are ignored;
// Mixed is always derived. A nil src means crypto/rand.
func NewBank(lists Lists, src pick.Source) *Bank {
	if src == nil {
		src = pick.Crypto()
	}
	b := &Bank{lists: make(map[Tier]map[Category][]string, len(Tiers)), src: src}
	for _, t := range Tiers {
		b.lists[t] = make(map[Category][]string, len(baseCategories))
		for _, c := range baseCategories {
			b.lists[t][c] = Normalize(lists[t][c])
		}
	}
	return b
}

// Default builds a Bank over the embedded lists.
func Default(src pick.Source) (*Bank, error) {
	lists, err := LoadEmbedded()
	if err != nil {
		return nil, err
	}
	return NewBank(lists, src), nil
}

// List returns a copy of the stored list for a base category.
func (b *Bank) List(t Tier, c Category) []string {
	return append([]string(nil), b.lists[t][c]...)
}

// chain returns t followed by every easier tier, ending at Easy.
func chain(t Tier) []Tier {
	out := []Tier{t}
	for {
		next, ok := lowerTier[t]
		if !ok {
			return out
		}
		out = append(out, next)
		t = next
	}
}

// pool computes the unresolved pool for one tier.
func (b *Bank) pool(t Tier, c Category) []string {
	if c == Mixed {
		return lo.Uniq(append(b.List(t, Fruits), b.lists[t][Vegetables]...))
	}
	return b.List(t, c)
}

// ResolvePool returns the candidate words for (t, c) after fallback. The
// result is never empty. Invalid t or c resolve like Easy / Mixed.
func (b *Bank) ResolvePool(t Tier, c Category) []string {
	if !t.IsValid() {
		t = Easy
	}
	if !c.IsValid() {
		c = Mixed
	}
	for _, tier := range chain(t) {
		if p := b.pool(tier, c); len(p) > 0 {
			if tier != t {
				log.Debug().Str("tier", t.Key()).Str("category", c.Key()).
					Str("fallback", tier.Key()).Msg("word pool fell back to easier tier")
			}
			return p
		}
	}
	if p := b.pool(Easy, Mixed); len(p) > 0 {
		log.Debug().Str("tier", t.Key()).Str("category", c.Key()).Msg("word pool fell back to easy mixed")
		return p
	}
	log.Debug().Msg("all word lists empty, using default word")
	return []string{DefaultWord}
}

// ChooseWord draws one entry uniformly from ResolvePool(t, c).
func (b *Bank) ChooseWord(t Tier, c Category) string {
	return pick.One(b.src, b.ResolvePool(t, c))
}

// Stats reports list sizes keyed "tier/category", Mixed included.
func (b *Bank) Stats() map[string]int {
	out := make(map[string]int, len(Tiers)*len(Categories))
	for _, t := range Tiers {
		for _, c := range Categories {
			out[fmt.Sprintf("%s/%s", t.Key(), c.Key())] = len(b.pool(t, c))
		}
	}
	return out
}
