// internal/pick/pick.go
//
// Random-source capability shared by word selection and hints.
// Responsibilities:
//   - Source: the one method the game needs (uniform index in [0, n)).
//   - One: pick-one-of(sequence) -> element.
//   - Crypto: default source backed by crypto/rand.
//   - Seeded: deterministic HMAC-SHA256 counter stream for reproducible rounds.
//   - Sequence: scripted indices, used by tests.

package pick

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"math/big"
	"sync"
)

// Source yields uniform indices in [0, n). n is always > 0.
type Source interface {
	Intn(n int) int
}

// One returns a uniformly chosen element of items using src.
// items must be non-empty.
func One[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}

type cryptoSource struct{}

// Crypto returns a Source backed by crypto/rand.
func Crypto() Source { return cryptoSource{} }

func (cryptoSource) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}

// seeded derives each draw from HMAC(seed, counter).
type seeded struct {
	mu      sync.Mutex
	key     []byte
	counter uint64
}

// Seeded returns a deterministic Source: the same seed yields the same
// sequence of draws.
func Seeded(seed string) Source {
	return &seeded{key: []byte(seed)}
}

func (s *seeded) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], s.counter)
	s.counter++

	h := hmac.New(sha256.New, s.key)
	h.Write(buf[:])
	sum := h.Sum(nil)
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// sequence replays scripted indices, wrapping around; out-of-range values
// are reduced modulo n.
type sequence struct {
	mu   sync.Mutex
	idx  []int
	next int
}

// Sequence returns a Source that replays idx in order.
func Sequence(idx ...int) Source {
	if len(idx) == 0 {
		idx = []int{0}
	}
	return &sequence{idx: idx}
}

func (s *sequence) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.idx[s.next%len(s.idx)]
	s.next++
	if n <= 0 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
