// internal/game/session.go
//
// Core rules for a single Hangman round.
// Responsibilities:
//   - Render the secret word (letters hidden until guessed, other characters shown).
//   - Evaluate letter and full-word guesses.
//   - Reveal a random unguessed letter on request.
//   - Track state transitions: in_progress → won/lost.
//
// Notes:
//   - Only letters (unicode.IsLetter) are guessable. Spaces and punctuation in
//     entries like "sweet potato" are always shown and never count.
//   - Refused actions return an Outcome with an Advisory and leave state as is.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/rudreshark/hangman-game-with-gui/internal/pick"
	"github.com/rudreshark/hangman-game-with-gui/internal/words"
)

// Session holds one round. It is safe for concurrent use.
type Session struct {
	mu sync.Mutex

	id      string
	secret  string
	guessed map[rune]struct{}
	wrong   int
	status  Status
	src     pick.Source
}

// New starts a round for word. word is cleaned with words.Clean; src drives
// hint selection and defaults to crypto/rand when nil.
func New(word string, src pick.Source) *Session {
	if src == nil {
		src = pick.Crypto()
	}
	return &Session{
		id:      randomID(),
		secret:  words.Clean(word),
		guessed: make(map[rune]struct{}),
		status:  InProgress,
		src:     src,
	}
}

func (s *Session) ID() string { return s.id }

// Word returns the secret word.
func (s *Session) Word() string { return s.secret }

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Session) WrongAttempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wrong
}

// RenderedWord returns one element per character of the secret word.
func (s *Session) RenderedWord() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rendered()
}

// Display is RenderedWord joined with single spaces.
func (s *Session) Display() string {
	return strings.Join(s.RenderedWord(), " ")
}

// Snapshot returns the current state without acting on it.
func (s *Session) Snapshot() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome("", "")
}

// SubmitGuess evaluates raw as a letter (one character after cleaning) or a
// full-word guess (more than one).
func (s *Session) SubmitGuess(raw string) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.Terminal() {
		return s.advise(SessionTerminated, "The game is over. Start a new game to keep playing.")
	}
	guess := words.Clean(raw)
	if guess == "" {
		return s.advise(EmptyInput, "Please enter a letter or full-word guess.")
	}
	if utf8.RuneCountInString(guess) > 1 {
		return s.guessWord(guess)
	}
	return s.guessLetter([]rune(guess)[0])
}

func (s *Session) guessWord(guess string) Outcome {
	if guess == s.secret {
		for _, r := range s.secret {
			if unicode.IsLetter(r) {
				s.guessed[r] = struct{}{}
			}
		}
		s.status = Won
		return s.outcome("Correct! You solved the word.", "")
	}
	s.miss()
	return s.outcome(s.withLoss(fmt.Sprintf("Wrong word guess! (%d/%d)", s.wrong, MaxAttempts)), "")
}

func (s *Session) guessLetter(r rune) Outcome {
	if !unicode.IsLetter(r) {
		return s.advise(InvalidLetter, "Enter a single alphabet letter or a full-word guess.")
	}
	if _, ok := s.guessed[r]; ok {
		return s.advise(AlreadyGuessed, fmt.Sprintf("You already guessed '%c'.", r))
	}
	s.guessed[r] = struct{}{}

	if !strings.ContainsRune(s.secret, r) {
		s.miss()
		return s.outcome(s.withLoss(fmt.Sprintf("Wrong guess '%c' (%d/%d)", r, s.wrong, MaxAttempts)), "")
	}
	if s.checkWin() {
		return s.outcome("You Won!", "")
	}
	return s.outcome(fmt.Sprintf("Nice! '%c' is in the word.", r), "")
}

// RevealHint adds one uniformly chosen unguessed letter at no cost.
func (s *Session) RevealHint() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := s.unguessed()
	if len(remaining) == 0 {
		return s.advise(NoHintsAvailable, "No letters left to reveal.")
	}
	if s.status.Terminal() {
		return s.advise(SessionTerminated, "The game is over. Start a new game to keep playing.")
	}

	r := pick.One(s.src, remaining)
	s.guessed[r] = struct{}{}
	msg := fmt.Sprintf("Hint: revealed '%c'", r)
	if s.checkWin() {
		msg += ". You Won!"
	}
	return s.outcome(msg, string(r))
}

// unguessed lists distinct unguessed letters of the secret in first-seen order.
func (s *Session) unguessed() []rune {
	letters := lo.Uniq([]rune(s.secret))
	return lo.Filter(letters, func(r rune, _ int) bool {
		if !unicode.IsLetter(r) {
			return false
		}
		_, ok := s.guessed[r]
		return !ok
	})
}

// checkWin moves to Won once every letter of the secret has been guessed.
func (s *Session) checkWin() bool {
	if len(s.unguessed()) == 0 {
		s.status = Won
		return true
	}
	return false
}

func (s *Session) miss() {
	if s.wrong < MaxAttempts {
		s.wrong++
	}
	if s.wrong >= MaxAttempts {
		s.status = Lost
	}
}

func (s *Session) withLoss(msg string) string {
	if s.status == Lost {
		return fmt.Sprintf("%s. You lost! The word was '%s'.", msg, s.secret)
	}
	return msg
}

func (s *Session) rendered() []string {
	out := make([]string, 0, utf8.RuneCountInString(s.secret))
	for _, r := range s.secret {
		if _, ok := s.guessed[r]; ok || !unicode.IsLetter(r) {
			out = append(out, string(r))
			continue
		}
		out = append(out, Blank)
	}
	return out
}

func (s *Session) guessedSorted() []string {
	out := lo.Map(lo.Keys(s.guessed), func(r rune, _ int) string { return string(r) })
	sort.Strings(out)
	return out
}

func (s *Session) advise(a Advisory, msg string) Outcome {
	o := s.outcome(msg, "")
	o.Advisory = a
	return o
}

func (s *Session) outcome(msg, hint string) Outcome {
	letters := s.rendered()
	o := Outcome{
		Word:          strings.Join(letters, " "),
		Letters:       letters,
		Guessed:       s.guessedSorted(),
		WrongAttempts: s.wrong,
		MaxAttempts:   MaxAttempts,
		Status:        s.status,
		Message:       msg,
		Hint:          hint,
	}
	if s.status.Terminal() {
		o.Answer = s.secret
	}
	return o
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
