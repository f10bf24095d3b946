// internal/game/types.go
//
// Value types for a Hangman round.
// Defines:
//   - Status: in_progress → won | lost.
//   - Advisory: why an action was refused without changing state.
//   - Outcome: everything a presentation layer needs after an action.

package game

// MaxAttempts is the number of wrong guesses that loses a round. It is also
// the number of gallows stages a presentation layer draws.
const MaxAttempts = 6

// Blank marks an unrevealed letter in the rendered word.
const Blank = "_"

// Status is the round state. Won and Lost are terminal.
type Status string

const (
	InProgress Status = "in_progress"
	Won        Status = "won"
	Lost       Status = "lost"
)

// Terminal reports whether no further guesses or hints are accepted.
func (s Status) Terminal() bool { return s == Won || s == Lost }

// Advisory names a refused action. The zero value means the action applied.
type Advisory string

const (
	EmptyInput        Advisory = "empty_input"
	InvalidLetter     Advisory = "invalid_letter"
	AlreadyGuessed    Advisory = "already_guessed"
	SessionTerminated Advisory = "session_terminated"
	NoHintsAvailable  Advisory = "no_hints_available"
)

// Outcome is the result of a guess or hint, or a plain snapshot.
type Outcome struct {
	Word          string   `json:"word"`    // rendered, space separated: "a _ _ _ _"
	Letters       []string `json:"letters"` // rendered, one element per character
	Guessed       []string `json:"guessed"` // ascending
	WrongAttempts int      `json:"wrongAttempts"`
	MaxAttempts   int      `json:"maxAttempts"`
	Status        Status   `json:"status"`
	Message       string   `json:"message"`
	Advisory      Advisory `json:"advisory,omitempty"`
	Hint          string   `json:"hint,omitempty"`   // letter revealed by RevealHint
	Answer        string   `json:"answer,omitempty"` // set once the round is over
}

// Applied reports whether the action changed the session.
func (o Outcome) Applied() bool { return o.Advisory == "" }
