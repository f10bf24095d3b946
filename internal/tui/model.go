package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/rudreshark/hangman-game-with-gui/internal/game"
	"github.com/rudreshark/hangman-game-with-gui/internal/pick"
	"github.com/rudreshark/hangman-game-with-gui/internal/ui"
	"github.com/rudreshark/hangman-game-with-gui/internal/words"
)

type screen int

const (
	screenMenu screen = iota
	screenInstructions
	screenCredits
	screenTier
	screenCategory
	screenGame
	screenPaused
	screenOver
)

const maxInput = 40

var (
	menuItems  = []string{"Start Game", "Instructions", "Credits", "Exit"}
	pauseItems = []string{"Resume", "Main Menu"}
	overItems  = []string{"Play Again (same settings)", "Change Category/Difficulty", "Main Menu"}
)

const instructions = `Choose a difficulty and a category (Fruits, Vegetables or Mixed).
Guess one letter at a time, or type the whole word.
You have 6 wrong attempts: head, body, arms, legs.
Multi-word answers show their spaces; you never guess them.
Press Tab to reveal one unguessed letter.
Press Enter to submit a guess. Press Esc to pause.`

type model struct {
	bank *words.Bank
	src  pick.Source

	screen screen
	cursor int

	tier     words.Tier
	category words.Category

	sess  *game.Session
	last  game.Outcome
	input []rune

	width int
}

func newModel(bank *words.Bank, src pick.Source, opts Options) model {
	m := model{bank: bank, src: src, tier: opts.Tier, category: opts.Category}
	if !m.tier.IsValid() {
		m.tier = words.Easy
	}
	if !m.category.IsValid() {
		m.category = words.Mixed
	}
	if opts.Start {
		m = m.startRound()
	}
	return m
}

func (m model) Init() tea.Cmd { return nil }

// startRound draws a word for the current settings and shows the game screen.
func (m model) startRound() model {
	m.sess = game.New(m.bank.ChooseWord(m.tier, m.category), m.src)
	m.last = m.sess.Snapshot()
	m.last.Message = "Guess a letter or the whole word."
	m.input = nil
	m.screen = screenGame
	log.Debug().Str("gameId", m.sess.ID()).Str("tier", m.tier.Key()).
		Str("category", m.category.Key()).Msg("new round")
	return m
}

func (m model) goTo(s screen) model {
	m.screen = s
	m.cursor = 0
	switch s {
	case screenTier:
		m.cursor = indexOf(words.Tiers, m.tier)
	case screenCategory:
		m.cursor = indexOf(words.Categories, m.category)
	case screenMenu:
		m.sess = nil
	}
	return m
}

func indexOf[T comparable](items []T, v T) int {
	for i, it := range items {
		if it == v {
			return i
		}
	}
	return 0
}

// navigate moves the cursor over n items and reports whether one was picked.
func (m *model) navigate(key tea.KeyMsg, n int) bool {
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < n-1 {
			m.cursor++
		}
	case "enter", " ":
		return true
	}
	return false
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.screen {
		case screenMenu:
			return m.updateMenu(msg)
		case screenInstructions, screenCredits:
			switch msg.String() {
			case "esc", "enter", "backspace", "q":
				return m.goTo(screenMenu), nil
			}
		case screenTier:
			return m.updateTier(msg)
		case screenCategory:
			return m.updateCategory(msg)
		case screenGame:
			return m.updateGame(msg), nil
		case screenPaused:
			return m.updatePaused(msg), nil
		case screenOver:
			return m.updateOver(msg)
		}
	}
	return m, nil
}

func (m model) updateMenu(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.String() == "q" {
		return m, tea.Quit
	}
	if !m.navigate(key, len(menuItems)) {
		return m, nil
	}
	switch m.cursor {
	case 0:
		return m.goTo(screenTier), nil
	case 1:
		return m.goTo(screenInstructions), nil
	case 2:
		return m.goTo(screenCredits), nil
	default:
		return m, tea.Quit
	}
}

func (m model) updateTier(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc", "backspace":
		return m.goTo(screenMenu), nil
	}
	if m.navigate(key, len(words.Tiers)) {
		m.tier = words.Tiers[m.cursor]
		return m.goTo(screenCategory), nil
	}
	return m, nil
}

func (m model) updateCategory(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc", "backspace":
		return m.goTo(screenTier), nil
	}
	if m.navigate(key, len(words.Categories)) {
		m.category = words.Categories[m.cursor]
		return m.startRound(), nil
	}
	return m, nil
}

func (m model) updateGame(key tea.KeyMsg) model {
	switch key.Type {
	case tea.KeyEsc:
		m.screen = screenPaused
		m.cursor = 0
	case tea.KeyEnter:
		m = m.apply(m.sess.SubmitGuess(string(m.input)))
		m.input = nil
	case tea.KeyTab:
		m = m.apply(m.sess.RevealHint())
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input = appendInput(m.input, ' ')
	case tea.KeyRunes:
		m.input = appendInput(m.input, key.Runes...)
	}
	return m
}

func appendInput(in []rune, rs ...rune) []rune {
	if len(in)+len(rs) > maxInput {
		return in
	}
	return append(in, rs...)
}

func (m model) apply(o game.Outcome) model {
	m.last = o
	ev := log.Debug().Str("gameId", m.sess.ID()).Str("status", string(o.Status))
	if !o.Applied() {
		ev = ev.Str("advisory", string(o.Advisory))
	}
	ev.Msg("game action")
	if o.Status.Terminal() {
		m.screen = screenOver
		m.cursor = 0
	}
	return m
}

func (m model) updatePaused(key tea.KeyMsg) model {
	if key.Type == tea.KeyEsc {
		m.screen = screenGame
		return m
	}
	if !m.navigate(key, len(pauseItems)) {
		return m
	}
	if m.cursor == 0 {
		m.screen = screenGame
		return m
	}
	return m.goTo(screenMenu)
}

func (m model) updateOver(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.String() == "q" {
		return m, tea.Quit
	}
	if !m.navigate(key, len(overItems)) {
		return m, nil
	}
	switch m.cursor {
	case 0:
		return m.startRound(), nil
	case 1:
		return m.goTo(screenTier), nil
	default:
		return m.goTo(screenMenu), nil
	}
}

// ---------------------------------------------------------------- view

func (m model) View() string {
	var b strings.Builder
	switch m.screen {
	case screenMenu:
		b.WriteString(ui.Heading(ui.IconRope, "HANGMAN") + "\n")
		b.WriteString(ui.Muted.Render("Fruits & Vegetables Edition") + "\n\n")
		b.WriteString(list(menuItems, m.cursor))
		b.WriteString("\n" + ui.Muted.Render("Tip: press Esc to pause during the game."))
	case screenInstructions:
		b.WriteString(ui.Heading(ui.IconBook, "Instructions") + "\n\n")
		b.WriteString(ui.Panel.Render(instructions))
		b.WriteString("\n" + help("enter back to menu"))
	case screenCredits:
		b.WriteString(ui.Heading(ui.IconInfo, "Credits") + "\n\n")
		b.WriteString(ui.Panel.Render("Hangman Game With GUI\nTerminal edition"))
		b.WriteString("\n" + help("enter back to menu"))
	case screenTier:
		b.WriteString(ui.H2.Render("Select Difficulty") + "\n\n")
		b.WriteString(list(names(words.Tiers), m.cursor))
		b.WriteString(help("↑/↓ choose · enter next · esc back"))
	case screenCategory:
		b.WriteString(ui.H2.Render("Select Category") + "\n\n")
		b.WriteString(list(names(words.Categories), m.cursor))
		b.WriteString(help("↑/↓ choose · enter start · esc back"))
	case screenGame:
		b.WriteString(m.viewGame())
	case screenPaused:
		b.WriteString(ui.Heading(ui.IconPause, "PAUSED") + "\n\n")
		b.WriteString(list(pauseItems, m.cursor))
		b.WriteString(help("esc resume"))
	case screenOver:
		b.WriteString(m.viewOver())
	}
	return b.String() + "\n"
}

func (m model) viewGame() string {
	o := m.last
	header := ui.Heading(ui.IconRope, "Hangman") + "  " +
		ui.Muted.Render(fmt.Sprintf("%s | %s", m.tier, m.category))

	guessed := "-"
	if len(o.Guessed) > 0 {
		guessed = strings.Join(o.Guessed, ", ")
	}
	info := strings.Join([]string{
		ui.WordDisplay.Render(o.Word),
		ui.LabelValue("Guessed", guessed),
		ui.LabelValue("Attempts", ui.Attempts(o.WrongAttempts, o.MaxAttempts)),
		"",
		message(o),
	}, "\n")

	board := lipgloss.JoinHorizontal(lipgloss.Top,
		ui.Panel.Render(ui.Gallows.Render(gallows(o.WrongAttempts))),
		"  ",
		info,
	)

	prompt := ui.Key.Render("> ") + string(m.input) + ui.Muted.Render("█")
	return strings.Join([]string{
		header, "", board, "", "Enter letter or full word:", prompt,
		help("enter guess · tab reveal 1 letter · esc pause"),
	}, "\n")
}

func (m model) viewOver() string {
	title := ui.Good.Render(ui.IconTrophy + " You Won!")
	if m.last.Status == game.Lost {
		title = ui.Bad.Render(ui.IconSkull + " You Lost")
	}
	return strings.Join([]string{
		title,
		"",
		ui.Panel.Render(ui.Gallows.Render(gallows(m.last.WrongAttempts))),
		ui.LabelValue("The word was", ui.Gold.Render(m.last.Answer)),
		"",
		list(overItems, m.cursor),
	}, "\n")
}

func message(o game.Outcome) string {
	switch {
	case o.Message == "":
		return ""
	case !o.Applied():
		return ui.Warn.Render(o.Message)
	case o.Hint != "":
		return ui.Gold.Render(ui.IconBulb + " " + o.Message)
	case o.Status == game.Lost:
		return ui.Bad.Render(o.Message)
	default:
		return o.Message
	}
}

func list(items []string, cursor int) string {
	var b strings.Builder
	for i, it := range items {
		if i == cursor {
			b.WriteString(ui.Selected.Render("› "+it) + "\n")
			continue
		}
		b.WriteString("  " + it + "\n")
	}
	return b.String()
}

func names[T fmt.Stringer](items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.String()
	}
	return out
}

func help(s string) string { return "\n" + ui.Muted.Render(s) }
