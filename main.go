package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rudreshark/hangman-game-with-gui/internal/config"
	"github.com/rudreshark/hangman-game-with-gui/internal/pick"
	"github.com/rudreshark/hangman-game-with-gui/internal/ui"
	"github.com/rudreshark/hangman-game-with-gui/internal/words"
	"github.com/rudreshark/hangman-game-with-gui/internal/wordsdb"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "hangman",
	Short:         "Hangman: Fruits & Vegetables edition",
	Long:          "Hangman in the terminal (play), over HTTP (serve), and word list tooling (words).",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newPlayCmd(),
		newServeCmd(),
		newWordsCmd(),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}

// bootstrap loads configuration and installs the global logger. With
// quiet set, nothing is logged unless LOG_FILE names a destination, since
// the terminal belongs to the UI.
func bootstrap(quiet bool) (*config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if quiet && cfg.LogFile == "" {
		log.Logger = zerolog.Nop()
		return cfg, func() {}, nil
	}
	logger, cleanup, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		return nil, nil, err
	}
	log.Logger = logger
	return cfg, cleanup, nil
}

// newSource returns a reproducible picker for a non-empty seed and
// crypto/rand otherwise.
func newSource(seed string) pick.Source {
	if seed == "" {
		return pick.Crypto()
	}
	return pick.Seeded(seed)
}

// loadBank builds the word bank from WORDS_DB, WORDS_DIR or the embedded
// lists, in that order of precedence.
func loadBank(ctx context.Context, cfg *config.Config, src pick.Source) (*words.Bank, error) {
	var (
		lists  words.Lists
		err    error
		source string
	)
	switch {
	case cfg.WordsDB != "":
		source = cfg.WordsDB
		lists, err = wordsdb.LoadFile(ctx, cfg.WordsDB)
	case cfg.WordsDir != "":
		source = cfg.WordsDir
		lists, err = words.LoadDir(cfg.WordsDir)
	default:
		source = "embedded"
		lists, err = words.LoadEmbedded()
	}
	if err != nil {
		return nil, fmt.Errorf("load words from %s: %w", source, err)
	}
	bank := words.NewBank(lists, src)
	log.Info().Str("source", source).Interface("lists", bank.Stats()).Msg("word bank loaded")
	return bank, nil
}
