package main

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rudreshark/hangman-game-with-gui/internal/ui"
	"github.com/rudreshark/hangman-game-with-gui/internal/words"
	"github.com/rudreshark/hangman-game-with-gui/internal/wordsdb"
)

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Inspect and import word lists",
	}
	cmd.AddCommand(newWordsListCmd(), newWordsStatsCmd(), newWordsImportCmd())
	return cmd
}

func newWordsListCmd() *cobra.Command {
	var tier, category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the pool a round would draw from, after fallback",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := words.ParseTier(tier)
			if err != nil {
				return err
			}
			c, err := words.ParseCategory(category)
			if err != nil {
				return err
			}
			cfg, cleanup, err := bootstrap(true)
			if err != nil {
				return err
			}
			defer cleanup()
			bank, err := loadBank(cmd.Context(), cfg, nil)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			pool := bank.ResolvePool(t, c)
			fmt.Fprintln(out, ui.Heading(ui.IconBook, fmt.Sprintf("%s / %s", t, c)))
			if len(bank.List(t, words.Fruits))+len(bank.List(t, words.Vegetables)) == 0 {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" empty, showing fallback pool"))
			}
			for _, w := range pool {
				fmt.Fprintln(out, "  "+w)
			}
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%d entries", len(pool))))
			return nil
		},
	}

	cmd.Flags().StringVar(&tier, "tier", "easy", "difficulty: easy, medium, hard, extreme")
	cmd.Flags().StringVar(&category, "category", "mixed", "category: mixed, fruits, vegetables")
	return cmd
}

func newWordsStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print list sizes per tier and category",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cleanup, err := bootstrap(true)
			if err != nil {
				return err
			}
			defer cleanup()
			bank, err := loadBank(cmd.Context(), cfg, nil)
			if err != nil {
				return err
			}

			stats := bank.Stats()
			keys := make([]string, 0, len(stats))
			for k := range stats {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue(k, stats[k]))
			}
			return nil
		},
	}
}

func newWordsImportCmd() *cobra.Command {
	var dbPath, dir string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Seed a SQLite word database from the embedded lists or a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				return errors.New("--db is required")
			}
			n, err := importWords(cmd.Context(), dbPath, dir)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("imported %d new entries into %s", n, dbPath)))
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite file to create or update")
	cmd.Flags().StringVar(&dir, "dir", "", "directory of <tier>_<category>.txt files (default: embedded lists)")
	return cmd
}

func importWords(ctx context.Context, dbPath, dir string) (int, error) {
	var (
		lists words.Lists
		err   error
	)
	if dir != "" {
		lists, err = words.LoadDir(dir)
	} else {
		lists, err = words.LoadEmbedded()
	}
	if err != nil {
		return 0, err
	}

	db, err := wordsdb.Open(dbPath)
	if err != nil {
		return 0, err
	}
	defer db.Close()
	if err := wordsdb.Migrate(ctx, db); err != nil {
		return 0, err
	}
	return wordsdb.Import(ctx, db, lists)
}
