package main

import (
	"github.com/spf13/cobra"

	"github.com/rudreshark/hangman-game-with-gui/internal/tui"
	"github.com/rudreshark/hangman-game-with-gui/internal/words"
)

func newPlayCmd() *cobra.Command {
	var tier, category, seed string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Long:  "Opens the terminal UI. --tier or --category skip the menus and start a round right away.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := tui.Options{Tier: words.Easy, Category: words.Mixed}
			var err error
			if cmd.Flags().Changed("tier") {
				if opts.Tier, err = words.ParseTier(tier); err != nil {
					return err
				}
				opts.Start = true
			}
			if cmd.Flags().Changed("category") {
				if opts.Category, err = words.ParseCategory(category); err != nil {
					return err
				}
				opts.Start = true
			}

			cfg, cleanup, err := bootstrap(true)
			if err != nil {
				return err
			}
			defer cleanup()

			if seed == "" {
				seed = cfg.Seed
			}
			src := newSource(seed)
			bank, err := loadBank(cmd.Context(), cfg, src)
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), bank, src, cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&tier, "tier", "easy", "difficulty: easy, medium, hard, extreme")
	cmd.Flags().StringVar(&category, "category", "mixed", "category: mixed, fruits, vegetables")
	cmd.Flags().StringVar(&seed, "seed", "", "seed for reproducible words and hints (overrides SEED)")
	return cmd
}
