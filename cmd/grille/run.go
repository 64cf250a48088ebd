package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/grille/grid"
	"github.com/katalvlaran/grille/score"
	"github.com/katalvlaran/grille/search"
	"github.com/katalvlaran/grille/settings"
	"github.com/katalvlaran/grille/synth"
)

// runGrille validates input, picks a seed, and prints the grille.
func runGrille(cmd *cobra.Command, opts *cliOptions) error {
	logger := opts.logger

	if err := synth.ValidateOrder(opts.order); err != nil {
		return paramsErr(err)
	}
	seedGiven := cmd.Flags().Changed("seed")
	if seedGiven {
		if err := synth.ValidateSeed(opts.seed); err != nil {
			return paramsErr(err)
		}
	}

	cfg, err := loadSettings(opts)
	if err != nil {
		return settingsErr(err)
	}
	logger.Debug("settings resolved",
		zap.Int("attempts", cfg.Attempts),
		zap.Stringer("design", cfg.Design),
		zap.Bool("shaded", cfg.Shaded))

	seed := opts.seed
	if !seedGiven {
		res, err := search.Search(opts.order, cfg.Attempts, search.WithLogger(logger))
		if errors.Is(err, search.ErrNoAttempts) {
			return paramsErr(fmt.Errorf("no seed given and attempts is 0: %w", err))
		}
		if err != nil {
			return err
		}
		seed = res.Seed
	}

	g, err := synth.Synthesize(opts.order, seed)
	if err != nil {
		return paramsErr(err)
	}
	s := score.Evaluate(g)
	logger.Info("grille generated",
		zap.Int("order", opts.order),
		zap.Int64("seed", seed),
		zap.Int("score", s.Total()),
		zap.Int("adjacency", s.Adjacency),
		zap.Int("balance", s.Balance),
		zap.Int("connectivity", s.Connectivity),
		zap.String("image", imagePath(cfg, opts.filename, opts.order, seed)))

	return printGrille(cmd.OutOrStdout(), g, seed, s.Total(), cfg)
}

// loadSettings resolves defaults, the optional settings file and overrides.
func loadSettings(opts *cliOptions) (settings.Settings, error) {
	cfg := settings.Default()
	if opts.settingsPath != "" {
		var err error
		if cfg, err = settings.Load(opts.settingsPath); err != nil {
			return settings.Settings{}, err
		}
	}
	return cfg.Apply(opts.overrides...)
}

// imagePath resolves the image file against the output directory. An empty
// filename falls back to the settings-derived name.
func imagePath(cfg settings.Settings, filename string, order int, seed int64) string {
	if filename == "" {
		filename = cfg.ImageName(order, seed)
	}
	return filepath.Join(cfg.OutputDir, filename)
}

// title formats the grille caption: revision letter, 10-digit seed, score.
func title(seed int64, total int) string {
	return fmt.Sprintf("%c %010d (%d)", rune('A'+revision-1), seed, total)
}

// markRune picks the character used for marked cells.
func markRune(cfg settings.Settings) rune {
	switch {
	case cfg.Design == settings.Square && cfg.Shaded:
		return '▒'
	case cfg.Design == settings.Square:
		return grid.Mark
	case cfg.Shaded:
		return '●'
	default:
		return 'o'
	}
}

func printGrille(w io.Writer, g *grid.Grid, seed int64, total int, cfg settings.Settings) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n", title(seed, total), g.Format(markRune(cfg)))
	return err
}
