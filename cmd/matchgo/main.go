// Command matchgo ranks the files under a directory against a typed
// abbreviation and prints the best matches, one per line.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/matchgo"
	"github.com/hupe1980/matchgo/provider"
	"github.com/hupe1980/matchgo/score"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgFile string
		root    string
		limit   int
		allDot  bool
		noDot   bool
		scorer  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:          "matchgo [abbreviation]",
		Short:        "Rank files under a directory against an abbreviation",
		Long:         `matchgo scans a directory (honoring a root .gitignore), scores every file
against the given abbreviation and prints the matches in rank order. With no
abbreviation, all files are listed alphabetically.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgFile)
			if err != nil {
				return err
			}

			// Flags override the config file when set.
			if cmd.Flags().Changed("root") {
				cfg.Root = root
			}
			if cmd.Flags().Changed("limit") {
				cfg.Limit = limit
			}
			if cmd.Flags().Changed("scorer") {
				cfg.Scorer = scorer
			}
			if allDot {
				cfg.AlwaysShowDotFiles = true
			}
			if noDot {
				cfg.NeverShowDotFiles = true
			}

			abbrev := ""
			if len(args) == 1 {
				abbrev = args[0]
			}

			p, err := provider.NewDir(cfg.Root)
			if err != nil {
				return err
			}

			opts := []matchgo.Option{}
			switch cfg.Scorer {
			case "", "path":
				opts = append(opts, matchgo.WithScorer(score.PathScorer{}))
			case "fuzzy":
				opts = append(opts, matchgo.WithScorer(score.FuzzyScorer{}))
			default:
				return fmt.Errorf("unknown scorer %q (want path or fuzzy)", cfg.Scorer)
			}
			if cfg.AlwaysShowDotFiles {
				opts = append(opts, matchgo.WithAlwaysShowDotFiles())
			}
			if cfg.NeverShowDotFiles {
				opts = append(opts, matchgo.WithNeverShowDotFiles())
			}
			if verbose {
				opts = append(opts, matchgo.WithLogLevel(slog.LevelDebug))
			}

			m, err := matchgo.New(p, opts...)
			if err != nil {
				return err
			}

			results, err := m.Rank(cmd.Context(), abbrev, matchgo.WithLimit(cfg.Limit))
			if err != nil {
				return err
			}

			for _, path := range results {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default <user config dir>/matchgo/config.yaml)")
	cmd.Flags().StringVar(&root, "root", ".", "directory to scan")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results (0 = unbounded)")
	cmd.Flags().BoolVar(&allDot, "all-dot-files", false, "always include dot-files")
	cmd.Flags().BoolVar(&noDot, "no-dot-files", false, "never include dot-files")
	cmd.Flags().StringVar(&scorer, "scorer", "path", "scoring algorithm: path or fuzzy")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}
