package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/thinkcheck/internal/batch"
	"github.com/dotcommander/thinkcheck/internal/config"
	"github.com/dotcommander/thinkcheck/internal/discovery"
	"github.com/dotcommander/thinkcheck/internal/logging"
	"github.com/dotcommander/thinkcheck/internal/outputters"
	"github.com/dotcommander/thinkcheck/internal/rubric"
	"github.com/dotcommander/thinkcheck/internal/scoring"
)

// exitFunc is swapped out in tests.
var exitFunc = os.Exit

var rootCmd = &cobra.Command{
	Use:   "thinkcheck [files...]",
	Short: "Grade extracted thinking-model documents",
	Long: `thinkcheck scores Lisp-style thinking-model documents against a rubric.

Each document gets a 0-100 score, an A-F grade, metrics, issues and
suggestions. Arguments may be files, directories, doublestar globs such as
'out/**/*.lisp', or '-' for standard input. When more than one document is
checked a batch summary follows the individual reports.`,
	Example: `  thinkcheck out/extracted.lisp
  thinkcheck out/extracted.lisp --format json
  thinkcheck 'out/**/*.lisp' --min-score 70`,
	Args:              cobra.MinimumNArgs(1),
	PersistentPreRunE: bindFlags,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCheck(cmd, args); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

// Execute runs the root command with a context cancelled on interrupt.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		exitFunc(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("format", "f", "console", "Output format for reports (console|json|markdown)")
	flags.StringP("output", "o", "", "Write the report to a file instead of stdout")
	flags.BoolP("quiet", "q", false, "Print one line per file")
	flags.BoolP("verbose", "v", false, "Show which analyzer raised each issue")
	flags.Bool("no-color", false, "Disable colored output")
	flags.Int("min-score", 0, "Flag files scoring below this threshold")
	flags.String("rubric", "", "Rubric file (YAML or JSON) replacing the built-in rubric")
	flags.Int("concurrency", 4, "Number of files scored in parallel")
	flags.String("log-level", "warn", "Diagnostic log level (debug|info|warn|error|disabled)")
	flags.String("log-format", "console", "Diagnostic log format (console|json)")

	rootCmd.SilenceUsage = true
}

// flagKeys maps flag names to their configuration keys.
var flagKeys = [][2]string{
	{"format", "format"},
	{"output", "output"},
	{"quiet", "quiet"},
	{"verbose", "verbose"},
	{"no-color", "noColor"},
	{"min-score", "minScore"},
	{"rubric", "rubric"},
	{"concurrency", "concurrency"},
	{"log-level", "log.level"},
	{"log-format", "log.format"},
}

func bindFlags(cmd *cobra.Command, _ []string) error {
	for _, fk := range flagKeys {
		if err := viper.BindPFlag(fk[1], cmd.Flags().Lookup(fk[0])); err != nil {
			return fmt.Errorf("binding flag %s: %w", fk[0], err)
		}
	}
	return nil
}

// loadRubric returns the built-in rubric or the one named by the config.
func loadRubric(cfg *config.Config) (*rubric.Rubric, error) {
	loader, err := rubric.NewLoader()
	if err != nil {
		return nil, err
	}
	r, err := loader.Load(cfg.Rubric)
	if err != nil {
		return nil, fmt.Errorf("error loading rubric: %w", err)
	}
	return r, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	log := logging.New(cfg.Log, cmd.ErrOrStderr())

	r, err := loadRubric(cfg)
	if err != nil {
		return err
	}

	found, err := discovery.NewFileDiscovery().Expand(args)
	if err != nil {
		return fmt.Errorf("error expanding inputs: %w", err)
	}
	for _, pattern := range found.Unmatched {
		log.Warn().Str("pattern", pattern).Msg("no files matched")
	}
	if len(found.Files) == 0 {
		return errors.New("no input files")
	}

	scorer := scoring.NewScorer(r, scoring.WithLogger(log))
	runner := batch.NewRunner(scorer, cfg.Concurrency, cmd.InOrStdin(), log)
	results, err := runner.Run(cmd.Context(), found.Files)
	if err != nil {
		return err
	}

	log.Info().
		Int("files", len(results)).
		Int("below_threshold", len(batch.BelowThreshold(results, cfg.MinScore))).
		Msg("check complete")

	out := outputters.NewOutputter(cfg, Version)
	out.SetWriter(cmd.OutOrStdout())
	return out.Format(results)
}
