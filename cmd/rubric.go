package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotcommander/thinkcheck/internal/config"
)

var rubricCmd = &cobra.Command{
	Use:   "rubric",
	Short: "Print the effective rubric as YAML",
	Long: `Prints the rubric documents are graded against: the built-in default, or
the file given with --rubric (or the 'rubric' config key) after schema
validation. The output is a valid rubric file and can be edited and passed
back with --rubric.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runRubric(cmd); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(rubricCmd)
}

func runRubric(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	r, err := loadRubric(cfg)
	if err != nil {
		return err
	}
	data, err := r.Marshal()
	if err != nil {
		return fmt.Errorf("error encoding rubric: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
