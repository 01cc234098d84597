package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotcommander/modtriage/internal/config"
	"github.com/dotcommander/modtriage/internal/eval"
	"github.com/dotcommander/modtriage/internal/output"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <payload.json>",
	Short: "Evaluate every mod in a payload against a workflow",
	Long: `Evaluate decodes the payload, runs every mod through the selected
workflow's decision table, and reports a keep/sell/slice/level verdict with
an explanation per mod.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEvaluate(args[0])
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(payloadPath string) error {
	cfg, err := config.LoadConfig(workflowName)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	reg := loadRegistry(cfg)
	if _, err := reg.Get(cfg.Workflow); err != nil {
		return err
	}

	items, err := loadItems(payloadPath, cfg)
	if err != nil {
		return err
	}

	locks, err := loadLocks(cfg)
	if err != nil {
		return err
	}

	summary := eval.New(reg).EvaluateAll(items, cfg.Workflow, eval.Options{
		TempLocked: locks,
		WithScores: cfg.ShowScores,
	})

	outputter := output.NewOutputter(cfg)
	if err := outputter.Format(summary); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	return nil
}
