package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dotcommander/modtriage/internal/config"
	"github.com/dotcommander/modtriage/internal/workflow"
)

var workflowsCmd = &cobra.Command{
	Use:   "workflows",
	Short: "List available workflows",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWorkflows()
	},
}

var workflowsValidateCmd = &cobra.Command{
	Use:   "validate <workflow.yaml>...",
	Short: "Validate workflow files",
	Long: `Validate checks workflow files against the table schema and the
structural invariants the evaluator relies on: all rarity buckets and tiers
present, a level_1 bracket everywhere, and every check list terminated by a
default check.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWorkflowsValidate(args)
	},
}

func init() {
	workflowsCmd.AddCommand(workflowsValidateCmd)
	rootCmd.AddCommand(workflowsCmd)
}

func runWorkflows() error {
	cfg, err := config.LoadConfig(workflowName)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	reg := loadRegistry(cfg)
	keyStyle := lipgloss.NewStyle().Bold(true)
	for _, w := range reg.List() {
		marker := " "
		if w.Key == cfg.Workflow {
			marker = "*"
		}
		fmt.Printf("%s %s  %s\n", marker, keyStyle.Render(w.Key), w.Name)
		if verbose && w.Description != "" {
			fmt.Printf("    %s\n", w.Description)
		}
	}
	return nil
}

func runWorkflowsValidate(paths []string) error {
	failed := 0
	for _, path := range paths {
		w, err := workflow.LoadFile(path)
		if err != nil {
			fmt.Printf("✗ %s\n    %v\n", path, err)
			failed++
			continue
		}
		issues := w.Validate()
		if len(issues) == 0 {
			fmt.Printf("✓ %s\n", path)
			continue
		}
		status := "✓"
		if workflow.HasErrors(issues) {
			status = "✗"
			failed++
		}
		fmt.Printf("%s %s\n", status, path)
		for _, issue := range issues {
			fmt.Printf("    %s\n", issue)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d workflow file(s) failed validation", failed)
	}
	return nil
}
