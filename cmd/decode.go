package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/modtriage/internal/config"
	"github.com/dotcommander/modtriage/internal/decode"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <payload.json>",
	Short: "Decode a payload to canonical mod records",
	Long: `Decode detects the payload's wire shape (compact or legacy roster),
normalizes it to canonical mod records, and prints them as JSON. Useful for
inspecting what the evaluator actually sees.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDecode(args[0])
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(payloadPath string) error {
	cfg, err := config.LoadConfig(workflowName)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	raw, err := os.ReadFile(payloadPath)
	if err != nil {
		return fmt.Errorf("reading payload: %w", err)
	}

	if !quiet {
		fmt.Fprintf(os.Stderr, "Detected %s payload shape\n", decode.DetectShape(raw))
	}

	items, err := loadItems(payloadPath, cfg)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
