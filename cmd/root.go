package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	workflowName string
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
	showScores   bool
	minDots      int
	namesFile    string
	lockFile     string
	lockIDs      []string
)

var rootCmd = &cobra.Command{
	Use:   "modtriage [payload.json]",
	Short: "Mod triage - evaluate and score a mod collection against rule workflows",
	Long: `Modtriage decodes a player's equipped-mod payload, classifies every mod
against a named decision-table workflow (keep, sell, slice, or level), and
scores mod quality with synergy-aware point totals.

Given a payload file, the root command runs a full evaluation. Use the
subcommands to score, decode, or inspect workflows.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runEvaluate(args[0])
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&workflowName, "workflow", "w", "", "Workflow to evaluate with (default from config, else 'basic')")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for reports (requires --format)")
	rootCmd.PersistentFlags().BoolVar(&showScores, "show-scores", false, "Attach score breakdowns to every result")
	rootCmd.PersistentFlags().IntVar(&minDots, "min-dots", 1, "Ignore mods below this rarity (1-6)")
	rootCmd.PersistentFlags().StringVar(&namesFile, "names", "", "JSON file mapping character ids to display names")
	rootCmd.PersistentFlags().StringVar(&lockFile, "lock-file", "", "JSON file with an array of temporarily locked mod ids")
	rootCmd.PersistentFlags().StringSliceVar(&lockIDs, "lock", nil, "Mod ids to treat as locked for this run")

	viperBind("workflow", "quiet", "verbose", "format", "output")
	_ = viper.BindPFlag("showScores", rootCmd.PersistentFlags().Lookup("show-scores"))
	_ = viper.BindPFlag("minDots", rootCmd.PersistentFlags().Lookup("min-dots"))
	_ = viper.BindPFlag("namesFile", rootCmd.PersistentFlags().Lookup("names"))
	_ = viper.BindPFlag("lockFile", rootCmd.PersistentFlags().Lookup("lock-file"))
}

func viperBind(names ...string) {
	for _, name := range names {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

func initConfig() {
	configPaths := []string{".modtriagerc.json", ".modtriagerc.yaml", ".modtriagerc.yml"}
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
				os.Exit(1)
			}
			break
		}
	}
}
