package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dotcommander/modtriage/internal/config"
	"github.com/dotcommander/modtriage/internal/scoring"
	"github.com/dotcommander/modtriage/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score <payload.json>",
	Short: "Score every mod in a payload",
	Long: `Score computes the workflow-independent quality score for every mod:
base points from secondary stat values plus synergy bonuses from set, slot,
and stat combinations. Mods print highest score first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScore(args[0])
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

type scoredItem struct {
	Item  types.Item         `json:"item"`
	Score *types.ScoreResult `json:"score"`
}

func runScore(payloadPath string) error {
	cfg, err := config.LoadConfig(workflowName)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	items, err := loadItems(payloadPath, cfg)
	if err != nil {
		return err
	}

	scored := make([]scoredItem, 0, len(items))
	for i := range items {
		scored = append(scored, scoredItem{
			Item:  items[i],
			Score: scoring.Score(&items[i]),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score.TotalScore > scored[j].Score.TotalScore
	})

	if cfg.Format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(scored)
	}

	for _, s := range scored {
		fmt.Printf("%5d  %s %s (%d• %s, level %d)  base %.0f + synergy %.0f\n",
			s.Score.TotalScore, s.Item.SetName(), s.Item.SlotName(),
			s.Item.RarityDots, types.TierName(s.Item.Tier), s.Item.Level,
			s.Score.BasePoints, s.Score.SynergyBonus)
		if verbose {
			for _, sp := range s.Score.StatPoints {
				fmt.Printf("         %-20s %8.2f -> %6.1f pts\n", sp.Name, sp.Value, sp.Points)
			}
			for _, syn := range s.Score.Synergies {
				fmt.Printf("         +%-3.0f %s (%s)\n", syn.Bonus, syn.Detail, syn.Kind)
			}
		}
	}
	return nil
}
