package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dotcommander/modtriage/internal/config"
	"github.com/dotcommander/modtriage/internal/decode"
	"github.com/dotcommander/modtriage/internal/types"
	"github.com/dotcommander/modtriage/internal/workflow"
)

// loadRegistry builds the workflow registry: built-ins plus any user
// workflow files the config points at.
func loadRegistry(cfg *config.Config) *workflow.Registry {
	reg := workflow.NewRegistry()
	loaded := reg.LoadGlobs(cfg.WorkflowPaths)
	if verbose && len(loaded) > 0 {
		fmt.Fprintf(os.Stderr, "Loaded user workflows: %v\n", loaded)
	}
	return reg
}

// loadItems reads and decodes a payload file, applying the optional name
// table and minimum-dots filter.
func loadItems(path string, cfg *config.Config) ([]types.Item, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading payload: %w", err)
	}

	names, err := loadNames(cfg.NamesFile)
	if err != nil {
		return nil, err
	}

	items, err := decode.Payload(raw, names)
	if err != nil {
		return nil, err
	}

	if cfg.MinDots > 1 {
		filtered := items[:0]
		for _, it := range items {
			if it.RarityDots >= cfg.MinDots {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}
	return items, nil
}

// loadNames reads a character-name lookup table from a JSON object file.
func loadNames(path string) (decode.Names, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading names file: %w", err)
	}
	var names decode.Names
	if err := json.Unmarshal(raw, &names); err != nil {
		return nil, fmt.Errorf("parsing names file: %w", err)
	}
	return names, nil
}

// loadLocks merges the --lock ids with the lock file into one overlay set.
func loadLocks(cfg *config.Config) (map[string]bool, error) {
	locks := make(map[string]bool)
	for _, id := range lockIDs {
		locks[id] = true
	}
	if cfg.LockFile == "" {
		return locks, nil
	}
	raw, err := os.ReadFile(cfg.LockFile)
	if err != nil {
		return nil, fmt.Errorf("reading lock file: %w", err)
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("parsing lock file: %w", err)
	}
	for _, id := range ids {
		locks[id] = true
	}
	return locks, nil
}
