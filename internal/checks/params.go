package checks

import "github.com/dotcommander/modtriage/internal/types"

// statIDsByName resolves display names back to stat ids for workflow
// parameter blocks that name stats by their human-readable form.
var statIDsByName = func() map[string]int {
	m := make(map[string]int, len(types.StatNames))
	for id, name := range types.StatNames {
		m[name] = id
	}
	return m
}()

// paramStat reads a stat reference that YAML authors may write either as a
// display name ("Speed") or a raw stat id (5).
func paramStat(params map[string]any, key string) (int, bool) {
	switch v := params[key].(type) {
	case string:
		id, ok := statIDsByName[v]
		return id, ok
	case int:
		return v, v > 0
	case float64:
		return int(v), v > 0
	default:
		return 0, false
	}
}

func paramBool(params map[string]any, key string) bool {
	b, _ := params[key].(bool)
	return b
}

func paramFloat(params map[string]any, key string) (float64, bool) {
	switch v := params[key].(type) {
	case int:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
