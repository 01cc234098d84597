package workflow

// Built-in workflows. These mirror the two policies the tool shipped with
// historically: a lenient table for players who keep anything with speed,
// and a strict table for limited inventory space. Both are plain data; user
// workflows loaded from YAML sit alongside them in the registry.

func sellAll() Brackets {
	return Brackets{"level_1": {{Check: "default", Result: "S"}}}
}

func keepAll() Brackets {
	return Brackets{"level_1": {{Check: "default", Result: "K"}}}
}

func allTiers(b func() Brackets) TierTable {
	return TierTable{
		"grey":   b(),
		"green":  b(),
		"blue":   b(),
		"purple": b(),
		"gold":   b(),
	}
}

func basicWorkflow() *Workflow {
	return &Workflow{
		Key:         "basic",
		Name:        "Basic Mode (Keep Any Speed)",
		Description: "Lenient thresholds for players with limited resources",
		Tables: map[string]TierTable{
			"dot_1-4": allTiers(sellAll),
			"dot_5": {
				"grey": Brackets{
					"level_1": {
						{Check: "speed_arrow", Result: "LV", Target: 15},
						{Check: "needs_leveling", Result: "LV", Target: 9},
						{Check: "default", Result: "S"},
					},
					"level_9": {
						{Check: "speed_arrow", Result: "LV", Target: 15},
						{Check: "stat_threshold", Params: map[string]any{"stat": "Speed", "any": true}, Result: "K"},
						{Check: "default", Result: "S"},
					},
					"level_15": {
						{Check: "speed_arrow", Result: "K"},
						{Check: "stat_threshold", Params: map[string]any{"stat": "Speed", "any": true}, Result: "K"},
						{Check: "default", Result: "S"},
					},
				},
				"green": Brackets{
					"level_1": {
						{Check: "needs_leveling", Result: "LV", Target: 9},
						{Check: "default", Result: "S"},
					},
					"level_9": {
						{Check: "stat_threshold", Params: map[string]any{"stat": "Speed", "any": true}, Result: "K"},
						{Check: "default", Result: "S"},
					},
					"level_12": {
						{Check: "stat_threshold", Params: map[string]any{"stat": "Speed", "any": true}, Result: "K"},
						{Check: "default", Result: "S"},
					},
				},
				"blue": Brackets{
					"level_1": {
						{Check: "needs_leveling", Result: "LV", Target: 12},
						{Check: "default", Result: "S"},
					},
					"level_6": {
						{Check: "needs_leveling", Result: "LV", Target: 12},
						{Check: "default", Result: "S"},
					},
					"level_12": {
						{Check: "stat_threshold", Params: map[string]any{"stat": "Speed", "min": 6}, Result: "K"},
						{Check: "default", Result: "S"},
					},
				},
				"purple": Brackets{
					"level_1": {
						{Check: "needs_leveling", Result: "LV", Target: 12},
						{Check: "default", Result: "S"},
					},
					"level_3": {
						{Check: "needs_leveling", Result: "LV", Target: 12},
						{Check: "default", Result: "S"},
					},
					"level_12": {
						{Check: "stat_threshold", Params: map[string]any{"stat": "Speed", "min": 6}, Result: "K"},
						{Check: "default", Result: "S"},
					},
				},
				"gold": Brackets{
					"level_1": {
						{Check: "stat_threshold", Params: map[string]any{"stat": "Speed", "min": 8}, Result: "K"},
						{Check: "needs_leveling", Result: "LV", Target: 12},
						{Check: "default", Result: "S"},
					},
					"level_12": {
						{Check: "stat_threshold", Params: map[string]any{"stat": "Speed", "min": 8}, Result: "K"},
						{Check: "point_threshold", Params: map[string]any{"threshold": 400}, Result: "K"},
						{Check: "default", Result: "S"},
					},
					"level_15": {
						{Check: "stat_threshold", Params: map[string]any{"stat": "Speed", "min": 12}, Result: "SL"},
						{Check: "stat_threshold", Params: map[string]any{"stat": "Speed", "min": 8}, Result: "K"},
						{Check: "point_threshold", Params: map[string]any{"threshold": 400}, Result: "K"},
						{Check: "default", Result: "S"},
					},
				},
			},
			"dot_6": allTiers(keepAll),
		},
	}
}

func strictWorkflow() *Workflow {
	return &Workflow{
		Key:         "strict",
		Name:        "Strict Mode (Limited Inventory)",
		Description: "Higher thresholds for players with limited mod space",
		Tables: map[string]TierTable{
			"dot_1-4": allTiers(sellAll),
			"dot_5": {
				"grey": Brackets{
					"level_1": {
						{Check: "needs_leveling", Result: "LV", Target: 9},
						{Check: "default", Result: "S"},
					},
					"level_9": {
						{Check: "stat_threshold", Params: map[string]any{"stat": "Speed", "any": true}, Result: "K"},
						{Check: "default", Result: "S"},
					},
					"level_12": {
						{Check: "stat_threshold", Params: map[string]any{"stat": "Speed", "any": true}, Result: "K"},
						{Check: "default", Result: "S"},
					},
				},
				"green": Brackets{
					"level_1": {
						{Check: "needs_leveling", Result: "LV", Target: 9},
						{Check: "default", Result: "S"},
					},
					"level_9": {
						{Check: "stat_threshold", Params: map[string]any{"stat": "Speed", "min": 5}, Result: "K"},
						{Check: "default", Result: "S"},
					},
					"level_12": {
						{Check: "stat_threshold", Params: map[string]any{"stat": "Speed", "min": 5}, Result: "K"},
						{Check: "default", Result: "S"},
					},
				},
				"blue": Brackets{
					"level_1": {
						{Check: "needs_leveling", Result: "LV", Target: 12},
						{Check: "default", Result: "S"},
					},
					"level_6": {
						{Check: "needs_leveling", Result: "LV", Target: 12},
						{Check: "default", Result: "S"},
					},
					"level_12": {
						{Check: "stat_threshold", Params: map[string]any{"stat": "Speed", "min": 8}, Result: "K"},
						{Check: "default", Result: "S"},
					},
				},
				"purple": Brackets{
					"level_1": {
						{Check: "needs_leveling", Result: "LV", Target: 12},
						{Check: "default", Result: "S"},
					},
					"level_3": {
						{Check: "needs_leveling", Result: "LV", Target: 12},
						{Check: "default", Result: "S"},
					},
					"level_12": {
						{Check: "stat_threshold", Params: map[string]any{"stat": "Speed", "min": 10}, Result: "K"},
						{Check: "default", Result: "S"},
					},
					"level_15": {
						{Check: "stat_threshold", Params: map[string]any{"stat": "Speed", "min": 15}, Result: "SL"},
						{Check: "stat_threshold", Params: map[string]any{"stat": "Speed", "min": 10}, Result: "K"},
						{Check: "default", Result: "S"},
					},
				},
				"gold": Brackets{
					"level_1": {
						{Check: "stat_threshold", Params: map[string]any{"stat": "Speed", "min": 10}, Result: "K"},
						{Check: "needs_leveling", Result: "LV", Target: 12},
						{Check: "default", Result: "S"},
					},
					"level_12": {
						{Check: "stat_threshold", Params: map[string]any{"stat": "Speed", "min": 10}, Result: "K"},
						{Check: "default", Result: "S"},
					},
					"level_15": {
						{Check: "stat_threshold", Params: map[string]any{"stat": "Speed", "min": 15}, Result: "SL"},
						{Check: "combined_stats", Params: map[string]any{"stats": []any{
							map[string]any{"stat": "Speed", "min": 10},
							map[string]any{"stat": "Offense", "min": 100},
						}}, Result: "K"},
						{Check: "stat_threshold", Params: map[string]any{"stat": "Speed", "min": 10}, Result: "K"},
						{Check: "point_threshold", Params: map[string]any{"threshold": 500}, Result: "K"},
						{Check: "default", Result: "S"},
					},
				},
			},
			"dot_6": allTiers(keepAll),
		},
	}
}
