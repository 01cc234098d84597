package checks

import (
	"testing"

	"github.com/dotcommander/modtriage/internal/types"
	"github.com/dotcommander/modtriage/internal/workflow"
)

func speedItem(level int, speed float64) *types.Item {
	return &types.Item{
		ID:         "test",
		SetID:      types.SetSpeed,
		RarityDots: 5,
		SlotID:     types.SlotSquare,
		Tier:       5,
		Level:      level,
		Primary:    types.Stat{ID: types.StatOffensePct, Value: 0.0588},
		Secondaries: []types.SecondaryStat{
			{Stat: types.Stat{ID: types.StatSpeed, Value: speed}, Rolls: 2},
		},
	}
}

func TestUnknownCheckKindNeverMatches(t *testing.T) {
	item := speedItem(15, 10)
	if m := Run(item, workflow.Check{Check: "telepathy", Result: "K"}); m != nil {
		t.Fatalf("unknown check kind matched: %+v", m)
	}
}

func TestDefaultAlwaysMatches(t *testing.T) {
	item := speedItem(15, 10)
	m := Run(item, workflow.Check{Check: "default", Result: "S"})
	if m == nil || m.ResultCode != "S" {
		t.Fatalf("default did not match: %+v", m)
	}
	if m.Reason != "Doesn't meet any criteria" {
		t.Errorf("sell default reason = %q", m.Reason)
	}

	m = Run(item, workflow.Check{Check: "default", Result: "K"})
	if m == nil || m.Reason != "Default action" {
		t.Errorf("keep default = %+v", m)
	}
}

func TestNeedsLeveling(t *testing.T) {
	tests := []struct {
		level  int
		target int
		match  bool
	}{
		{1, 9, true},
		{8, 9, true},
		{9, 9, false},
		{15, 9, false},
		{5, 0, false}, // missing target never matches
	}
	for _, tt := range tests {
		m := Run(speedItem(tt.level, 5), workflow.Check{Check: "needs_leveling", Result: "LV", Target: tt.target})
		if (m != nil) != tt.match {
			t.Errorf("needs_leveling level=%d target=%d match=%v, want %v", tt.level, tt.target, m != nil, tt.match)
		}
		if m != nil && m.Target != tt.target {
			t.Errorf("needs_leveling target = %d, want %d", m.Target, tt.target)
		}
	}
}

func TestStatThreshold(t *testing.T) {
	tests := []struct {
		name   string
		item   *types.Item
		params map[string]any
		match  bool
	}{
		{"any matches positive speed", speedItem(15, 5), map[string]any{"stat": "Speed", "any": true}, true},
		{"min met exactly", speedItem(15, 8), map[string]any{"stat": "Speed", "min": 8}, true},
		{"min not met", speedItem(15, 7), map[string]any{"stat": "Speed", "min": 8}, false},
		{"value truncated before compare", speedItem(15, 7.9), map[string]any{"stat": "Speed", "min": 8}, false},
		{"stat absent", speedItem(15, 5), map[string]any{"stat": "Offense", "any": true}, false},
		{"stat by id", speedItem(15, 5), map[string]any{"stat": 5, "any": true}, true},
		{"missing stat param", speedItem(15, 5), map[string]any{"any": true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Run(tt.item, workflow.Check{Check: "stat_threshold", Params: tt.params, Result: "K"})
			if (m != nil) != tt.match {
				t.Errorf("match = %v, want %v", m != nil, tt.match)
			}
		})
	}
}

func TestStatThresholdPercentUnits(t *testing.T) {
	// 5.63% offense stored as the fraction 0.0563; a min of 5 compares
	// against the percent-scale display value.
	item := &types.Item{
		RarityDots: 5,
		Secondaries: []types.SecondaryStat{
			{Stat: types.Stat{ID: types.StatOffensePct, Value: 0.0563}, Rolls: 5},
		},
	}
	m := Run(item, workflow.Check{
		Check:  "stat_threshold",
		Params: map[string]any{"stat": "Offense %", "min": 5},
		Result: "K",
	})
	if m == nil {
		t.Fatal("percent threshold should match display-scale value")
	}
}

func TestCombinedStats(t *testing.T) {
	item := &types.Item{
		RarityDots: 5,
		Secondaries: []types.SecondaryStat{
			{Stat: types.Stat{ID: types.StatSpeed, Value: 12}, Rolls: 3},
			{Stat: types.Stat{ID: types.StatOffense, Value: 150}, Rolls: 4},
		},
	}
	both := workflow.Check{Check: "combined_stats", Params: map[string]any{"stats": []any{
		map[string]any{"stat": "Speed", "min": 10},
		map[string]any{"stat": "Offense", "min": 100},
	}}, Result: "K"}
	if m := Run(item, both); m == nil {
		t.Fatal("combined_stats should match when all members meet their minimums")
	}

	tooHigh := workflow.Check{Check: "combined_stats", Params: map[string]any{"stats": []any{
		map[string]any{"stat": "Speed", "min": 10},
		map[string]any{"stat": "Offense", "min": 200},
	}}, Result: "K"}
	if m := Run(item, tooHigh); m != nil {
		t.Fatal("combined_stats must fail when any member misses its minimum")
	}

	missing := workflow.Check{Check: "combined_stats", Params: map[string]any{"stats": []any{
		map[string]any{"stat": "Speed", "min": 10},
		map[string]any{"stat": "Health", "min": 1},
	}}, Result: "K"}
	if m := Run(item, missing); m != nil {
		t.Fatal("combined_stats must fail when a member stat is absent")
	}
}

func TestPointThreshold(t *testing.T) {
	item := speedItem(15, 6) // one average-ish speed roll pair, ~133 base points
	low := Run(item, workflow.Check{Check: "point_threshold", Params: map[string]any{"threshold": 100}, Result: "K"})
	if low == nil {
		t.Fatal("point_threshold 100 should match")
	}
	if low.Score == nil || low.Score.TotalScore < 100 {
		t.Fatalf("match should carry the score breakdown: %+v", low.Score)
	}

	high := Run(item, workflow.Check{Check: "point_threshold", Params: map[string]any{"threshold": 10000}, Result: "K"})
	if high != nil {
		t.Fatal("point_threshold 10000 should not match")
	}
}

func TestSpeedArrow(t *testing.T) {
	arrow := &types.Item{SlotID: types.SlotArrow, Primary: types.Stat{ID: types.StatSpeed, Value: 30}}
	if m := Run(arrow, workflow.Check{Check: "speed_arrow", Result: "K"}); m == nil {
		t.Fatal("speed arrow should match")
	}
	square := &types.Item{SlotID: types.SlotSquare, Primary: types.Stat{ID: types.StatSpeed, Value: 30}}
	if m := Run(square, workflow.Check{Check: "speed_arrow", Result: "K"}); m != nil {
		t.Fatal("non-arrow slot must not match speed_arrow")
	}
}
