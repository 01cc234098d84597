package scoring

import (
	"math"
	"testing"

	"github.com/dotcommander/modtriage/internal/types"
)

func TestRollEfficiencies(t *testing.T) {
	sec := types.SecondaryStat{
		Stat:          types.Stat{ID: types.StatSpeed, Value: 14},
		Rolls:         3,
		RollBoundsMin: 3,
		RollBoundsMax: 6,
		RollValues:    []int{3, 5, 6},
	}
	got := RollEfficiencies(sec)
	want := []float64{25, 75, 100}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("roll %d efficiency = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRollEfficienciesMissingData(t *testing.T) {
	tests := []struct {
		name string
		sec  types.SecondaryStat
	}{
		{"no bounds", types.SecondaryStat{Stat: types.Stat{ID: types.StatSpeed, Value: 5}, Rolls: 1, RollValues: []int{5}}},
		{"no values", types.SecondaryStat{Stat: types.Stat{ID: types.StatSpeed, Value: 5}, Rolls: 1, RollBoundsMin: 3, RollBoundsMax: 6}},
		{"inverted bounds", types.SecondaryStat{Stat: types.Stat{ID: types.StatSpeed, Value: 5}, Rolls: 1, RollBoundsMin: 6, RollBoundsMax: 3, RollValues: []int{5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RollEfficiencies(tt.sec); got != nil {
				t.Errorf("got %v, want nil", got)
			}
		})
	}
}

func TestStatEfficiencyAveragesRolls(t *testing.T) {
	sec := types.SecondaryStat{
		Stat:          types.Stat{ID: types.StatSpeed, Value: 11},
		Rolls:         2,
		RollBoundsMin: 3,
		RollBoundsMax: 6,
		RollValues:    []int{5, 6},
	}
	// (75 + 100) / 2
	if got := StatEfficiency(sec); math.Abs(got-87.5) > 1e-9 {
		t.Errorf("StatEfficiency = %v, want 87.5", got)
	}
}

func TestStatEfficiencyFallback(t *testing.T) {
	tests := []struct {
		name string
		sec  types.SecondaryStat
		want float64
	}{
		{"max speed roll", types.SecondaryStat{Stat: types.Stat{ID: types.StatSpeed, Value: 6}, Rolls: 1}, 100},
		{"min speed roll", types.SecondaryStat{Stat: types.Stat{ID: types.StatSpeed, Value: 3}, Rolls: 1}, 0},
		{"mid speed roll", types.SecondaryStat{Stat: types.Stat{ID: types.StatSpeed, Value: 4.5}, Rolls: 1}, 50},
		{"two rolls averaged", types.SecondaryStat{Stat: types.Stat{ID: types.StatSpeed, Value: 9}, Rolls: 2}, 50},
		{"clamped above", types.SecondaryStat{Stat: types.Stat{ID: types.StatSpeed, Value: 7}, Rolls: 1}, 100},
		{"unknown stat", types.SecondaryStat{Stat: types.Stat{ID: 999, Value: 7}, Rolls: 1}, 0},
		{"zero rolls", types.SecondaryStat{Stat: types.Stat{ID: types.StatSpeed, Value: 5}, Rolls: 0}, 0},
		{"percent stat display scale", types.SecondaryStat{Stat: types.Stat{ID: types.StatOffensePct, Value: 0.00563}, Rolls: 1}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatEfficiency(tt.sec); math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("StatEfficiency = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestItemEfficiency(t *testing.T) {
	item := &types.Item{
		RarityDots: 5,
		Secondaries: []types.SecondaryStat{
			{Stat: types.Stat{ID: types.StatSpeed, Value: 5}, Rolls: 1, RollBoundsMin: 3, RollBoundsMax: 6, RollValues: []int{5}},
			{Stat: types.Stat{ID: types.StatSpeed, Value: 6}, Rolls: 1, RollBoundsMin: 3, RollBoundsMax: 6, RollValues: []int{6}},
		},
	}
	// (75 + 100) / 2
	if got := ItemEfficiency(item); math.Abs(got-87.5) > 1e-9 {
		t.Errorf("ItemEfficiency = %v, want 87.5", got)
	}
	if got := ItemEfficiency(&types.Item{}); got != 0 {
		t.Errorf("empty item efficiency = %v, want 0", got)
	}
}
