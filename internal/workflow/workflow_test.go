package workflow

import "testing"

func testBrackets() Brackets {
	return Brackets{
		"level_1":  {{Check: "default", Result: "S"}},
		"level_9":  {{Check: "default", Result: "K"}},
		"level_12": {{Check: "default", Result: "SL"}},
	}
}

func TestBracketSelect(t *testing.T) {
	b := testBrackets()
	tests := []struct {
		level   int
		wantKey string
	}{
		{1, "level_1"},
		{8, "level_1"},
		{9, "level_9"},
		{11, "level_9"},
		{12, "level_12"},
		{15, "level_12"},
	}
	for _, tt := range tests {
		key, checks, ok := b.Select(tt.level)
		if !ok {
			t.Fatalf("Select(%d) not ok", tt.level)
		}
		if key != tt.wantKey {
			t.Errorf("Select(%d) = %q, want %q", tt.level, key, tt.wantKey)
		}
		if len(checks) == 0 {
			t.Errorf("Select(%d) returned empty checks", tt.level)
		}
	}
}

// Raising the level can only move the selected bracket up, never down.
func TestBracketSelectMonotonic(t *testing.T) {
	b := testBrackets()
	prev := -1
	for level := 1; level <= 15; level++ {
		key, _, ok := b.Select(level)
		if !ok {
			t.Fatalf("Select(%d) not ok", level)
		}
		n := bracketLevel(key)
		if n < prev {
			t.Fatalf("bracket moved down at level %d: %d -> %d", level, prev, n)
		}
		prev = n
	}
}

func TestBracketSelectBelowAll(t *testing.T) {
	b := Brackets{
		"level_1": {{Check: "default", Result: "S"}},
		"level_9": {{Check: "default", Result: "K"}},
	}
	key, _, ok := b.Select(0)
	if !ok || key != "level_1" {
		t.Errorf("Select(0) = %q, ok=%v, want level_1", key, ok)
	}
}

func TestBuiltinsValidate(t *testing.T) {
	for _, w := range []*Workflow{basicWorkflow(), strictWorkflow()} {
		if issues := w.Validate(); HasErrors(issues) {
			t.Errorf("built-in %s has validation errors: %v", w.Key, issues)
		}
	}
}

func TestValidateCatchesMissingDefault(t *testing.T) {
	w := basicWorkflow()
	w.Tables["dot_5"]["gold"]["level_12"] = []Check{
		{Check: "stat_threshold", Params: map[string]any{"stat": "Speed", "min": 8}, Result: "K"},
	}
	issues := w.Validate()
	if !HasErrors(issues) {
		t.Fatal("expected error for check list without default terminal")
	}
}

func TestValidateCatchesEmptyList(t *testing.T) {
	w := basicWorkflow()
	w.Tables["dot_5"]["grey"]["level_9"] = nil
	if !HasErrors(w.Validate()) {
		t.Fatal("expected error for empty check list")
	}
}

func TestValidateCatchesMissingLevel1(t *testing.T) {
	w := basicWorkflow()
	delete(w.Tables["dot_5"]["grey"], "level_1")
	if !HasErrors(w.Validate()) {
		t.Fatal("expected error for missing level_1 bracket")
	}
}

func TestValidateCatchesBadResult(t *testing.T) {
	w := basicWorkflow()
	w.Tables["dot_6"]["gold"]["level_1"] = []Check{{Check: "default", Result: "X"}}
	if !HasErrors(w.Validate()) {
		t.Fatal("expected error for unknown result code")
	}
}

func TestValidateCatchesMissingTier(t *testing.T) {
	w := basicWorkflow()
	delete(w.Tables["dot_5"], "blue")
	if !HasErrors(w.Validate()) {
		t.Fatal("expected error for missing tier")
	}
}

func TestValidateWarnsOnEarlyDefault(t *testing.T) {
	w := basicWorkflow()
	w.Tables["dot_6"]["grey"]["level_1"] = []Check{
		{Check: "default", Result: "K"},
		{Check: "default", Result: "S"},
	}
	issues := w.Validate()
	found := false
	for _, i := range issues {
		if i.Severity == "warning" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected warning for default check before end of list")
	}
}
