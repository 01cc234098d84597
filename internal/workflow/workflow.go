// Package workflow holds named decision tables and their validation. A
// workflow maps rarity bucket -> tier -> level bracket to an ordered list of
// checks; tables are configuration, not code, and any number of them can be
// registered under distinct names.
package workflow

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dotcommander/modtriage/internal/types"
)

// Check is one conditional entry in a bracket's check list. Order within
// the list is significant: earlier checks win.
type Check struct {
	Check  string         `yaml:"check" json:"check"`
	Params map[string]any `yaml:"params,omitempty" json:"params,omitempty"`
	Result string         `yaml:"result" json:"result"`
	Target int            `yaml:"target,omitempty" json:"target,omitempty"`
}

// Brackets maps sparse level keys ("level_1", "level_9", ...) to check
// lists.
type Brackets map[string][]Check

// TierTable maps tier color names to their brackets.
type TierTable map[string]Brackets

// Workflow is an immutable named decision table.
type Workflow struct {
	Key         string               `yaml:"-" json:"key"`
	Name        string               `yaml:"name" json:"name"`
	Description string               `yaml:"description,omitempty" json:"description,omitempty"`
	Tables      map[string]TierTable `yaml:"tables" json:"tables"`
}

// Branch returns the brackets for a rarity bucket and tier name.
func (w *Workflow) Branch(bucket, tier string) (Brackets, bool) {
	tt, ok := w.Tables[bucket]
	if !ok {
		return nil, false
	}
	b, ok := tt[tier]
	return b, ok
}

// bracketLevel parses the numeric part of a "level_N" key. Returns -1 for
// keys that do not follow the convention.
func bracketLevel(key string) int {
	num, ok := strings.CutPrefix(key, "level_")
	if !ok {
		return -1
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 1 {
		return -1
	}
	return n
}

// Select picks the bracket that applies at the given item level: the
// largest bracket value that does not exceed it. When the level is below
// every bracket, level_1 applies.
func (b Brackets) Select(level int) (string, []Check, bool) {
	best := -1
	bestKey := ""
	for key := range b {
		n := bracketLevel(key)
		if n < 0 || n > level {
			continue
		}
		if n > best {
			best = n
			bestKey = key
		}
	}
	if best < 0 {
		checks, ok := b["level_1"]
		return "level_1", checks, ok
	}
	return bestKey, b[bestKey], true
}

// Issue is one validation finding on a workflow table.
type Issue struct {
	Path     string
	Message  string
	Severity string // error or warning
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s: %s", i.Severity, i.Path, i.Message)
}

var validResults = map[string]bool{
	types.CodeKeep:  true,
	types.CodeSell:  true,
	types.CodeSlice: true,
	types.CodeLevel: true,
}

var requiredBuckets = []string{types.BucketLowDots, types.BucketFiveDots, types.BucketSixDots}

var requiredTiers = []string{"grey", "green", "blue", "purple", "gold"}

// Validate checks the structural invariants the evaluator relies on: every
// bucket and tier present, every (bucket, tier) defines level_1, bracket
// keys parse, result codes are known, and every check list terminates in a
// default check. Unknown check kinds are a warning only; they are skipped
// at evaluation time.
func (w *Workflow) Validate() []Issue {
	var issues []Issue
	if w.Name == "" {
		issues = append(issues, Issue{Path: "name", Message: "workflow name is required", Severity: "error"})
	}
	for _, bucket := range requiredBuckets {
		tt, ok := w.Tables[bucket]
		if !ok {
			issues = append(issues, Issue{Path: bucket, Message: "missing rarity bucket", Severity: "error"})
			continue
		}
		for _, tier := range requiredTiers {
			brackets, ok := tt[tier]
			path := bucket + "." + tier
			if !ok {
				issues = append(issues, Issue{Path: path, Message: "missing tier", Severity: "error"})
				continue
			}
			if _, ok := brackets["level_1"]; !ok {
				issues = append(issues, Issue{Path: path, Message: "missing level_1 bracket", Severity: "error"})
			}
			for _, key := range sortedBracketKeys(brackets) {
				checks := brackets[key]
				bpath := path + "." + key
				if bracketLevel(key) < 0 {
					issues = append(issues, Issue{Path: bpath, Message: "bracket key must be level_N", Severity: "error"})
				}
				issues = append(issues, validateChecks(bpath, checks)...)
			}
		}
	}
	for bucket := range w.Tables {
		if bucket != types.BucketLowDots && bucket != types.BucketFiveDots && bucket != types.BucketSixDots {
			issues = append(issues, Issue{Path: bucket, Message: "unknown rarity bucket", Severity: "warning"})
		}
	}
	return issues
}

func validateChecks(path string, checks []Check) []Issue {
	var issues []Issue
	if len(checks) == 0 {
		issues = append(issues, Issue{Path: path, Message: "empty check list", Severity: "error"})
		return issues
	}
	for i, c := range checks {
		cpath := fmt.Sprintf("%s[%d]", path, i)
		if !validResults[c.Result] {
			issues = append(issues, Issue{Path: cpath, Message: fmt.Sprintf("unknown result code %q", c.Result), Severity: "error"})
		}
		if c.Result == types.CodeLevel && c.Target == 0 {
			issues = append(issues, Issue{Path: cpath, Message: "LV result requires a target level", Severity: "error"})
		}
		if c.Check == "default" && i != len(checks)-1 {
			issues = append(issues, Issue{Path: cpath, Message: "default check must be last; later checks are unreachable", Severity: "warning"})
		}
	}
	if last := checks[len(checks)-1]; last.Check != "default" {
		issues = append(issues, Issue{Path: path, Message: "check list must end with a default check", Severity: "error"})
	}
	return issues
}

// HasErrors reports whether any issue in the list is an error.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == "error" {
			return true
		}
	}
	return false
}

func sortedBracketKeys(b Brackets) []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
