package workflow

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// ErrUnknownWorkflow is returned when a requested workflow name is not
// registered. Callers treat this as an invalid-configuration error, not a
// reason to crash.
var ErrUnknownWorkflow = errors.New("unknown workflow")

// Registry holds all named workflows available for evaluation. It is
// populated at startup and read-only afterwards.
type Registry struct {
	workflows map[string]*Workflow
}

// NewRegistry creates a registry preloaded with the built-in workflows.
func NewRegistry() *Registry {
	r := &Registry{workflows: make(map[string]*Workflow)}
	// Built-ins are maintained alongside the code; a validation failure
	// here is a programming error.
	for _, w := range []*Workflow{basicWorkflow(), strictWorkflow()} {
		if err := r.Register(w); err != nil {
			panic(fmt.Sprintf("built-in workflow %s: %v", w.Key, err))
		}
	}
	return r
}

// Get returns the workflow registered under name.
func (r *Registry) Get(name string) (*Workflow, error) {
	w, ok := r.workflows[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkflow, name)
	}
	return w, nil
}

// Register validates a workflow and adds it under its key. Registering a
// key twice replaces the earlier table, which lets user files override the
// built-ins deliberately.
func (r *Registry) Register(w *Workflow) error {
	if w.Key == "" {
		return fmt.Errorf("workflow has no key")
	}
	if issues := w.Validate(); HasErrors(issues) {
		return fmt.Errorf("workflow %q failed validation: %s", w.Key, firstError(issues))
	}
	r.workflows[w.Key] = w
	return nil
}

// List returns all workflows sorted by key.
func (r *Registry) List() []*Workflow {
	out := make([]*Workflow, 0, len(r.workflows))
	for _, w := range r.workflows {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// LoadFile parses a YAML workflow file, validates it against the embedded
// CUE schema plus the structural checks, and returns it. The workflow key
// is the file name without extension.
func LoadFile(path string) (*Workflow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workflow file: %w", err)
	}

	if schemaIssues := ValidateSchema(data); HasErrors(schemaIssues) {
		return nil, fmt.Errorf("workflow %s failed schema validation: %s", path, firstError(schemaIssues))
	}

	var w Workflow
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("parsing workflow file %s: %w", path, err)
	}
	w.Key = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if issues := w.Validate(); HasErrors(issues) {
		return nil, fmt.Errorf("workflow %s failed validation: %s", path, firstError(issues))
	}
	return &w, nil
}

// LoadGlobs registers every workflow file matched by the given doublestar
// patterns. A file that fails to load is reported to stderr and skipped; a
// broken user workflow must not take the tool down. Returns the keys that
// were loaded.
func (r *Registry) LoadGlobs(patterns []string) []string {
	var loaded []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: invalid workflow glob %q: %v\n", pattern, err)
			continue
		}
		for _, path := range matches {
			ext := filepath.Ext(path)
			if ext != ".yaml" && ext != ".yml" {
				continue
			}
			w, err := LoadFile(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: skipping workflow %s: %v\n", path, err)
				continue
			}
			if err := r.Register(w); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: skipping workflow %s: %v\n", path, err)
				continue
			}
			loaded = append(loaded, w.Key)
		}
	}
	return loaded
}

func firstError(issues []Issue) string {
	for _, i := range issues {
		if i.Severity == "error" {
			return i.String()
		}
	}
	if len(issues) > 0 {
		return issues[0].String()
	}
	return "unknown issue"
}
