package workflow

import (
	"embed"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed schemas/workflow.cue
var schemaFS embed.FS

var (
	schemaOnce  sync.Once
	schemaCtx   *cue.Context
	schemaValue cue.Value
	schemaOK    bool
)

// loadSchema compiles the embedded workflow schema once. A compile failure
// disables CUE validation and leaves the Go structural checks as the only
// gate, the same degradation path the schema validator has always had.
func loadSchema() {
	content, err := schemaFS.ReadFile("schemas/workflow.cue")
	if err != nil {
		return
	}
	schemaCtx = cuecontext.New()
	v := schemaCtx.CompileBytes(content, cue.Filename("workflow.cue"))
	if v.Err() != nil {
		return
	}
	schemaValue = v
	schemaOK = true
}

// ValidateSchema checks raw YAML workflow bytes against the embedded CUE
// schema. Returns nil when the schema is unavailable; Workflow.Validate
// still runs in that case.
func ValidateSchema(raw []byte) []Issue {
	schemaOnce.Do(loadSchema)
	if !schemaOK {
		return nil
	}

	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return []Issue{{Path: "", Message: fmt.Sprintf("invalid YAML: %v", err), Severity: "error"}}
	}

	dataValue := schemaCtx.Encode(data)
	if err := dataValue.Err(); err != nil {
		return []Issue{{Path: "", Message: fmt.Sprintf("encoding workflow data: %v", err), Severity: "error"}}
	}

	unified := schemaValue.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return []Issue{{Path: "", Message: fmt.Sprintf("schema validation failed: %v", err), Severity: "error"}}
	}
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return []Issue{{Path: "", Message: fmt.Sprintf("schema validation failed: %v", err), Severity: "error"}}
	}
	return nil
}
