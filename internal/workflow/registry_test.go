package workflow

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validWorkflowYAML = `name: Keep Everything
description: Test workflow that keeps all five and six dot mods
tables:
  dot_1-4:
    grey: {level_1: [{check: default, result: S}]}
    green: {level_1: [{check: default, result: S}]}
    blue: {level_1: [{check: default, result: S}]}
    purple: {level_1: [{check: default, result: S}]}
    gold: {level_1: [{check: default, result: S}]}
  dot_5:
    grey: {level_1: [{check: default, result: K}]}
    green: {level_1: [{check: default, result: K}]}
    blue: {level_1: [{check: default, result: K}]}
    purple: {level_1: [{check: default, result: K}]}
    gold:
      level_1:
        - {check: stat_threshold, params: {stat: Speed, min: 10}, result: K}
        - {check: default, result: S}
  dot_6:
    grey: {level_1: [{check: default, result: K}]}
    green: {level_1: [{check: default, result: K}]}
    blue: {level_1: [{check: default, result: K}]}
    purple: {level_1: [{check: default, result: K}]}
    gold: {level_1: [{check: default, result: K}]}
`

func TestRegistryBuiltins(t *testing.T) {
	reg := NewRegistry()
	for _, key := range []string{"basic", "strict"} {
		w, err := reg.Get(key)
		require.NoError(t, err)
		assert.Equal(t, key, w.Key)
	}
}

func TestRegistryUnknownWorkflow(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Get("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownWorkflow))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hoarder.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validWorkflowYAML), 0644))

	w, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hoarder", w.Key)
	assert.Equal(t, "Keep Everything", w.Name)

	checks, ok := w.Tables["dot_5"]["gold"]["level_1"]
	require.True(t, ok)
	require.Len(t, checks, 2)
	assert.Equal(t, "stat_threshold", checks[0].Check)
	assert.Equal(t, "Speed", checks[0].Params["stat"])
}

func TestLoadFileRejectsBadResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	bad := `name: Bad
tables:
  dot_1-4:
    grey: {level_1: [{check: default, result: NOPE}]}
    green: {level_1: [{check: default, result: S}]}
    blue: {level_1: [{check: default, result: S}]}
    purple: {level_1: [{check: default, result: S}]}
    gold: {level_1: [{check: default, result: S}]}
  dot_5:
    grey: {level_1: [{check: default, result: K}]}
    green: {level_1: [{check: default, result: K}]}
    blue: {level_1: [{check: default, result: K}]}
    purple: {level_1: [{check: default, result: K}]}
    gold: {level_1: [{check: default, result: K}]}
  dot_6:
    grey: {level_1: [{check: default, result: K}]}
    green: {level_1: [{check: default, result: K}]}
    blue: {level_1: [{check: default, result: K}]}
    purple: {level_1: [{check: default, result: K}]}
    gold: {level_1: [{check: default, result: K}]}
`
	require.NoError(t, os.WriteFile(path, []byte(bad), 0644))
	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFileRejectsMissingBucket(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	partial := `name: Partial
tables:
  dot_5:
    grey: {level_1: [{check: default, result: K}]}
`
	require.NoError(t, os.WriteFile(path, []byte(partial), 0644))
	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadGlobs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.yaml"), []byte(validWorkflowYAML), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("name: Broken\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a workflow"), 0644))

	reg := NewRegistry()
	loaded := reg.LoadGlobs([]string{filepath.Join(dir, "*.yaml")})

	// Broken file is skipped with a warning, never fatal.
	assert.Equal(t, []string{"good"}, loaded)
	_, err := reg.Get("good")
	assert.NoError(t, err)
	_, err = reg.Get("broken")
	assert.Error(t, err)
}

func TestValidateSchemaRejectsBadShape(t *testing.T) {
	issues := ValidateSchema([]byte(`name: 42`))
	assert.True(t, HasErrors(issues))
}
