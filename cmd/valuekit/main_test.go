package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/comalice/valuekit"
	"github.com/comalice/valuekit/internal/config"
	"github.com/comalice/valuekit/internal/production"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestTristateCmd_Text(t *testing.T) {
	out, _, err := run(t, "tristate", "true", "else", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "value=true  bool=true  optional=true")
	assert.Contains(t, out, "value=else  bool=false optional=nil")
	assert.Contains(t, out, "value=false bool=false optional=false")
}

func TestTristateCmd_JSON(t *testing.T) {
	out, _, err := run(t, "tristate", "-o", "json", "unknown", "t")
	require.NoError(t, err)

	var got struct {
		Results []struct {
			Value    *bool `json:"value"`
			Optional *bool `json:"optional"`
			IsOther  bool  `json:"is_other"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Results, 2)
	assert.Nil(t, got.Results[0].Value)
	assert.Nil(t, got.Results[0].Optional)
	assert.True(t, got.Results[0].IsOther)
	require.NotNil(t, got.Results[1].Value)
	assert.True(t, *got.Results[1].Value)
}

func TestTristateCmd_Invalid(t *testing.T) {
	_, _, err := run(t, "tristate", "maybe")
	assert.ErrorIs(t, err, valuekit.ErrInvalidTristate)
}

func TestCopyStringCmd_YAML(t *testing.T) {
	out, _, err := run(t, "copystring", "--cap", "8", "-o", "yaml", "Hi")
	require.NoError(t, err)

	var r copyStringReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, 8, r.Capacity)
	assert.Equal(t, 2, r.Len)
	assert.Equal(t, 6, r.Padding)
	assert.Equal(t, "Hi", r.Trimmed)
	require.Len(t, r.Slots, 8)
	assert.Equal(t, "U+0048", r.Slots[0])
	assert.Equal(t, "U+0000", r.Slots[7])
}

func TestCopyStringCmd_CapacityExceeded(t *testing.T) {
	_, stderr, err := run(t, "copystring", "--cap", "8", "much too long")
	require.Error(t, err)
	assert.ErrorIs(t, err, valuekit.ErrCapacityExceeded)
	assert.Contains(t, stderr, "copystring rejected")
}

func TestCopyStringCmd_CapacityFromEnv(t *testing.T) {
	t.Setenv("VALUEKIT_COPYSTRING_CAPACITY", "16")
	out, _, err := run(t, "copystring", "-o", "json", "abc")
	require.NoError(t, err)
	var r copyStringReport
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 16, r.Capacity)
}

func TestReportCopyString_EveryConfigCapacity(t *testing.T) {
	for _, c := range config.Capacities {
		r, err := reportCopyString(c, "x")
		require.NoError(t, err, "capacity %d", c)
		assert.Equal(t, c, r.Capacity)
	}
	_, err := reportCopyString(3, "x")
	assert.Error(t, err)
}

func writeTreeSpec(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.yaml")
	spec := "value: root\nchildren:\n  - value: a\n  - value: b\n    children:\n      - value: b1\n"
	require.NoError(t, os.WriteFile(path, []byte(spec), 0o600))
	return path
}

func TestTreeCmd_DOT(t *testing.T) {
	out, _, err := run(t, "tree", writeTreeSpec(t))
	require.NoError(t, err)
	assert.Contains(t, out, "digraph Tree {")
	assert.Contains(t, out, `[label="root" style=filled fillcolor=lightgreen]`)
	assert.Contains(t, out, `"n2" -> "n1" [label="0"];`)
}

func TestTreeCmd_SaveTOML(t *testing.T) {
	dir := t.TempDir()
	out, _, err := run(t, "tree", "-o", "toml", "--save", dir, writeTreeSpec(t))
	require.NoError(t, err)
	assert.Contains(t, out, "[[tree.nodes]]")

	p, err := production.NewTOMLPersister[string](dir)
	require.NoError(t, err)
	arena, err := p.Load(context.Background(), "sample")
	require.NoError(t, err)
	assert.Equal(t, 4, arena.Len())
	assert.Len(t, arena.Roots(), 1)
}

func TestTreeCmd_MissingFile(t *testing.T) {
	_, _, err := run(t, "tree", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestCallCmd(t *testing.T) {
	out, _, err := run(t, "call", "increment", "increment", "double")
	require.NoError(t, err)
	assert.Equal(t, "fn: increment,increment,double -> counter=4\n", out)

	out, _, err = run(t, "call", "--kind", "once", "-o", "json", "increment", "reset", "noop")
	require.NoError(t, err)
	var r callReport
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "once", r.Kind)
	assert.Equal(t, 0, r.Counter)
}

func TestCallCmd_DebugLogging(t *testing.T) {
	_, stderr, err := run(t, "call", "--log-level", "debug", "increment")
	require.NoError(t, err)
	assert.Contains(t, stderr, "invoking handle")
	assert.Contains(t, stderr, "handle completed")
}

func TestCallCmd_Errors(t *testing.T) {
	_, _, err := run(t, "call", "--kind", "bogus", "increment")
	assert.ErrorContains(t, err, "unknown handle kind")
	_, _, err = run(t, "call", "launch")
	assert.ErrorContains(t, err, "unknown handle")
}

func TestRootCmd_InvalidOutput(t *testing.T) {
	_, _, err := run(t, "tristate", "-o", "xml", "true")
	assert.ErrorContains(t, err, "output.format")
}

func TestRootCmd_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: json\n"), 0o600))
	out, _, err := run(t, "--config", path, "tristate", "false")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
}
