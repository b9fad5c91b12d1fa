package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/overload"
	"github.com/aretw0/overload/pkg/core"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDemo(t *testing.T) {
	out, err := execute(t, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, `IntInt(7, 3)`)
	assert.Contains(t, out, `StrInt("asd", 3)`)
	assert.True(t, strings.HasSuffix(out, "All OK!\n"))
}

func TestDemo_YAML(t *testing.T) {
	out, err := execute(t, "demo", "--yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: builtin")
	assert.Contains(t, out, "op: f_xor")
}

func TestDemo_WriteThenRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "builtin.yaml")

	out, err := execute(t, "demo", "--write", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")

	out, err = execute(t, "run", "--json", path)
	require.NoError(t, err)

	var reports []overload.Report
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "builtin", reports[0].Scenario)
	assert.Equal(t, 6, reports[0].Passed)
}

func TestRun_Mismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wrong.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`name: wrong
values:
  a: {trait1: 7}
  c: {trait1: 3}
calls:
  - op: f
    args: [{value: a, as: trait1}, {value: c, as: trait1}]
    expect: {intint: {left: 3, right: 7}}
`), 0644))

	out, err := execute(t, "run", path)
	assert.ErrorIs(t, err, core.ErrMismatch)
	assert.Contains(t, out, "wrong")
	assert.Contains(t, out, "0 passed, 1 failed")
	assert.Contains(t, out, "got IntInt(7, 3), want IntInt(3, 7)")
}

func TestRun_State(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`name: pairs
values:
  a: {trait1: 7}
  b: {trait2: asd}
  c: {trait1: 3}
calls:
  - op: f
    args: [{value: a, as: trait1}, {value: c, as: trait1}]
    expect: {intint: [7, 3]}
  - op: f_xor
    args: [{value: b, as: trait2}, {value: c, as: trait1}]
    expect: {strint: [asd, 3]}
`), 0644))

	out, err := execute(t, "run", "--state", path)
	require.NoError(t, err)
	assert.Contains(t, out, "pairs ("+path+"): 2 passed, 0 failed")
	assert.Contains(t, out, "graph TD")
	assert.Contains(t, out, "class engine_1 finished")
	assert.Contains(t, out, "last: pairs")
}

func TestRun_RequiresPattern(t *testing.T) {
	_, err := execute(t, "run")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "overload version "+strings.TrimSpace(overload.Version)+"\n", out)
}
