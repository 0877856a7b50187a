package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pershom/diagram"
)

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestCompute_Tetrahedron(t *testing.T) {
	out, _, err := run(t, "", "compute", filepath.Join("testdata", "tetrahedron.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "0 0 inf\n", out)
}

func TestCompute_FlagOverrides(t *testing.T) {
	out, _, err := run(t, "", "compute", "-m", "0.1", "-p", "2", filepath.Join("testdata", "square.yaml"))
	require.NoError(t, err)

	d, err := diagram.Read(strings.NewReader(out), 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, d.Betti()[:1])
	loops := d.InDimension(1)
	require.Len(t, loops, 1)
	assert.Equal(t, 1.0, loops[0].Birth)
	assert.InDelta(t, 1.4142135623730951, loops[0].Death, 1e-12)

	_, _, err = run(t, "", "compute", "-p", "6", filepath.Join("testdata", "square.yaml"))
	assert.ErrorIs(t, err, ErrInvalidJob)

	out, _, err = run(t, "", "compute", "--essentials=false", "-m", "0.1", filepath.Join("testdata", "square.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, "\n"))
	assert.Equal(t, 3, strings.Count(out, "0 0 1\n"))
	assert.Contains(t, out, "1 1 1.4142135623730951\n")
}

func TestCompute_SeveralJobsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	_, _, err := run(t, "", "compute", "--parallel", "2", "-o", path,
		filepath.Join("testdata", "torus3.yaml"), filepath.Join("testdata", "tetrahedron.yaml"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, "# torus3\n"))
	assert.Contains(t, text, "# tetrahedron\n0 0 inf\n")

	out, _, err := run(t, text, "inspect", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "betti: [2 3 3 1]")
}

func TestCompute_Errors(t *testing.T) {
	_, _, err := run(t, "", "compute")
	require.Error(t, err)

	_, _, err = run(t, "", "compute", filepath.Join("testdata", "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "", "compute", "--log-level", "loud", filepath.Join("testdata", "torus3.yaml"))
	require.Error(t, err)
}

func TestCompute_TelemetryAndLogs(t *testing.T) {
	_, stderr, err := run(t, "", "--log-level", "info", "--log-json",
		"compute", "--trace", "--metrics", filepath.Join("testdata", "torus3.yaml"))
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"compute completed"`)
	assert.Contains(t, stderr, "Persistence.Compute")
	assert.Contains(t, stderr, "# metric pershom_compute")
}

func TestInspect(t *testing.T) {
	in := "# dim birth death\n0 0 inf\n0 0 0.5\n1 0.5 2\n1 1 inf\n11 2 3 3.25\n"
	out, _, err := run(t, in, "inspect", "-")
	require.NoError(t, err)
	assert.Equal(t, "pairs: 5\n"+
		"dim 0: pairs=2 essential=1 longest=0.5\n"+
		"dim 1: pairs=2 essential=1 longest=1.5\n"+
		"dim 2: pairs=1 essential=0 longest=0.25\n"+
		"betti: [1 1 0]\n", out)

	out, _, err = run(t, in, "inspect", "-m", "1", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "pairs: 3\n")

	_, _, err = run(t, "0 2 1\n", "inspect", "-")
	assert.ErrorIs(t, err, diagram.ErrParse)

	_, _, err = run(t, in, "inspect", "-m", "-1", "-")
	require.Error(t, err)
}
