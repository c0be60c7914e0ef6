// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlasm/internal/app"
)

func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), args, app.Streams{Stdout: &stdout, Stderr: &stderr})
	return code, stdout.String(), stderr.String()
}

func TestVersion(t *testing.T) {
	code, out, _ := execute(t, "version")
	require.Zero(t, code)
	assert.True(t, strings.HasPrefix(out, "lvlasm dev "), out)
}

func TestSimulateThenAssemble(t *testing.T) {
	dir := t.TempDir()
	fq := filepath.Join(dir, "reads.fq")

	code, out, errOut := execute(t, "simulate",
		"--genome-length", "600", "--read-length", "80", "--step", "4", "--seed", "3", "-o", fq)
	require.Zero(t, code, errOut)
	require.Empty(t, out)
	raw, err := os.ReadFile(fq)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(raw, []byte("@sim1\n")))

	dot := filepath.Join(dir, "graph.dot")
	code, out, errOut = execute(t, "assemble", "-k", "25", "--capacity", "0", "--dot", dot, fq)
	require.Zero(t, code, errOut)
	fields := strings.Split(strings.TrimSpace(out), "\t")
	require.Len(t, fields, 6, out)
	assert.Equal(t, "tig1", fields[0])
	assert.Equal(t, "600", fields[4])
	assert.Contains(t, errOut, "summary")
	assert.FileExists(t, dot)
}

func TestConfigFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "lvlasm.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("simulate:\n  genome-length: 40\n  read-length: 20\n"), 0o600))
	t.Setenv("LVLASM_SIMULATE_STEP", "10")

	code, out, errOut := execute(t, "simulate", "--config", cfgFile, "--both-strands=false")
	require.Zero(t, code, errOut)
	// starts 0, 10, 20
	assert.Equal(t, 3, strings.Count(out, "\n+\n"))

	// flags beat the environment
	code, out, _ = execute(t, "simulate", "--config", cfgFile, "--step", "20")
	require.Zero(t, code)
	assert.Equal(t, 2, strings.Count(out, "\n+\n"))
}

func TestErrorsExitNonZero(t *testing.T) {
	code, _, errOut := execute(t, "assemble")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "lvlasm failed")

	code, _, _ = execute(t, "assemble", "-k", "30", "reads.fq")
	assert.Equal(t, 1, code)

	code, _, _ = execute(t, "simulate", "--error-rate", "3")
	assert.Equal(t, 1, code)
}
