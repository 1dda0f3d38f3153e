package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/randomizedcoder/dispatch-benchmarks/internal/suite"
)

var lineRE = regexp.MustCompile(`^(Dynamic \(virtual\)|Static \(CRTP\)): \d+ msecs$`)

func TestRun_DefaultOutput(t *testing.T) {
	cfg := suite.Defaults()
	cfg.Iterations = 300

	var out bytes.Buffer
	require.NoError(t, run(cfg, "", &out, zap.NewNop()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Dynamic (virtual): "), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Static (CRTP): "), lines[1])
	for _, l := range lines {
		assert.Regexp(t, lineRE, l)
	}
}

func TestRun_MetricsAndProfile(t *testing.T) {
	dir := t.TempDir()
	cfg := suite.Defaults()
	cfg.Iterations = 200
	cfg.Cases = []string{suite.Direct}
	cfg.Verify = true
	cfg.Format = suite.FormatJSON
	cfg.MetricsOut = filepath.Join(dir, "dispatch.prom")

	var out bytes.Buffer
	require.NoError(t, run(cfg, dir, &out, zap.NewNop()))

	assert.Contains(t, out.String(), `"case":"direct"`)

	raw, err := os.ReadFile(cfg.MetricsOut)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `dispatch_runs_total{case="direct"} 1`)

	_, err = os.Stat(filepath.Join(dir, "cpu.pprof"))
	assert.NoError(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"static", "dynamic"}, splitList(" static, ,dynamic "))
	assert.Nil(t, splitList(""))
}
