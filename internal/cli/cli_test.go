// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/oset/internal/cli"
	"code.hybscloud.com/oset/internal/config"
)

// clearEnv unsets every OSET_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		config.EnvPresents, config.EnvSeed, config.EnvPopulators, config.EnvMode,
		config.EnvDuplicates, config.EnvSpin, config.EnvNonBlocking,
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	clearEnv(t)
	var stdout, stderr bytes.Buffer
	code := cli.Run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestScenario(t *testing.T) {
	for _, args := range [][]string{
		{"scenario"},
		{"scenario", "--spin"},
		{"scenario", "-d", "reject"},
	} {
		code, stdout, _ := run(t, args...)
		assert.Equal(t, cli.ExitOK, code, "%v", args)
		assert.Equal(t, `inserted: [1 2 3 4 5]
remove 5: true
remove 3: true
remove 1: true
remove 3: false
remaining: [2 4]
`, stdout, "%v", args)
	}
}

func TestRunSequential(t *testing.T) {
	code, stdout, stderr := run(t, "--no-color", "run", "-n", "300", "--mode", "sequential", "--seed", "4")
	assert.Equal(t, cli.ExitOK, code, stderr)
	assert.Contains(t, stdout, "All presents have 'Thank you' notes.")
	assert.Contains(t, stdout, "All presents were found in the linked list.")
	assert.Regexp(t, `It took \d+\.\d{3} seconds for the program to execute`, stdout)
	assert.Contains(t, stderr, "run started")
	assert.Contains(t, stderr, "run finished")
}

func TestRunConcurrentExitCode(t *testing.T) {
	code, stdout, stderr := run(t, "run", "-n", "500", "-p", "2")
	if code == cli.ExitOK {
		assert.NotContains(t, stdout, "Error:")
		return
	}
	assert.Equal(t, cli.ExitFailure, code)
	assert.Contains(t, stdout, "Error: Not all presents")
	assert.Contains(t, stderr, "not all presents accounted for")
}

func TestRunConfigLayers(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "presents.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("presents: 100000\nmode: sequential\n"), 0o644))
	envPath := filepath.Join(dir, "presents.env")
	require.NoError(t, os.WriteFile(envPath, []byte("OSET_PRESENTS=200\nOSET_DUPLICATES=coalesce\n"), 0o644))

	cmd := cli.NewOptions(&bytes.Buffer{}, &bytes.Buffer{}).Run
	cmd.Config = cfgPath
	cmd.EnvFiles = []string{envPath}
	populators := 2
	cmd.Populators = &populators

	clearEnv(t)
	cfg, err := cmd.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Presents)
	assert.Equal(t, 2, cfg.Populators)
	assert.Equal(t, config.ModeSequential, cfg.Mode)
	assert.Equal(t, "coalesce", cfg.Duplicates)
}

func TestUsage(t *testing.T) {
	code, stdout, _ := run(t, "--help")
	assert.Equal(t, cli.ExitOK, code)
	assert.Contains(t, stdout, "scenario")

	code, _, stderr := run(t, "run", "--mode", "backwards")
	assert.Equal(t, cli.ExitUsage, code)
	assert.NotEmpty(t, stderr)

	code, _, _ = run(t, "bogus")
	assert.Equal(t, cli.ExitUsage, code)
}

func TestRunInvalidConfig(t *testing.T) {
	code, _, stderr := run(t, "--no-color", "run", "-n", "0")
	assert.Equal(t, cli.ExitFailure, code)
	assert.Contains(t, stderr, "presents must be positive")
}
