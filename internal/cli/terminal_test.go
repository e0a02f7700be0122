// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))

	f, err := os.Create(filepath.Join(t.TempDir(), "log"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isTerminal(f))

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()
	assert.False(t, isTerminal(w))
}

func TestLoggerNoColorOffTerminal(t *testing.T) {
	var stderr bytes.Buffer
	opts := NewOptions(&bytes.Buffer{}, &stderr)

	opts.Logger().Info("run started", "presents", 3)

	assert.Contains(t, stderr.String(), "run started")
	assert.NotContains(t, stderr.String(), "\x1b[")
}
