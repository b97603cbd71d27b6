package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionDefault(t *testing.T) {
	SetVersionInfo("dev", "none", "unknown")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"version"})
	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, "bookrange dev (commit: none, built: unknown)\n", buf.String())
}

func TestVersionRelease(t *testing.T) {
	SetVersionInfo("1.0.0", "abc1234", "2025-01-01")
	t.Cleanup(func() { SetVersionInfo("dev", "none", "unknown") })

	buf := new(bytes.Buffer)
	versionCmd.SetOut(buf)
	t.Cleanup(func() { versionCmd.SetOut(nil) })

	require.NoError(t, runVersion(versionCmd, false))
	assert.Equal(t, "bookrange 1.0.0 (commit: abc1234, built: 2025-01-01)\n", buf.String())
}

func TestVersionShort(t *testing.T) {
	SetVersionInfo("1.2.3", "abc1234", "2025-01-01")
	t.Cleanup(func() { SetVersionInfo("dev", "none", "unknown") })

	buf := new(bytes.Buffer)
	versionCmd.SetOut(buf)
	t.Cleanup(func() { versionCmd.SetOut(nil) })

	require.NoError(t, runVersion(versionCmd, true))
	assert.Equal(t, "1.2.3\n", buf.String())
}
