package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersionInfoUsesLdflags(t *testing.T) {
	old := Version
	Version = "1.2.3"
	defer func() { Version = old }()

	info := GetVersionInfo()
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
}

func TestInfoString(t *testing.T) {
	i := Info{Version: "1.0.0", Branch: "main", Revision: "abc1234", BuiltAt: "now", GoVersion: "go1.24"}
	assert.Equal(t, "Version: 1.0.0\nBranch: main\nRevision: abc1234\nBuilt At: now\nGo Version: go1.24", i.String())
}

func TestInfoJSON(t *testing.T) {
	s, err := Info{Version: "1.0.0"}.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"1.0.0","branch":"","revision":"","builtAt":"","goVersion":""}`, s)
}
