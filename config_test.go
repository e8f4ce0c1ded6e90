package tabular_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/brimdata/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestParseConfig(t *testing.T) {
	c, err := tabular.ParseConfig([]byte("max_problems: 5\n"))
	require.NoError(t, err)
	assert.Equal(t, 5, c.MaxProblems)
	assert.Equal(t, tabular.DefaultMinGrowth, c.MinGrowth)
	assert.Equal(t, tabular.DefaultInitialCapacity, c.InitialCapacity)

	_, err = tabular.ParseConfig([]byte("max_problems: [\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, tabular.DefaultConfig().Validate())
	_, err := tabular.ParseConfig([]byte("max_problems: 0\nmin_growth: -1\ninitial_capacity: -1\n"))
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)
	assert.Contains(t, err.Error(), "max_problems must be positive (got 0)")
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tabular.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min_growth: 0\n"), 0644))
	_, err := tabular.LoadConfig(path)
	assert.ErrorContains(t, err, path+": min_growth must be positive")
	_, err = tabular.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSetFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tabular.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_problems: 7\nmin_growth: 9\n"), 0644))
	var c tabular.Config
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.SetFlags(fs)
	require.NoError(t, fs.Parse([]string{"-config", path, "-mingrowth", "3"}))
	assert.Equal(t, 7, c.MaxProblems)
	assert.Equal(t, 3, c.MinGrowth)
	assert.Equal(t, tabular.DefaultInitialCapacity, c.InitialCapacity)
}
