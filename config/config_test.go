package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
)

func TestDefaults(t *testing.T) {
	wd, err := os.Getwd()
	assert.NotError(t, err)
	assert.NotError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })

	conf, err := Load(New(), "")
	assert.NotError(t, err)
	check.Equal(t, int64(1), conf.Min)
	check.Equal(t, int64(10000), conf.Max)
	check.Equal(t, uint64(0), conf.Seed)
	check.True(t, slices.Equal([]int{100, 1000, 5000, 10000}, conf.Sizes))
	check.True(t, !conf.Debug)
}

func TestFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.yaml")
	data := "min: 10\nmax: 20\nsizes: [5, 6]\nseed: 3\n"
	assert.NotError(t, os.WriteFile(path, []byte(data), 0o644))
	t.Setenv("LISTSORT_MAX", "30")
	t.Setenv("LISTSORT_DEBUG", "true")

	conf, err := Load(New(), path)
	assert.NotError(t, err)
	check.Equal(t, int64(10), conf.Min)
	check.Equal(t, int64(30), conf.Max)
	check.Equal(t, uint64(3), conf.Seed)
	check.True(t, slices.Equal([]int{5, 6}, conf.Sizes))
	check.True(t, conf.Debug)
}

func TestInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.yaml")
	assert.NotError(t, os.WriteFile(path, []byte("min: 9\nmax: 1\n"), 0o644))
	_, err := Load(New(), path)
	check.Error(t, err)

	_, err = Load(New(), filepath.Join(dir, "missing.yaml"))
	check.Error(t, err)

	check.Error(t, (&Config{Min: 1, Max: 2, Sizes: []int{0}}).Validate())
	check.Error(t, (&Config{Min: 1, Max: 2}).Validate())
}
