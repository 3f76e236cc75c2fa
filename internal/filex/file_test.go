package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureDir_RelativeResolvesAgainstCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureDir("downloads")
	require.NoError(t, err)

	want := filepath.Join(tmp, "downloads")
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}
}

func TestEnsureDir_AbsoluteAndNested(t *testing.T) {
	tmp := t.TempDir()
	want := filepath.Join(tmp, "a", "b")

	got, err := EnsureDir(want)
	require.NoError(t, err)
	require.Equal(t, want, got)

	again, err := EnsureDir(want)
	require.NoError(t, err)
	require.Equal(t, got, again)
}

func TestEnsureDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	require.NoError(t, os.WriteFile("downloads", []byte("x"), 0o660))

	_, err := EnsureDir("downloads")
	require.Error(t, err, "should fail when a file exists with the same name")
}

func TestUniquePath(t *testing.T) {
	tmp := t.TempDir()

	first := UniquePath(tmp, "inventory_export_2024-05-01.csv")
	require.Equal(t, filepath.Join(tmp, "inventory_export_2024-05-01.csv"), first)
	require.NoError(t, os.WriteFile(first, []byte("x"), 0o600))

	second := UniquePath(tmp, "inventory_export_2024-05-01.csv")
	require.Equal(t, filepath.Join(tmp, "inventory_export_2024-05-01 (1).csv"), second)
	require.NoError(t, os.WriteFile(second, []byte("x"), 0o600))

	require.Equal(t, filepath.Join(tmp, "inventory_export_2024-05-01 (2).csv"), UniquePath(tmp, "inventory_export_2024-05-01.csv"))
}
