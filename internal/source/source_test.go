package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lexgram/lexgram/internal/exc"
)

func TestFileString(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	file := NewFileString("/virtual.java", "package x;")
	require.Equal(t, "/virtual.java", file.Path(ctx))

	text, err := file.Text(ctx)
	require.NoError(t, err)
	require.Equal(t, "package x;", text)
}

func TestLoaderLocal(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "input.java"), []byte("x = 1;"), 0o644))

	loader := NewLoaderLocal(dir)
	file, err := loader.Open(ctx, "input.java")
	require.NoError(t, err)

	text, err := file.Text(ctx)
	require.NoError(t, err)
	require.Equal(t, "x = 1;", text)

	_, err = loader.Open(ctx, "missing.java")
	require.Error(t, err)
	e, ok := err.(exc.Exception)
	require.True(t, ok)
	require.Equal(t, exc.CodeFileNotFound, e.Code())
}

func TestLoaderMulti(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.java"), []byte("b"), 0o644))

	multi := LoaderMulti{
		NewLoaderLocal(filepath.Join(dir, "nope")),
		NewLoaderLocal(dir),
	}

	file, err := multi.Open(ctx, "b.java")
	require.NoError(t, err)
	text, err := file.Text(ctx)
	require.NoError(t, err)
	require.Equal(t, "b", text)

	_, err = multi.Open(ctx, "missing.java")
	require.Error(t, err)
}
