package fetch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemeURL(t *testing.T) {
	assert.Equal(t,
		"git::https://github.com/PrismarineJS/minecraft-data.git//data/pc/1.8",
		SchemeURL("https://github.com/PrismarineJS/minecraft-data.git", "pc", "1.8"))
}

func TestFile_Local(t *testing.T) {
	src := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(src, []byte(`{"blocks": []}`), 0o644))

	dst := filepath.Join(t.TempDir(), "copy.json")
	require.NoError(t, File(context.Background(), src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, `{"blocks": []}`, string(got))
}

func TestDir_Local(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "blocks.json"), []byte("[]"), 0o644))

	dst := filepath.Join(t.TempDir(), "pc-1.8")
	require.NoError(t, Dir(context.Background(), src, dst))

	_, err := os.Stat(filepath.Join(dst, "blocks.json"))
	assert.NoError(t, err)
}

func TestFile_Missing(t *testing.T) {
	err := File(context.Background(), filepath.Join(t.TempDir(), "nope"), filepath.Join(t.TempDir(), "x"))
	assert.Error(t, err)
}
