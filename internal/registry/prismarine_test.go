package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blocksJSON = `[
  {"id": 0, "name": "air", "displayName": "Air", "hardness": 0, "stackSize": 0, "diggable": false,
   "boundingBox": "empty", "transparent": true, "emitLight": 0, "filterLight": 0},
  {"id": 1, "name": "stone", "displayName": "Stone", "hardness": 1.5, "stackSize": 64, "diggable": true,
   "boundingBox": "block", "material": "rock", "transparent": false, "emitLight": 0, "filterLight": 15,
   "variations": [
     {"metadata": 0, "displayName": "Stone"},
     {"metadata": 1, "displayName": "Granite"},
     {"metadata": 2, "displayName": "Polished Granite"}
   ]},
  {"id": 89, "name": "glowstone", "displayName": "Glowstone", "hardness": 0.3, "stackSize": 64, "diggable": true,
   "boundingBox": "block", "transparent": false, "emitLight": 15, "filterLight": 15}
]`

func writeScheme(t *testing.T, blocks string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "pc-1.8")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blocks.json"), []byte(blocks), 0o644))
	return dir
}

func TestFromPrismarine(t *testing.T) {
	snap, err := FromPrismarine(writeScheme(t, blocksJSON))
	require.NoError(t, err)

	assert.Equal(t, "pc-1.8", snap.Version)
	require.Len(t, snap.Blocks, 3)

	air := snap.Blocks[0]
	assert.Equal(t, "minecraft:air", air.Name)
	assert.False(t, air.Collidable)
	assert.Equal(t, "CUTOUT", air.RenderLayer)
	_, err = air.SubItemsByMeta()
	assert.ErrorIs(t, err, ErrNoItemForm)

	stone := snap.Blocks[1]
	assert.True(t, stone.OpaqueCube)
	assert.Equal(t, FullCube, stone.Bounds)
	assert.Equal(t, 15, stone.Opacity)
	s, err := stone.StateFromMeta(1)
	require.NoError(t, err)
	assert.Equal(t, "minecraft:stone[metadata=1]", s.Name)
	items, err := stone.SubItemsByMeta()
	require.NoError(t, err)
	assert.Equal(t, "Polished Granite", items[2].DisplayName)

	glow := snap.Blocks[2]
	assert.Equal(t, 15, glow.Brightness)
	assert.Equal(t, "minecraft:glowstone", glow.DefaultState)
}

func TestFromPrismarine_VersionFile(t *testing.T) {
	dir := writeScheme(t, blocksJSON)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "version.json"),
		[]byte(`{"version": 47, "minecraftVersion": "1.8.8", "majorVersion": "1.8"}`), 0o644))

	snap, err := FromPrismarine(dir)
	require.NoError(t, err)
	assert.Equal(t, "1.8.8", snap.Version)
}

func TestFromPrismarine_Flattened(t *testing.T) {
	dir := writeScheme(t, `[{"id": 1, "name": "stone", "displayName": "Stone", "defaultState": 1,
		"states": [], "boundingBox": "block"}]`)

	_, err := FromPrismarine(dir)
	assert.True(t, errors.Is(err, ErrFlattened))
}

func TestFromPrismarine_MissingFile(t *testing.T) {
	_, err := FromPrismarine(t.TempDir())
	assert.Error(t, err)
}
