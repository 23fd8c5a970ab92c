package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_ReplacesFiles(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "minecraft_raw_1_11.json")
	require.NoError(t, os.WriteFile(stale, []byte("stale content that is longer than nothing"), 0o644))

	res := mustExporter(t, "1.11").Export(testSnapshot())
	require.NoError(t, res.Write(dir))

	for _, a := range res.Artifacts() {
		got, err := os.ReadFile(filepath.Join(dir, a.Name))
		require.NoError(t, err)
		assert.Equal(t, string(a.Data), string(got))
	}

	ids, err := os.ReadFile(filepath.Join(dir, "idmapping_raw_1_11.json"))
	require.NoError(t, err)
	assert.Equal(t, "[\n"+
		"[0, 0, \"minecraft:air\"],\n"+
		"[1, 0, \"minecraft:stone[variant=stone]\"],\n"+
		"[1, 1, \"minecraft:stone[variant=granite]\"],\n"+
		"[1, 2, \"minecraft:stone[variant=smooth_granite]\"]\n"+
		"]\n", string(ids))

	_, err = os.Stat(filepath.Join(dir, "hiddenstates_1_11.json"))
	assert.NoError(t, err)
}

func TestWrite_MissingDir(t *testing.T) {
	res := mustExporter(t, "1.8").Export(testSnapshot())
	err := res.Write(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestDump_SwallowsWriteErrors(t *testing.T) {
	e := mustExporter(t, "1.8")
	report := e.Dump(testSnapshot(), filepath.Join(t.TempDir(), "missing"))

	assert.Equal(t, 2, report.Blocks)
	assert.Equal(t, 4, report.Variants)
}

func TestDump_WritesLegacyNames(t *testing.T) {
	dir := t.TempDir()
	mustExporter(t, "1.8").Dump(testSnapshot(), dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"idmapping_raw.json", "minecraft_raw.json"}, names)
}
