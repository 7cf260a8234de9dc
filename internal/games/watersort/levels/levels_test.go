package levels_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-watersort/internal/games/watersort/core"
	"github.com/vovakirdan/tui-watersort/internal/games/watersort/levels"
	"github.com/vovakirdan/tui-watersort/internal/games/watersort/levels/formats"
)

func TestBuiltinLevels(t *testing.T) {
	lvls, err := levels.Builtin().LoadAll()
	require.NoError(t, err)
	require.Len(t, lvls, 10)

	for i := 1; i < len(lvls); i++ {
		assert.Less(t, lvls[i-1].ID, lvls[i].ID, "levels not sorted")
	}

	for _, lvl := range lvls {
		_, err := lvl.NewState()
		assert.NoError(t, err, "level %s", lvl.ID)
		assert.NotEmpty(t, lvl.Name)
		assert.NotEmpty(t, lvl.Difficulty())
	}
}

func TestBuiltinLevelsSolvable(t *testing.T) {
	if testing.Short() {
		t.Skip("solving every level")
	}
	lvls, err := levels.Builtin().LoadAll()
	require.NoError(t, err)

	for _, lvl := range lvls {
		s, err := lvl.NewState()
		require.NoError(t, err)
		assert.NotEmpty(t, core.Solve(s), "level %s has no solution", lvl.ID)
	}
}

func TestLoadByID(t *testing.T) {
	lvl, err := levels.Builtin().LoadByID("09-nine-colors")
	require.NoError(t, err)
	assert.Equal(t, "Nine Colors", lvl.Name)
	assert.Equal(t, []string{"FHDB", "CEEE", "GDHD", "AGBF", "FGHA", "AGIE", "BCHD", "CIFI", "CABI", "", ""}, lvl.Vials)

	_, err = levels.Builtin().LoadByID("nope")
	assert.Error(t, err)
}

func TestLoaderSkipsInvalidFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"b.yaml":          {Data: []byte("id: b\nvials: [\"ABAB\", \"BABA\", \"\", \"\"]\n")},
		"a.yml":           {Data: []byte("id: a\nname: First\nvials: [\"AAAA\"]\n")},
		"bad-color.yaml":  {Data: []byte("id: c\nvials: [\"AAA\", \"A\", \"B\"]\n")},
		"no-id.yaml":      {Data: []byte("vials: [\"AAAA\"]\n")},
		"broken.yaml":     {Data: []byte("id: [\n")},
		"notes.txt":       {Data: []byte("id: d\n")},
		"sub/nested.yaml": {Data: []byte("id: e\nvials: [\"BBBB\", \"\"]\n")},
	}

	loader := &levels.Loader{FS: fsys, Root: "."}
	ids, err := loader.ListIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "e"}, ids)

	b, err := loader.LoadByID("b")
	require.NoError(t, err)
	assert.Equal(t, "b", b.Name, "name defaults to id")
}

func TestLoaderDirectory(t *testing.T) {
	dir := t.TempDir()
	data, err := formats.MarshalYAML(formats.Level{
		ID:    "custom",
		Name:  "Custom",
		Vials: []string{"ABAB", "BABA", "", ""},
	})
	require.NoError(t, err)
	writeFile(t, dir, "custom.yaml", data)

	lvl, err := levels.Open(dir).LoadByID("custom")
	require.NoError(t, err)
	assert.Equal(t, []string{"ABAB", "BABA", "", ""}, lvl.Vials)
	assert.Equal(t, "custom.yaml", lvl.FilePath)
}

func TestOpenEmptyUsesBuiltin(t *testing.T) {
	ids, err := levels.Open("").ListIDs()
	require.NoError(t, err)
	assert.Contains(t, ids, "01-warmup")
}

func TestPresets(t *testing.T) {
	assert.Equal(t, []int{9, 11, 14}, levels.PresetSizes())

	for _, n := range levels.PresetSizes() {
		p, ok := levels.Preset(n)
		require.True(t, ok)
		assert.Len(t, p, n)
		assert.NoError(t, core.ValidateVials(p))
	}

	_, ok := levels.Preset(10)
	assert.False(t, ok)

	p, _ := levels.Preset(9)
	p[0] = "XXXX"
	again, _ := levels.Preset(9)
	assert.Equal(t, "ABCD", again[0], "Preset must return a copy")
}

func TestNextPresetSize(t *testing.T) {
	assert.Equal(t, 11, levels.NextPresetSize(9))
	assert.Equal(t, 14, levels.NextPresetSize(11))
	assert.Equal(t, 9, levels.NextPresetSize(14))
	assert.Equal(t, 9, levels.NextPresetSize(5))
}
