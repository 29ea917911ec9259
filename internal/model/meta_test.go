package model_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.xesthora.dev/xesthora/internal/model"
)

func TestLoadMeta_ParsesDeclaredUniverses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "meta.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
classes: ["X", "Y"]
days: ["Mo", "Tu"]
times: ["t1", "t2"]
playtime_name: recreo
`), 0o644))

	meta, err := model.LoadMeta(path)
	require.NoError(t, err)
	assert.Equal(t, []model.Calendar{"X", "Y"}, meta.Classes)
	assert.Equal(t, []model.Day{"Mo", "Tu"}, meta.Days)
	assert.Equal(t, []model.Time{"t1", "t2"}, meta.Times)
	assert.Equal(t, "recreo", meta.PlaytimeName)
}

func TestLoadMeta_DefaultsPlaytimeNameWhenAbsent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "meta.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
classes: ["X"]
days: ["Mo"]
times: ["t1"]
`), 0o644))

	meta, err := model.LoadMeta(path)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultPlaytimeName, meta.PlaytimeName)
}

func TestLoadMeta_MissingFileErrors(t *testing.T) {
	_, err := model.LoadMeta(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
