package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"go.xesthora.dev/xesthora/internal/catalog"
	"go.xesthora.dev/xesthora/internal/catalog/csvsource"
)

func TestLoad_DecodesValidatesAndBuildsTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rows.csv")
	require.NoError(t, os.WriteFile(path, []byte("calendar,count\nX,\nY,3\n"), 0o644))

	tbl, err := catalog.Load(path, csvsource.ReadRows, exampleSchema(), func(r map[string]string) (row, error) {
		return row{Key: r["calendar"], Value: len(r["count"])}, nil
	}, keyOf, less, nil)
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())
}

func TestLoad_RejectsMissingRequiredColumn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rows.csv")
	require.NoError(t, os.WriteFile(path, []byte("count\n3\n"), 0o644))

	_, err := catalog.Load(path, csvsource.ReadRows, exampleSchema(), func(r map[string]string) (row, error) {
		return row{Key: r["calendar"]}, nil
	}, keyOf, less, nil)
	require.Error(t, err)
}
