package csvsource_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"go.xesthora.dev/xesthora/internal/catalog/csvsource"
)

func TestReadRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rows.csv")
	require.NoError(t, os.WriteFile(path, []byte("calendar,task\nX,a\nY,b\n"), 0o644))

	header, rows, err := csvsource.ReadRows(path)
	require.NoError(t, err)
	require.Equal(t, []string{"calendar", "task"}, header)
	require.Len(t, rows, 2)
	require.Equal(t, "X", rows[0]["calendar"])
	require.Equal(t, "b", rows[1]["task"])
}

func TestReadRows_MalformedRowReturnsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rows.csv")
	// Second data row has an unterminated quote, a genuine parse error
	// distinct from end-of-file.
	require.NoError(t, os.WriteFile(path, []byte("calendar,task\nX,a\n\"unterminated,b\n"), 0o644))

	_, _, err := csvsource.ReadRows(path)
	require.Error(t, err)
}

func TestReadRows_MissingFile(t *testing.T) {
	_, _, err := csvsource.ReadRows("/nonexistent/path.csv")
	require.Error(t, err)
}
