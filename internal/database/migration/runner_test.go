package migration

import (
	"testing"
	"testing/fstest"

	"upath/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_OrdersByVersionAndSkipsOtherFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"V10__later.sql":   {Data: []byte("SELECT 10;")},
		"V2__second.sql":   {Data: []byte("  SELECT 2;\n")},
		"V1__first.sql":    {Data: []byte("SELECT 1;")},
		"README.md":        {Data: []byte("notes")},
		"embed.go":         {Data: []byte("package migrations")},
		"V3__nested.sql/x": {Data: []byte("ignored")},
	}

	migs, err := Load(fsys)
	require.NoError(t, err)
	require.Len(t, migs, 3)

	assert.Equal(t, []int64{1, 2, 10}, []int64{migs[0].Version, migs[1].Version, migs[2].Version})
	assert.Equal(t, "second", migs[1].Name)
	assert.Equal(t, "SELECT 2;", migs[1].SQL)
	assert.Len(t, migs[0].Checksum, 64)
}

func TestLoad_ChecksumIgnoresSurroundingWhitespace(t *testing.T) {
	a, err := Load(fstest.MapFS{"V1__a.sql": {Data: []byte("SELECT 1;")}})
	require.NoError(t, err)
	b, err := Load(fstest.MapFS{"V1__a.sql": {Data: []byte("\n\nSELECT 1;\n")}})
	require.NoError(t, err)
	assert.Equal(t, a[0].Checksum, b[0].Checksum)
}

func TestLoad_RejectsDuplicatesAndEmptyFiles(t *testing.T) {
	_, err := Load(fstest.MapFS{
		"V1__a.sql":  {Data: []byte("SELECT 1;")},
		"V01__b.sql": {Data: []byte("SELECT 2;")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate migration version")

	_, err = Load(fstest.MapFS{"V1__empty.sql": {Data: []byte("   ")}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty migration file")
}

func TestLoad_MissingDirectory(t *testing.T) {
	migs, err := Load(Runner{Dir: t.TempDir() + "/nope"}.source())
	require.NoError(t, err)
	assert.Empty(t, migs)
}

func TestLoad_EmbeddedMigrations(t *testing.T) {
	migs, err := Load(migrations.FS)
	require.NoError(t, err)
	require.NotEmpty(t, migs)
	assert.Equal(t, int64(1), migs[0].Version)
	assert.Contains(t, migs[0].SQL, "CREATE TABLE IF NOT EXISTS meetings")
}
