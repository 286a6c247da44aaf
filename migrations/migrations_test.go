package migrations

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledMigrations(t *testing.T) {
	migrations, err := readMigrationFiles(migrationFiles)
	require.NoError(t, err)
	require.Len(t, migrations, 2)

	assert.Equal(t, 1, migrations[0].Version)
	assert.Equal(t, "create_saved_palettes", migrations[0].Name)
	assert.Contains(t, migrations[0].SQL, "saved_palettes")
	assert.Equal(t, 2, migrations[1].Version)
	assert.Contains(t, migrations[1].SQL, "UNIQUE")
}

func TestReadMigrationFilesSortsAndSkips(t *testing.T) {
	fsys := fstest.MapFS{
		"010_later.sql":  {Data: []byte("SELECT 10;")},
		"002_second.sql": {Data: []byte("SELECT 2;")},
		"notes.sql":      {Data: []byte("-- no version")},
		"README.md":      {Data: []byte("ignored")},
	}

	migrations, err := readMigrationFiles(fsys)
	require.NoError(t, err)
	require.Len(t, migrations, 2)
	assert.Equal(t, "second", migrations[0].Name)
	assert.Equal(t, 10, migrations[1].Version)
}

func TestUnappliedKeepsVersionOrder(t *testing.T) {
	all, err := readMigrationFiles(migrationFiles)
	require.NoError(t, err)

	pending := unapplied(all, map[int]bool{1: true})
	require.Len(t, pending, 1)
	assert.Equal(t, 2, pending[0].Version)

	assert.Len(t, unapplied(all, map[int]bool{}), 2)
	assert.Empty(t, unapplied(all, map[int]bool{1: true, 2: true}))
}
