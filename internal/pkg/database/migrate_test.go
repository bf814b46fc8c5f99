package database

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationVersions_SortedAndFiltered(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/0002_loans.sql":  {Data: []byte("SELECT 1")},
		"migrations/0001_init.sql":   {Data: []byte("SELECT 1")},
		"migrations/README.md":       {Data: []byte("notes")},
		"migrations/nested/0003.sql": {Data: []byte("SELECT 1")},
	}

	versions, err := migrationVersions(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_init", "0002_loans"}, versions)
}

func TestMigrationVersions_Embedded(t *testing.T) {
	versions, err := migrationVersions(migrationFiles)
	require.NoError(t, err)
	require.NotEmpty(t, versions)
	assert.Equal(t, "0001_init", versions[0])
}
