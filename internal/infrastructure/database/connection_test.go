package database_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstapl/osrs-gph/internal/adapters/persistence"
	"github.com/dstapl/osrs-gph/internal/infrastructure/config"
	"github.com/dstapl/osrs-gph/internal/infrastructure/database"
)

func TestNewTestConnection_MigratesSchema(t *testing.T) {
	db, err := database.NewTestConnection()
	require.NoError(t, err)
	defer database.Close(db)

	assert.True(t, db.Migrator().HasTable(&persistence.ItemPriceModel{}))
	assert.True(t, db.Migrator().HasTable(&persistence.SnapshotMetaModel{}))
}

func TestNewConnection_SQLiteFileCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prices.db")

	db, err := database.NewConnection(&config.DatabaseConfig{Type: "sqlite", Path: path})
	require.NoError(t, err)
	defer database.Close(db)

	assert.FileExists(t, path)
}

func TestNewConnection_UnsupportedType(t *testing.T) {
	_, err := database.NewConnection(&config.DatabaseConfig{Type: "mysql"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database type")
}
