package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestConnectDatabaseSqlite(t *testing.T) {
	SetConfig(&Config{
		DatabaseDriver: "sqlite",
		DatabasePath:   filepath.Join(t.TempDir(), "superstore_test.db"),
	})
	defer func() {
		CloseDatabase()
		SetDB(nil)
		SetConfig(nil)
	}()

	require.NoError(t, ConnectDatabase())
	require.NotNil(t, GetDB())

	// foreign key enforcement must be on for the sqlite driver
	var enabled int
	require.NoError(t, GetDB().Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)
}

func TestGetAndSetDB(t *testing.T) {
	original := DB
	defer SetDB(original)

	SetDB(nil)
	assert.Nil(t, GetDB())

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	SetDB(db)
	assert.Equal(t, db, GetDB())
}

func TestCloseDatabaseWithoutConnection(t *testing.T) {
	original := DB
	defer SetDB(original)

	SetDB(nil)
	assert.NoError(t, CloseDatabase())
}
