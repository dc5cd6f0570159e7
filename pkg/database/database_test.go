package database

import (
	"career_compass_backend/internal/config"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMySQLDSN(t *testing.T) {
	dsn := mysqlDSN(&config.DatabaseConfig{
		Host:      "db",
		Port:      3306,
		User:      "app",
		Password:  "p@ss",
		DBName:    "career_compass",
		ParseTime: true,
	})

	assert.Contains(t, dsn, "app:p@ss@tcp(db:3306)/career_compass")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "charset=utf8mb4")
}

func TestOpenSQLiteMigrates(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	for _, table := range []string{"users", "user_sessions", "quiz_results"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestInitDBRejectsUnknownDriver(t *testing.T) {
	_, err := InitDB(&config.DatabaseConfig{Driver: "oracle"}, "test")
	assert.Error(t, err)
}
