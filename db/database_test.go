package db

import (
	"path/filepath"
	"testing"

	"autobot_site_go/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTursoDSN(t *testing.T) {
	dsn, err := TursoDSN("libsql://leads-acme.turso.io", "tok en")
	require.NoError(t, err)
	assert.Equal(t, "libsql://leads-acme.turso.io?authToken=tok+en", dsn)

	dsn, err = TursoDSN("libsql://leads-acme.turso.io", "")
	require.NoError(t, err)
	assert.Equal(t, "libsql://leads-acme.turso.io", dsn)

	_, err = TursoDSN("not a url", "x")
	assert.Error(t, err)
}

type probe struct {
	ID   uint
	Name string
}

func TestInitializeLocalSQLite(t *testing.T) {
	t.Cleanup(func() {
		Close()
		DB = nil
	})

	cfg := &config.Config{
		DBPath:      filepath.Join(t.TempDir(), "app.db"),
		Environment: "test",
	}
	require.NoError(t, Initialize(cfg))
	require.NoError(t, Ping())
	require.NoError(t, AutoMigrate(&probe{}))
	require.NoError(t, DB.Create(&probe{Name: "ok"}).Error)
}

func TestAutoMigrateRequiresConnection(t *testing.T) {
	DB = nil
	assert.Error(t, AutoMigrate(&probe{}))
	assert.Error(t, Ping())
	assert.NoError(t, Close())
}
