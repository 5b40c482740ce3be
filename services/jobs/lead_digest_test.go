package jobs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"autobot_site_go/config"
	"autobot_site_go/models"
	"autobot_site_go/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDigestTestDB(t *testing.T) *gorm.DB {
	dbName := "mem_" + uuid.New().String()
	db, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Lead{}))
	return db
}

func digestConfig() *config.Config {
	return &config.Config{
		AppURL:           "http://test.com",
		EmailTestMode:    true,
		SalesNotifyEmail: "sales@autobot.test",
	}
}

func TestSendLeadDigest(t *testing.T) {
	db := setupDigestTestDB(t)
	now := time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)

	db.Create(&models.Lead{Name: "Ada", Email: "ada@example.com", Source: models.LeadSourceContactForm, CreatedAt: now.Add(-2 * time.Hour)})
	db.Create(&models.Lead{Name: "Grace", Email: "grace@example.com", Source: models.LeadSourceContactForm, CreatedAt: now.Add(-20 * time.Hour)})
	// Outside the window
	db.Create(&models.Lead{Name: "Old", Email: "old@example.com", Source: models.LeadSourceContactForm, CreatedAt: now.Add(-30 * time.Hour)})

	dir := t.TempDir()
	previous := services.Storage
	services.Storage = services.NewLocalStorage(dir)
	defer func() { services.Storage = previous }()

	count, err := SendLeadDigest(context.Background(), db, digestConfig(), now)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	exports, err := filepath.Glob(filepath.Join(dir, "exports", "digest", "2026-05-04", "*.xlsx"))
	require.NoError(t, err)
	require.Len(t, exports, 1)

	info, err := os.Stat(exports[0])
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSendLeadDigestSkips(t *testing.T) {
	db := setupDigestTestDB(t)
	now := time.Now()

	t.Run("no leads", func(t *testing.T) {
		count, err := SendLeadDigest(context.Background(), db, digestConfig(), now)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("no sales inbox", func(t *testing.T) {
		db.Create(&models.Lead{Name: "Ada", Email: "ada@example.com", Source: models.LeadSourceContactForm})
		cfg := digestConfig()
		cfg.SalesNotifyEmail = ""

		count, err := SendLeadDigest(context.Background(), db, cfg, now)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestStartScheduler(t *testing.T) {
	db := setupDigestTestDB(t)

	cfg := digestConfig()
	cfg.LeadDigestSchedule = ""
	c, err := StartScheduler(db, cfg)
	require.NoError(t, err)
	assert.Nil(t, c)

	cfg.LeadDigestSchedule = "not a schedule"
	_, err = StartScheduler(db, cfg)
	assert.Error(t, err)

	cfg.LeadDigestSchedule = "0 8 * * *"
	cfg.Timezone = "Nowhere/Invalid"
	c, err = StartScheduler(db, cfg)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Len(t, c.Entries(), 1)
	c.Stop()
}
