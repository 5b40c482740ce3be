package services

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage(t *testing.T) {
	dir := t.TempDir()
	storage := NewLocalStorage(dir)
	ctx := context.Background()
	key := "exports/leads/2026-10-18/book.xlsx"

	t.Run("Put writes below the export directory", func(t *testing.T) {
		stored, err := storage.Put(ctx, key, strings.NewReader("PK workbook"), 11)
		require.NoError(t, err)
		assert.Equal(t, key, stored.Key)
		assert.Equal(t, int64(11), stored.Size)

		_, err = os.Stat(filepath.Join(dir, "exports", "leads", "2026-10-18", "book.xlsx"))
		assert.NoError(t, err)
	})

	t.Run("Get reads it back", func(t *testing.T) {
		reader, err := storage.Get(ctx, key)
		require.NoError(t, err)
		defer reader.Close()

		got, err := io.ReadAll(reader)
		require.NoError(t, err)
		assert.Equal(t, "PK workbook", string(got))

		_, err = storage.Get(ctx, "exports/leads/missing.xlsx")
		assert.Error(t, err)
	})

	t.Run("Link points at the file", func(t *testing.T) {
		link, err := storage.Link(ctx, key, time.Hour)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(link, "file://"))
		assert.True(t, strings.HasSuffix(link, "/exports/leads/2026-10-18/book.xlsx"))
	})

	t.Run("Delete is idempotent", func(t *testing.T) {
		assert.NoError(t, storage.Delete(ctx, key))
		_, err := os.Stat(filepath.Join(dir, key))
		assert.True(t, os.IsNotExist(err))
		assert.NoError(t, storage.Delete(ctx, key))
	})
}

func TestExportContentType(t *testing.T) {
	assert.Equal(t, XLSXContentType, exportContentType("exports/a.xlsx"))
	assert.Equal(t, XLSXContentType, exportContentType("exports/a.XLSX"))
	assert.Equal(t, "application/octet-stream", exportContentType("exports/a.bin"))
}

func TestGenerateExportKey(t *testing.T) {
	at := time.Date(2026, 10, 18, 23, 30, 0, 0, time.UTC)
	key := GenerateExportKey("leads", at, ".xlsx")

	pattern := regexp.MustCompile(`^exports/leads/2026-10-18/[0-9a-f-]{36}\.xlsx$`)
	assert.Regexp(t, pattern, key)
	assert.NotEqual(t, key, GenerateExportKey("leads", at, ".xlsx"))
}
