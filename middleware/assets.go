package middleware

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// StaticAssets are the files served under /static that templates link to
var StaticAssets = []string{
	"css/site.css",
	"js/reveal.js",
	"images/favicon.svg",
}

var (
	assetVersions     map[string]string
	assetVersionsMu   sync.RWMutex
	assetVersionsOnce sync.Once
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions(staticDir string) {
	assetVersionsOnce.Do(func() {
		versions := make(map[string]string, len(StaticAssets))
		for _, name := range StaticAssets {
			versions[name] = computeFileHash(filepath.Join(staticDir, name))
		}

		assetVersionsMu.Lock()
		assetVersions = versions
		assetVersionsMu.Unlock()
		log.Printf("[INFO] Asset versions initialized: %d files", len(versions))
	})
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("[WARNING] Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		log.Printf("[WARNING] Failed to hash file %s: %v", path, err)
		return ""
	}

	// Return first 8 chars of the hash for brevity
	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// AssetVersion returns the version hash for a static file, or "1" when unknown.
// ctx is accepted for symmetry with the other template helpers.
func AssetVersion(ctx context.Context, name string) string {
	assetVersionsMu.RLock()
	defer assetVersionsMu.RUnlock()
	if v := assetVersions[name]; v != "" {
		return v
	}
	return "1"
}

// AssetURL returns the cache-busted URL of a static file
func AssetURL(ctx context.Context, name string) string {
	return "/static/" + name + "?v=" + AssetVersion(ctx, name)
}
