package middleware

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestComputeFileHash(t *testing.T) {
	// Create a temporary file for testing
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.css")
	content := []byte("body { color: red; }")
	if err := os.WriteFile(tmpFile, content, 0644); err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	// Test with existing file
	hash := computeFileHash(tmpFile)
	if hash == "" {
		t.Error("expected a hash, got empty string")
	}
	if len(hash) != 8 {
		t.Errorf("expected hash length 8, got %d", len(hash))
	}

	// Test with non-existent file
	hash = computeFileHash("non_existent_file.css")
	if hash != "" {
		t.Errorf("expected empty hash for non-existent file, got %s", hash)
	}
}

func TestAssetVersionUnknownFile(t *testing.T) {
	ctx := context.Background()

	if v := AssetVersion(ctx, "js/missing.js"); v != "1" {
		t.Errorf("expected default version 1, got %s", v)
	}
	if u := AssetURL(ctx, "js/missing.js"); u != "/static/js/missing.js?v=1" {
		t.Errorf("unexpected asset url %s", u)
	}
}

func TestInitAssetVersions(t *testing.T) {
	tmpDir := t.TempDir()
	jsPath := filepath.Join(tmpDir, "js", "reveal.js")
	if err := os.MkdirAll(filepath.Dir(jsPath), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(jsPath, []byte("console.log('reveal')"), 0644); err != nil {
		t.Fatal(err)
	}

	InitAssetVersions(tmpDir)

	ctx := context.Background()
	v := AssetVersion(ctx, "js/reveal.js")
	if len(v) != 8 {
		t.Errorf("expected hashed version, got %q", v)
	}
	if !strings.HasSuffix(AssetURL(ctx, "js/reveal.js"), "?v="+v) {
		t.Error("asset url does not carry the version")
	}
	if AssetVersion(ctx, "css/site.css") != "1" {
		t.Error("missing files fall back to version 1")
	}
}

func TestRevealScriptTracksHeaderBeforeCapabilityCheck(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "static", "js", "reveal.js"))
	if err != nil {
		t.Fatalf("failed to read reveal.js: %v", err)
	}
	script := string(data)

	initAt := strings.Index(script, "function init()")
	if initAt < 0 {
		t.Fatal("init not found")
	}
	body := script[initAt:]
	header := strings.Index(body, "trackHeader();")
	check := strings.Index(body, "typeof IntersectionObserver === 'undefined'")
	if header < 0 || check < 0 {
		t.Fatalf("expected header tracking and capability check in init, got header=%d check=%d", header, check)
	}
	if header > check {
		t.Error("header scroll tracking must not depend on IntersectionObserver support")
	}
}
