package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestHTTPCache_SaveAndLoad(t *testing.T) {
	c := &HTTPCache{Dir: t.TempDir()}
	ctx := context.Background()
	url := "https://example.test/menu"

	if err := c.Save(ctx, url, "text/html", `"v1"`, "Mon, 01 Jan 2026 00:00:00 GMT", []byte("<html>menu</html>")); err != nil {
		t.Fatalf("save: %v", err)
	}
	meta, err := c.LoadMeta(ctx, url)
	if err != nil {
		t.Fatalf("load meta: %v", err)
	}
	if meta.ETag != `"v1"` || meta.ContentType != "text/html" {
		t.Fatalf("meta = %+v", meta)
	}
	body, err := c.LoadBody(ctx, url)
	if err != nil {
		t.Fatalf("load body: %v", err)
	}
	if string(body) != "<html>menu</html>" {
		t.Fatalf("body = %q", body)
	}
}

func TestHTTPCache_MissIsError(t *testing.T) {
	c := &HTTPCache{Dir: t.TempDir()}
	if _, err := c.LoadMeta(context.Background(), "https://example.test/none"); err == nil {
		t.Fatal("expected miss error")
	}
}

func TestLLMCache_RoundTrip(t *testing.T) {
	c := &LLMCache{Dir: t.TempDir()}
	ctx := context.Background()
	key := LLMKey("test-model", "page text")

	if _, ok := c.Get(ctx, key); ok {
		t.Fatal("unexpected hit on empty cache")
	}
	if err := c.Save(ctx, key, []byte(`[{"name":"Tagesteller"}]`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok := c.Get(ctx, key)
	if !ok || string(got) != `[{"name":"Tagesteller"}]` {
		t.Fatalf("get = %q, %v", got, ok)
	}
}

func TestLLMKey_DependsOnModelAndPrompt(t *testing.T) {
	if LLMKey("a", "x") == LLMKey("b", "x") || LLMKey("a", "x") == LLMKey("a", "y") {
		t.Fatal("key collisions across model/prompt")
	}
}

func TestPurgeByAge(t *testing.T) {
	dir := t.TempDir()

	// An expired HTTP entry, written directly to control SavedAt.
	old := HTTPEntry{URL: "u", SavedAt: time.Now().UTC().Add(-48 * time.Hour)}
	data, _ := json.Marshal(old)
	if err := os.WriteFile(filepath.Join(dir, "deadbeef.meta.json"), data, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "deadbeef.body"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	// A fresh entry that must survive.
	c := &HTTPCache{Dir: dir}
	if err := c.Save(context.Background(), "https://example.test/fresh", "text/html", "", "", []byte("y")); err != nil {
		t.Fatal(err)
	}

	removed, err := PurgeByAge(dir, 24*time.Hour)
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d", removed)
	}
	if _, err := os.Stat(filepath.Join(dir, "deadbeef.body")); !os.IsNotExist(err) {
		t.Fatal("expired body still present")
	}
	if _, err := c.LoadBody(context.Background(), "https://example.test/fresh"); err != nil {
		t.Fatal("fresh entry purged")
	}
}

func TestClearDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	c := &HTTPCache{Dir: dir}
	if err := c.Save(context.Background(), "u", "text/html", "", "", []byte("x")); err != nil {
		t.Fatal(err)
	}
	if err := ClearDir(dir); err != nil {
		t.Fatalf("clear: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("dir not recreated: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("dir not empty after clear: %v", entries)
	}
}
