package assets

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"sbc/config"
)

func TestKey(t *testing.T) {
	k := Key("openverse", "gatos", config.OrientationLandscape)
	if !regexp.MustCompile(`^[0-9a-f]{16}$`).MatchString(k) {
		t.Fatalf("Key() = %q, want 16 hex chars", k)
	}
	if k != Key("openverse", "gatos", config.OrientationLandscape) {
		t.Error("key not stable for identical parameters")
	}
	others := []string{
		Key("unsplash", "gatos", config.OrientationLandscape),
		Key("openverse", "perros", config.OrientationLandscape),
		Key("openverse", "gatos", config.OrientationPortrait),
	}
	for i, o := range others {
		if o == k {
			t.Errorf("variant %d collides with base key", i)
		}
	}
}

func TestCacheRoundTrip(t *testing.T) {
	c, err := OpenCache(t.TempDir(), "Curso Demo", false, zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	meta := Meta{
		Provider:    "openverse",
		Query:       "gatos",
		Orientation: "landscape",
		Ext:         "png",
		SourceURL:   "https://example.org/cat",
		Attribution: []string{"Imagen: gato"},
	}
	key := Key(meta.Provider, meta.Query, config.OrientationLandscape)
	data := []byte("not really a png")

	if _, ok := c.Lookup(key); ok {
		t.Fatal("lookup hit before store")
	}

	stored, err := c.Store(key, data, meta)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := c.Lookup(key)
	if !ok {
		t.Fatal("lookup miss after store")
	}
	if got.Path != stored.Path {
		t.Errorf("path = %q, stored as %q", got.Path, stored.Path)
	}
	if got.Meta.Query != meta.Query || got.Meta.SourceURL != meta.SourceURL ||
		len(got.Meta.Attribution) != 1 || got.Meta.Attribution[0] != meta.Attribution[0] {
		t.Errorf("meta = %+v", got.Meta)
	}
	onDisk, err := os.ReadFile(got.Path)
	if err != nil {
		t.Fatal(err)
	}
	if string(onDisk) != string(data) {
		t.Error("stored binary differs from input")
	}
}

func TestCacheLookupRejectsIncomplete(t *testing.T) {
	c, err := OpenCache(t.TempDir(), "x", false, zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	// corrupt sidecar
	if err := os.WriteFile(filepath.Join(c.dir, "aaaa.meta.json"), []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Lookup("aaaa"); ok {
		t.Error("lookup accepted corrupt sidecar")
	}

	// sidecar without binary
	if err := os.WriteFile(filepath.Join(c.dir, "bbbb.meta.json"), []byte(`{"ext":"png"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Lookup("bbbb"); ok {
		t.Error("lookup accepted sidecar with missing binary")
	}
}

func TestOpenCacheNamespace(t *testing.T) {
	root := t.TempDir()
	c, err := OpenCache(root, "Curso de Diseño", false, zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	if filepath.Base(c.dir) != "curso-de-diseno" {
		t.Errorf("namespace dir = %q", filepath.Base(c.dir))
	}

	d, err := OpenCache(root, "", false, zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()
	if filepath.Base(d.dir) != "default" {
		t.Errorf("empty namespace dir = %q", filepath.Base(d.dir))
	}
}

func TestCacheWithIndex(t *testing.T) {
	c, err := OpenCache(t.TempDir(), "indexed", true, zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if c.index == nil {
		t.Fatal("index not opened")
	}
	if _, err := c.Store("dddd", []byte("data"), Meta{Query: "gatos", Ext: "png"}); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Lookup("dddd"); !ok {
		t.Fatal("lookup miss after indexed store")
	}
	if _, err := os.Stat(filepath.Join(c.dir, "index.db")); err != nil {
		t.Errorf("index database missing: %v", err)
	}
}

func TestStoreLeavesNoTempFiles(t *testing.T) {
	c, err := OpenCache(t.TempDir(), "x", false, zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if _, err := c.Store("cccc", []byte("data"), Meta{Ext: "jpg"}); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}
