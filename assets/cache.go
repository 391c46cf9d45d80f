package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"sbc/config"
)

// Cache is a content-addressed asset store: one directory per course
// namespace, files named by a 16-hex-char hash of (provider, query,
// orientation), each binary paired with a <hash>.meta.json sidecar. Entries
// do not belong to any single document and survive across runs.
type Cache struct {
	dir   string
	log   *zap.Logger
	index *index
}

// Meta is the sidecar recording how the asset was resolved.
type Meta struct {
	Provider    string   `json:"provider"`
	Query       string   `json:"query"`
	Orientation string   `json:"orientation"`
	Ext         string   `json:"ext"`
	SourceURL   string   `json:"source_url,omitempty"`
	Attribution []string `json:"attribution,omitempty"`
}

// Entry is one cached asset on disk.
type Entry struct {
	Path string
	Meta Meta
}

// OpenCache prepares the per-namespace cache directory.
func OpenCache(root, namespace string, withIndex bool, log *zap.Logger) (*Cache, error) {
	ns := slug.Make(namespace)
	if ns == "" {
		ns = "default"
	}
	dir := filepath.Join(root, ns)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("unable to create cache directory %q: %w", dir, err)
	}

	c := &Cache{dir: dir, log: log.Named("cache")}
	if withIndex {
		idx, err := openIndex(filepath.Join(dir, "index.db"))
		if err != nil {
			// index is bookkeeping, the file cache works without it
			c.log.Warn("Unable to open cache index, continuing without", zap.Error(err))
		} else {
			c.index = idx
		}
	}
	return c, nil
}

// Close releases the optional index.
func (c *Cache) Close() error {
	if c.index != nil {
		return c.index.close()
	}
	return nil
}

// Key derives the stable content-address for resolution parameters.
func Key(provider, query string, orientation config.Orientation) string {
	h := sha256.New()
	h.Write([]byte(provider))
	h.Write([]byte{0})
	h.Write([]byte(query))
	h.Write([]byte{0})
	h.Write([]byte(orientation.String()))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// Lookup returns the cached entry for key on an exact match.
func (c *Cache) Lookup(key string) (*Entry, bool) {
	data, err := os.ReadFile(filepath.Join(c.dir, key+".meta.json"))
	if err != nil {
		return nil, false
	}
	var meta Meta
	if err := json.Unmarshal(data, &meta); err != nil {
		c.log.Debug("Corrupt cache sidecar", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	path := filepath.Join(c.dir, key+"."+meta.Ext)
	if _, err := os.Stat(path); err != nil {
		return nil, false
	}
	c.touch(key)
	return &Entry{Path: path, Meta: meta}, true
}

// Store persists binary and sidecar under the key. Both files are written to
// temporary names and renamed so a concurrent duplicate request never
// observes a partially written entry; binary lands first so a visible
// sidecar always implies a complete asset.
func (c *Cache) Store(key string, data []byte, meta Meta) (*Entry, error) {
	path := filepath.Join(c.dir, key+"."+meta.Ext)
	if err := writeAtomic(path, data); err != nil {
		return nil, err
	}

	side, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := writeAtomic(filepath.Join(c.dir, key+".meta.json"), side); err != nil {
		return nil, err
	}

	c.record(key, meta)
	return &Entry{Path: path, Meta: meta}, nil
}

func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp-" + uuid.NewString()
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func (c *Cache) touch(key string) {
	if c.index == nil {
		return
	}
	if err := c.index.touch(key); err != nil {
		c.log.Debug("Unable to update cache index", zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) record(key string, meta Meta) {
	if c.index == nil {
		return
	}
	if err := c.index.record(key, meta.Query); err != nil {
		c.log.Debug("Unable to update cache index", zap.String("key", key), zap.Error(err))
	}
}
