package load

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Cache memoizes parsed descriptors on disk. Snapshots are keyed by the
// SHA-256 of the declaration source, so any edit invalidates them and
// stale snapshots are simply never read again. A missing or corrupt
// snapshot falls back to parsing; the cache never turns a readable
// declaration into an error.
type Cache struct {
	dir string
}

// NewCache returns a cache storing snapshots under dir. The directory is
// created on first write.
func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}

// LoadFile reads one schema declaration through the cache.
func (c *Cache) LoadFile(path string) (*Database, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	key := sha256.Sum256(src)
	snap := filepath.Join(c.dir, hex.EncodeToString(key[:])+".msgpack")
	if buf, err := os.ReadFile(snap); err == nil {
		d := &Database{}
		if err := msgpack.Unmarshal(buf, d); err == nil {
			return d, nil
		}
	}
	d, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := c.store(snap, d); err != nil {
		return nil, fmt.Errorf("cache %s: %w", path, err)
	}
	return d, nil
}

func (c *Cache) store(snap string, d *Database) error {
	buf, err := msgpack.Marshal(d)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(c.dir, ".snapshot-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(buf); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	// Rename keeps concurrent readers from observing a partial snapshot.
	return os.Rename(tmp.Name(), snap)
}

// Clear removes every snapshot.
func (c *Cache) Clear() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), ".msgpack") {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}
