// Package catalog persists extracted chunk signatures in a bbolt database.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"

	"github.com/gogpu/shadersig/internal/chunks"
)

var (
	bucketChunks      = []byte("chunks")
	bucketDefinitions = []byte("definitions")
)

// ErrNotFound is returned when a chunk is not in the catalog.
var ErrNotFound = errors.New("chunk not found")

// Catalog maps chunk paths to their signatures. The definitions bucket
// indexes chunk paths by the name of the function they define.
type Catalog struct {
	db *bbolt.DB
}

// Open opens or creates the catalog at path.
func Open(path string) (*Catalog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create catalog directory: %w", err)
	}

	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketChunks, bucketDefinitions} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Catalog{db: db}, nil
}

// Close closes the database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Put stores a chunk, replacing any previous entry for its path.
func (c *Catalog) Put(chunk chunks.Chunk) error {
	data, err := json.Marshal(chunk)
	if err != nil {
		return err
	}

	return c.db.Update(func(tx *bbolt.Tx) error {
		if err := c.unindex(tx, chunk.Path); err != nil {
			return err
		}
		if err := tx.Bucket(bucketChunks).Put([]byte(chunk.Path), data); err != nil {
			return err
		}
		if chunk.Definition == nil {
			return nil
		}
		defs, err := tx.Bucket(bucketDefinitions).CreateBucketIfNotExists([]byte(chunk.Definition.Name))
		if err != nil {
			return err
		}
		return defs.Put([]byte(chunk.Path), []byte{})
	})
}

// Get returns the chunk stored for path.
func (c *Catalog) Get(path string) (chunks.Chunk, error) {
	var chunk chunks.Chunk
	err := c.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketChunks).Get([]byte(path))
		if data == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return json.Unmarshal(data, &chunk)
	})
	return chunk, err
}

// Delete removes the chunk stored for path.
func (c *Catalog) Delete(path string) error {
	return c.db.Update(func(tx *bbolt.Tx) error {
		if err := c.unindex(tx, path); err != nil {
			return err
		}
		return tx.Bucket(bucketChunks).Delete([]byte(path))
	})
}

// List returns all chunks in path order.
func (c *Catalog) List() ([]chunks.Chunk, error) {
	var list []chunks.Chunk
	err := c.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketChunks).ForEach(func(k, v []byte) error {
			var chunk chunks.Chunk
			if err := json.Unmarshal(v, &chunk); err != nil {
				return fmt.Errorf("decode chunk %s: %w", k, err)
			}
			list = append(list, chunk)
			return nil
		})
	})
	return list, err
}

// DefinitionsNamed returns the paths of chunks defining a function called
// name, in path order.
func (c *Catalog) DefinitionsNamed(name string) ([]string, error) {
	var paths []string
	err := c.db.View(func(tx *bbolt.Tx) error {
		defs := tx.Bucket(bucketDefinitions).Bucket([]byte(name))
		if defs == nil {
			return nil
		}
		return defs.ForEach(func(k, _ []byte) error {
			paths = append(paths, string(k))
			return nil
		})
	})
	return paths, err
}

// Clear removes every chunk.
func (c *Catalog) Clear() error {
	return c.db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketChunks, bucketDefinitions} {
			if err := tx.DeleteBucket(b); err != nil {
				return err
			}
			if _, err := tx.CreateBucket(b); err != nil {
				return err
			}
		}
		return nil
	})
}

// unindex drops path from the definitions index of its stored chunk.
func (c *Catalog) unindex(tx *bbolt.Tx, path string) error {
	data := tx.Bucket(bucketChunks).Get([]byte(path))
	if data == nil {
		return nil
	}

	var old chunks.Chunk
	if err := json.Unmarshal(data, &old); err != nil {
		return fmt.Errorf("decode chunk %s: %w", path, err)
	}
	if old.Definition == nil {
		return nil
	}

	root := tx.Bucket(bucketDefinitions)
	defs := root.Bucket([]byte(old.Definition.Name))
	if defs == nil {
		return nil
	}
	if err := defs.Delete([]byte(path)); err != nil {
		return err
	}
	if k, _ := defs.Cursor().First(); k == nil {
		return root.DeleteBucket([]byte(old.Definition.Name))
	}
	return nil
}
