package adapter

import (
	"bytes"
	"encoding/json"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/jmgilman/go/errors"

	m "github.com/mouse-blink/excat/internal/model"
)

// CatalogStore persists and retrieves exception catalogs.
type CatalogStore interface {
	SaveCatalog(path m.Path, catalog m.Catalog) error
	LoadCatalog(path m.Path) (m.Catalog, error)
}

type catalogStore struct {
	fs       billy.Filesystem
	absolute bool
}

// NewCatalogStore constructs a CatalogStore backed by the host filesystem.
func NewCatalogStore() CatalogStore {
	return &catalogStore{fs: osfs.New("/"), absolute: true}
}

// NewCatalogStoreFS constructs a CatalogStore over fs.
func NewCatalogStoreFS(fs billy.Filesystem) CatalogStore {
	return &catalogStore{fs: fs}
}

// SaveCatalog writes the catalog as indented JSON, creating parent
// directories as needed. Non-ASCII text and HTML characters are written as is.
func (cs *catalogStore) SaveCatalog(path m.Path, catalog m.Catalog) error {
	target, err := cs.resolve(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")

	if err := enc.Encode(m.NewCatalog(catalog.Errors)); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "encode catalog")
	}

	if dir := filepath.Dir(target); dir != "." && dir != "" {
		if err := cs.fs.MkdirAll(dir, 0o750); err != nil {
			return wrapFSError(err, "create directory %s", dir)
		}
	}

	if err := util.WriteFile(cs.fs, target, buf.Bytes(), 0o644); err != nil {
		return wrapFSError(err, "write catalog %s", path)
	}

	return nil
}

// LoadCatalog reads a catalog written by SaveCatalog.
func (cs *catalogStore) LoadCatalog(path m.Path) (m.Catalog, error) {
	target, err := cs.resolve(path)
	if err != nil {
		return m.Catalog{}, err
	}

	data, err := util.ReadFile(cs.fs, target)
	if err != nil {
		return m.Catalog{}, wrapFSError(err, "read catalog %s", path)
	}

	var catalog m.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return m.Catalog{}, errors.Wrapf(err, errors.CodeInvalidInput, "parse catalog %s", path)
	}

	return m.NewCatalog(catalog.Errors), nil
}

func (cs *catalogStore) resolve(path m.Path) (string, error) {
	if !cs.absolute {
		return filepath.Clean(string(path)), nil
	}

	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.CodeInvalidInput, "resolve %s", path)
	}

	return abs, nil
}
