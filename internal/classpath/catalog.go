// SPDX-License-Identifier: MPL-2.0

package classpath

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"vintage-cli/pkg/legacy"

	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of parsed manifests kept in memory.
const DefaultCacheSize = 256

type (
	// Catalog scans classpath roots for class manifests.
	Catalog struct {
		classpath []string
		cache     *lru.Cache[string, cachedManifest]
		logger    *log.Logger
		cacheSize int
	}

	// Option configures a Catalog.
	Option func(*Catalog)

	// Scan is the result of walking one or more roots.
	Scan struct {
		// Classes in root order, then lexical file order, then declaration order.
		// A class name appears once; the first declaration wins.
		Classes []legacy.Class
		// Skipped lists manifests that failed to parse.
		Skipped []SkippedManifest
	}

	cachedManifest struct {
		size    int64
		modTime time.Time
		classes []legacy.Class
	}
)

// WithCacheSize overrides DefaultCacheSize.
func WithCacheSize(size int) Option {
	return func(c *Catalog) {
		c.cacheSize = size
	}
}

// WithLogger sets the logger; the default discards output.
func WithLogger(logger *log.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// New creates a Catalog over the given classpath roots. The classpath is
// used for single-class and package lookups.
func New(classpath []string, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		classpath: append([]string(nil), classpath...),
		cacheSize: DefaultCacheSize,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}

	cache, err := lru.New[string, cachedManifest](c.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create manifest cache: %w", err)
	}
	c.cache = cache

	return c, nil
}

// Classpath returns the configured roots.
func (c *Catalog) Classpath() []string {
	return append([]string(nil), c.classpath...)
}

// ScanRoots walks the given roots. An unreadable or missing root fails the
// whole scan; unparsable manifests are reported in Scan.Skipped.
func (c *Catalog) ScanRoots(roots ...string) (*Scan, error) {
	scan := &Scan{}
	seen := make(map[string]bool)

	for _, root := range roots {
		if err := c.scanRoot(root, scan, seen); err != nil {
			return nil, err
		}
	}

	return scan, nil
}

// ScanClasspath walks every classpath root.
func (c *Catalog) ScanClasspath() (*Scan, error) {
	return c.ScanRoots(c.classpath...)
}

// Lookup finds a class on the classpath by fully qualified name.
func (c *Catalog) Lookup(name string) (legacy.Class, error) {
	scan, err := c.ScanClasspath()
	if err != nil {
		return legacy.Class{}, err
	}
	for _, class := range scan.Classes {
		if class.Name == name {
			return class, nil
		}
	}
	return legacy.Class{}, &ClassNotFoundError{Name: name}
}

// ClassesInPackage returns the classpath classes declared in exactly pkg;
// sub-packages are not included.
func (c *Catalog) ClassesInPackage(pkg string) (*Scan, error) {
	scan, err := c.ScanClasspath()
	if err != nil {
		return nil, err
	}

	filtered := &Scan{Skipped: scan.Skipped}
	for _, class := range scan.Classes {
		if class.Package == pkg {
			filtered.Classes = append(filtered.Classes, class)
		}
	}
	return filtered, nil
}

func (c *Catalog) scanRoot(root string, scan *Scan, seen map[string]bool) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return &InvalidRootError{Root: root, Cause: err}
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return &InvalidRootError{Root: root, Cause: err}
	}
	if !info.IsDir() {
		return &InvalidRootError{Root: root, Cause: fmt.Errorf("not a directory")}
	}

	c.logger.Debug("scanning classpath root", "root", absRoot)

	// WalkDir visits entries in lexical order, which keeps scans stable.
	return filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return &InvalidRootError{Root: root, Cause: walkErr}
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), legacy.ManifestExt) {
			return nil
		}

		classes, err := c.loadManifest(path)
		if err != nil {
			c.logger.Debug("skipping manifest", "path", path, "error", err)
			scan.Skipped = append(scan.Skipped, SkippedManifest{Path: path, Err: err})
			return nil
		}

		for _, class := range classes {
			if seen[class.Name] {
				c.logger.Debug("class shadowed by earlier declaration", "class", class.Name, "path", path)
				continue
			}
			seen[class.Name] = true
			scan.Classes = append(scan.Classes, class)
		}
		return nil
	})
}

func (c *Catalog) loadManifest(path string) ([]legacy.Class, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat manifest: %w", err)
	}

	if cached, ok := c.cache.Get(path); ok && cached.size == info.Size() && cached.modTime.Equal(info.ModTime()) {
		return cached.classes, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	classes, err := legacy.ParseManifest(path, data)
	if err != nil {
		return nil, err
	}

	c.cache.Add(path, cachedManifest{size: info.Size(), modTime: info.ModTime(), classes: classes})
	return classes, nil
}
