// Package fs reads saved listing pages from the local filesystem.
package fs

import (
	"context"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fwojciec/carads"
)

// DocumentDir reads saved listing pages from a directory tree.
type DocumentDir struct {
	root     string
	location string

	// CanonicalURL returns the page's own URL, or "" when the page does not
	// name one. Pages without a canonical URL are identified by a file URL.
	CanonicalURL func(html string) string
}

// NewDocumentDir creates a DocumentDir for pages scraped in location.
func NewDocumentDir(root, location string) *DocumentDir {
	return &DocumentDir{root: root, location: location}
}

// ReadDocuments returns a document for every .html or .htm file under the
// root, in lexical path order.
func (d *DocumentDir) ReadDocuments(ctx context.Context) ([]*carads.RawDocument, error) {
	paths, err := d.htmlFiles()
	if err != nil {
		return nil, err
	}

	docs := make([]*carads.RawDocument, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc, err := d.readDocument(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (d *DocumentDir) htmlFiles() ([]string, error) {
	info, err := os.Stat(d.root)
	if err != nil {
		return nil, carads.Errorf(carads.ENOTFOUND, "document directory %q not found", d.root)
	}
	if !info.IsDir() {
		return nil, carads.Errorf(carads.EINVALID, "%q is not a directory", d.root)
	}

	var paths []string
	err = filepath.WalkDir(d.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".html", ".htm":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(paths)
	return paths, nil
}

func (d *DocumentDir) readDocument(path string) (*carads.RawDocument, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	html := string(b)
	doc := &carads.RawDocument{
		Location:  d.location,
		HTML:      html,
		FetchedAt: info.ModTime().UTC().Truncate(time.Second),
	}
	if d.CanonicalURL != nil {
		doc.URL = d.CanonicalURL(html)
	}
	if doc.URL == "" {
		if doc.URL, err = FileURL(path); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// FileURL returns the escaped file:// URL of path made absolute. Pages
// without a canonical URL are identified by it.
func FileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(), nil
}
