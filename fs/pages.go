package fs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/flexcms/flexcms"
)

// Ensure Archive implements flexcms.PageSource at compile time.
var _ flexcms.PageSource = (*Archive)(nil)

// Archive reads saved pages of the legacy site from a directory tree.
// Every .html file is a page; its slug is the file name without the
// extension, or the parent directory name for index files.
type Archive struct {
	baseDir string
}

// NewArchive creates an Archive rooted at baseDir.
func NewArchive(baseDir string) *Archive {
	return &Archive{baseDir: baseDir}
}

// Pages walks the archive and returns its pages sorted by slug.
func (a *Archive) Pages(ctx context.Context) ([]flexcms.ArchivePage, error) {
	var pages []flexcms.ArchivePage

	err := filepath.WalkDir(a.baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".html") {
			return nil
		}
		pages = append(pages, flexcms.ArchivePage{
			Slug: pageSlug(path),
			Path: path,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].Slug < pages[j].Slug })
	return pages, nil
}

// ReadPage returns a page's raw markup.
func (a *Archive) ReadPage(ctx context.Context, path string) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", flexcms.Errorf(flexcms.ENOTFOUND, "page %s not found", path)
		}
		return "", err
	}
	return string(data), nil
}

// pageSlug derives a page's slug from its file path. index files take
// their parent directory's name.
func pageSlug(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), ".html")
	if name == "index" {
		return filepath.Base(filepath.Dir(path))
	}
	return name
}
