package site

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/waiooaung/portfolio/internal/content"
	"github.com/waiooaung/portfolio/internal/page"
)

// Export writes the page as index.html plus its static assets into dir.
// The exported page has no live channel.
func Export(dir string, m content.Model, composer page.Composer) error {
	tmpl, err := Templates()
	if err != nil {
		return err
	}

	composer.Shell.LiveURL = ""
	p := composer.Compose(m)

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	indexPath := filepath.Join(dir, "index.html")
	f, err := os.Create(indexPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", indexPath, err)
	}
	defer f.Close()

	if err := tmpl.ExecuteTemplate(f, pageTemplate, p); err != nil {
		return fmt.Errorf("rendering %s: %w", indexPath, err)
	}

	if err := copyFS(Static(), filepath.Join(dir, "static")); err != nil {
		return fmt.Errorf("copying static assets: %w", err)
	}
	return f.Close()
}

// copyFS recursively copies src into the directory dst.
func copyFS(src fs.FS, dst string) error {
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			if err := os.MkdirAll(target, os.ModePerm); err != nil {
				return fmt.Errorf("creating directory %s: %w", target, err)
			}
			return nil
		}
		data, err := fs.ReadFile(src, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}
		return nil
	})
}
