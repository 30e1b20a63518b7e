package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/waiooaung/portfolio/internal/content"
	"github.com/waiooaung/portfolio/internal/page"
	"github.com/waiooaung/portfolio/internal/scroll"
)

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "public")
	composer := page.Composer{Now: fixedClock, Shell: page.Shell{ScrollThreshold: 300, ScrollBehavior: scroll.BehaviorSmooth, LiveURL: "ws/shell"}}

	if err := Export(dir, content.Default(), composer); err != nil {
		t.Fatalf("Export: %v", err)
	}

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatalf("reading index.html: %v", err)
	}
	body := string(index)
	if !strings.Contains(body, `id="projects"`) {
		t.Error("exported page is missing the projects section")
	}
	if !strings.Contains(body, `data-live=""`) {
		t.Error("exported page must not point at a live channel")
	}
	for _, attr := range []string{`data-scroll-threshold="300"`, `data-scroll-behavior="smooth"`} {
		if !strings.Contains(body, attr) {
			t.Errorf("exported page is missing %s for the local scroll rule", attr)
		}
	}

	script, err := os.ReadFile(filepath.Join(dir, "static", "app.js"))
	if err != nil {
		t.Fatalf("reading app.js: %v", err)
	}
	if !strings.Contains(string(script), "dataset.scrollThreshold") {
		t.Error("exported shell script does not read the scroll threshold")
	}

	for _, name := range []string{"app.js", "site.css", "icons.svg"} {
		if _, err := os.Stat(filepath.Join(dir, "static", name)); err != nil {
			t.Errorf("static asset %s not exported: %v", name, err)
		}
	}
}
