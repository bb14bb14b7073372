package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ivlev/svg2anim/internal/config"
)

const frameSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 72.87 116.62">
  <g><path d="M83,44.4c.5,4.3-1.6,8.3-3.9,12.8Z"/></g>
</svg>`

func writeAssets(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(frameSVG), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDiscoverClassification(t *testing.T) {
	dir := t.TempDir()
	var names []string
	for id := 2; id <= 12; id++ {
		names = append(names, fmt.Sprintf("Asset %d.svg", id))
	}
	for id := 14; id <= 21; id++ {
		names = append(names, fmt.Sprintf("Asset %d.svg", id))
	}
	names = append(names, "notes.txt.bak", "README.md")
	writeAssets(t, dir, names...)

	rules := []config.GroupRule{
		{Name: "skull", MinID: 13},
		{Name: "flame", MinID: 2, MaxID: 12},
	}

	groups, err := Discover(dir, rules)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	if len(groups[0].Assets) != 8 {
		t.Errorf("skull: expected 8 assets, got %d", len(groups[0].Assets))
	}
	if len(groups[1].Assets) != 11 {
		t.Errorf("flame: expected 11 assets, got %d", len(groups[1].Assets))
	}
}

func TestDiscoverNaturalSort(t *testing.T) {
	dir := t.TempDir()
	// Lexicographic order would put 10 and 12 before 2 and 9.
	writeAssets(t, dir, "Asset 10.svg", "Asset 2.svg", "Asset 12.svg", "Asset 9.svg")

	groups, err := Discover(dir, []config.GroupRule{{Name: "flame", MinID: 2, MaxID: 12}})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	var ids []int
	for _, a := range groups[0].Assets {
		ids = append(ids, a.ID)
	}
	expected := []int{2, 9, 10, 12}
	for i, want := range expected {
		if ids[i] != want {
			t.Fatalf("natural sort order: expected %v, got %v", expected, ids)
		}
	}
}

func TestDiscoverEmptyGroupFatal(t *testing.T) {
	dir := t.TempDir()
	writeAssets(t, dir, "Asset 3.svg")

	_, err := Discover(dir, []config.GroupRule{
		{Name: "flame", MinID: 2, MaxID: 12},
		{Name: "skull", MinID: 13},
	})
	if err == nil {
		t.Fatal("expected error for group with no matching assets")
	}
	if !strings.Contains(err.Error(), "skull") {
		t.Errorf("error should name the empty group: %v", err)
	}
}

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(frameSVG))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}

	if doc.ViewBox != [4]float64{0, 0, 72.87, 116.62} {
		t.Errorf("viewBox: got %v", doc.ViewBox)
	}
	if len(doc.Paths) != 1 {
		t.Fatalf("expected 1 path, got %d", len(doc.Paths))
	}
	if !strings.HasPrefix(doc.Paths[0], "M83,44.4") {
		t.Errorf("unexpected path data: %s", doc.Paths[0])
	}
}

func TestParseDocumentNestedPaths(t *testing.T) {
	svg := `<svg viewBox="0 0 200 260">
  <defs><style>.cls-1{fill:#231f20;}</style></defs>
  <g><g><path class="cls-1" d="M1,2L3,4Z"/></g></g>
  <path d="M5,6L7,8Z"/>
</svg>`

	doc, err := ParseDocument(strings.NewReader(svg))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if len(doc.Paths) != 2 {
		t.Fatalf("expected 2 paths (nested included), got %d", len(doc.Paths))
	}
}
