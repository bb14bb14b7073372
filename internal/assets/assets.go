package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/ivlev/svg2anim/internal/config"
)

// Asset is one discovered frame file.
type Asset struct {
	Path string
	Name string
	ID   int
}

// Group is an ordered frame sequence for one animated subject.
type Group struct {
	Name   string
	Assets []Asset
}

var idPattern = regexp.MustCompile(`(\d+)`)

// extractID pulls the first embedded number out of a filename. Assets
// without a number get id -1 and never classify.
func extractID(name string) (prefix string, id int, ok bool) {
	loc := idPattern.FindStringIndex(name)
	if loc == nil {
		return name, -1, false
	}
	id, err := strconv.Atoi(name[loc[0]:loc[1]])
	if err != nil {
		return name, -1, false
	}
	return name[:loc[0]], id, true
}

// Discover scans dir for SVG frame assets, classifies them into the
// scenario's groups by embedded numeric id, and orders each group by
// natural sort (name prefix, then numeric value). A group with zero
// matching assets is a fatal configuration error.
func Discover(dir string, rules []config.GroupRule) ([]Group, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading asset directory: %w", err)
	}

	groups := make([]Group, len(rules))
	for i, r := range rules {
		groups[i].Name = r.Name
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".svg") {
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		_, id, ok := extractID(stem)
		if !ok {
			continue
		}
		asset := Asset{
			Path: filepath.Join(dir, entry.Name()),
			Name: entry.Name(),
			ID:   id,
		}
		for i, r := range rules {
			if r.Matches(id) {
				groups[i].Assets = append(groups[i].Assets, asset)
			}
		}
	}

	for i := range groups {
		sortNatural(groups[i].Assets)
		if len(groups[i].Assets) == 0 {
			return nil, fmt.Errorf("group %q: no assets matched in %s", groups[i].Name, dir)
		}
	}

	return groups, nil
}

// sortNatural orders assets numerically rather than lexicographically,
// so Asset 9 sorts before Asset 10.
func sortNatural(assets []Asset) {
	sort.Slice(assets, func(i, j int) bool {
		pi, ni, _ := extractID(assets[i].Name)
		pj, nj, _ := extractID(assets[j].Name)
		if pi != pj {
			return pi < pj
		}
		if ni != nj {
			return ni < nj
		}
		return assets[i].Name < assets[j].Name
	})
}

// Paths returns the ordered file paths of a group's assets.
func (g Group) Paths() []string {
	paths := make([]string, len(g.Assets))
	for i, a := range g.Assets {
		paths[i] = a.Path
	}
	return paths
}
