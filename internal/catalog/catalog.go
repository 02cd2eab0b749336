package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	apperrors "github.com/codermillat/wbe-uni-fee-compare/internal/errors"
)

// Embedded catalogs are the default data source. A directory of JSON files
// with the same shape can override them via LoadDir (CATALOG_DIR).
//
//go:embed data/*.json
var embedded embed.FS

// Load parses the embedded university catalogs.
// Universities are returned in a stable order (sorted by id) so that
// cross-university match fan-out is deterministic.
func Load() ([]University, error) {
	entries, err := embedded.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("read embedded catalogs: %w", err)
	}

	var universities []University
	for _, entry := range entries {
		raw, err := embedded.ReadFile("data/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read embedded catalog %s: %w", entry.Name(), err)
		}
		u, err := parse(raw, entry.Name())
		if err != nil {
			return nil, err
		}
		universities = append(universities, u)
	}

	sortUniversities(universities)
	return universities, nil
}

// LoadDir parses all .json catalogs in dir. Used when counselors maintain
// catalogs on disk instead of rebuilding the binary.
func LoadDir(dir string) ([]University, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read catalog directory: %w", err)
	}

	var universities []University
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", entry.Name(), err)
		}
		u, err := parse(raw, entry.Name())
		if err != nil {
			return nil, err
		}
		universities = append(universities, u)
	}

	if len(universities) == 0 {
		return nil, fmt.Errorf("no catalogs found in %s", dir)
	}

	sortUniversities(universities)
	return universities, nil
}

// parse decodes one university catalog and checks the authoring-time
// invariants. These checks guard catalog authoring, not request handling:
// once loaded, records are trusted as-is.
func parse(raw []byte, source string) (University, error) {
	var u University
	if err := json.Unmarshal(raw, &u); err != nil {
		return University{}, apperrors.NewCatalogError(source, "parse failed", err)
	}
	if u.ID == "" {
		return University{}, apperrors.NewCatalogError(source, "missing university id", nil)
	}
	if u.Scholarships.Scheme == "" {
		return University{}, apperrors.NewCatalogError(source, "missing scholarship scheme", nil)
	}
	for _, p := range u.Programs {
		if len(p.AnnualFees) != p.Duration {
			return University{}, apperrors.NewCatalogError(source, fmt.Sprintf(
				"program %s has %d annual fees for %d years",
				p.ID, len(p.AnnualFees), p.Duration), nil)
		}
	}
	return u, nil
}

func sortUniversities(universities []University) {
	sort.Slice(universities, func(i, j int) bool {
		return universities[i].ID < universities[j].ID
	})
}
