package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/codermillat/wbe-uni-fee-compare/internal/errors"
	"github.com/codermillat/wbe-uni-fee-compare/internal/logger"
	"github.com/stretchr/testify/require"
)

const categoryCatalog = `{
  "id": "sharda",
  "name": "Sharda University",
  "scholarships": {
    "scheme": "categoryTiered",
    "categories": {}
  },
  "programs": [
    {
      "id": "sharda-btech-cse",
      "name": "B.Tech CSE",
      "degree": "B.Tech",
      "field": "Engineering",
      "specialization": "Computer Science & Engineering",
      "duration": 4,
      "annualFees": [280000, 280000, 280000, 280000]
    },
    {
      "id": "sharda-bsc-nursing",
      "name": "B.Sc Nursing",
      "degree": "B.Sc",
      "field": "Nursing",
      "specialization": "Nursing",
      "duration": 4,
      "annualFees": [250000, 250000, 250000, 250000],
      "scholarshipCategory": "category1"
    }
  ]
}`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sharda.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunAssignsCategories(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, categoryCatalog)
	log := logger.NewWithWriter("error", os.Stderr)

	changed, total, err := run(path, false, log)
	require.NoError(t, err)
	require.Equal(t, 2, total)
	// CSE had no category, nursing had the wrong one
	require.Equal(t, 2, changed)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		ID       string `json:"id"`
		Programs []struct {
			ID                  string `json:"id"`
			ScholarshipCategory string `json:"scholarshipCategory"`
		} `json:"programs"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.Equal(t, "sharda", doc.ID)
	require.Equal(t, "category1", doc.Programs[0].ScholarshipCategory)
	require.Equal(t, "category2", doc.Programs[1].ScholarshipCategory)
}

func TestRunPreservesKeyOrder(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, categoryCatalog)
	log := logger.NewWithWriter("error", os.Stderr)

	_, _, err := run(path, false, log)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(raw)

	// The fixture orders "scholarships" before "programs" and "duration"
	// before "annualFees"; alphabetizing would flip both.
	require.Less(t, strings.Index(out, `"scholarships"`), strings.Index(out, `"programs"`))
	require.Less(t, strings.Index(out, `"duration"`), strings.Index(out, `"annualFees"`))

	// A freshly assigned category lands after the authored fields; an
	// existing one keeps its place.
	cse := out[strings.Index(out, `"sharda-btech-cse"`):strings.Index(out, `"sharda-bsc-nursing"`)]
	require.Greater(t, strings.Index(cse, `"scholarshipCategory"`), strings.Index(cse, `"annualFees"`))

	// Rerunning produces no further textual change.
	_, _, err = run(path, false, log)
	require.NoError(t, err)
	again, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, out, string(again))
}

func TestRunDryRunLeavesFileUntouched(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, categoryCatalog)
	log := logger.NewWithWriter("error", os.Stderr)

	changed, total, err := run(path, true, log)
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Equal(t, 2, changed)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, categoryCatalog, string(raw))
}

func TestRunRejectsOtherSchemes(t *testing.T) {
	t.Parallel()

	flat := strings.Replace(categoryCatalog, `"categoryTiered"`, `"flat"`, 1)
	path := writeCatalog(t, flat)
	log := logger.NewWithWriter("error", os.Stderr)

	_, _, err := run(path, false, log)
	require.Error(t, err)
	require.True(t, errors.Is(err, apperrors.ErrInvalidInput))

	var catErr *apperrors.CatalogError
	require.True(t, errors.As(err, &catErr))
}

func TestRunRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, "{not json")
	log := logger.NewWithWriter("error", os.Stderr)

	_, _, err := run(path, false, log)
	var catErr *apperrors.CatalogError
	require.True(t, errors.As(err, &catErr))
}
