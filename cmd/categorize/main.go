// Command categorize assigns scholarship categories to every program in a
// catalog JSON file. It must be re-run whenever a category-tiered catalog is
// authored or updated; the fee calculator treats the stored category as data
// and never recomputes it at request time.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/codermillat/wbe-uni-fee-compare/internal/catalog"
	"github.com/codermillat/wbe-uni-fee-compare/internal/category"
	apperrors "github.com/codermillat/wbe-uni-fee-compare/internal/errors"
	"github.com/codermillat/wbe-uni-fee-compare/internal/logger"
)

// CLI flags
var (
	fileFlag   = flag.String("file", "", "Path to the catalog JSON file to update")
	dryRunFlag = flag.Bool("dry-run", false, "Report assignments without writing the file")
)

func main() {
	flag.Parse()

	log := logger.New(os.Getenv("LOG_LEVEL"))

	if *fileFlag == "" {
		_, _ = fmt.Fprintln(os.Stderr, "Usage: categorize -file <catalog.json> [-dry-run]")
		os.Exit(2)
	}

	changed, total, err := run(*fileFlag, *dryRunFlag, log)
	if err != nil {
		log.WithError(err).Fatal("Categorization failed")
	}

	if *dryRunFlag {
		log.WithField("programs", total).
			WithField("would_change", changed).
			Info("Dry run complete, file not written")
		return
	}
	log.WithField("programs", total).
		WithField("changed", changed).
		Info("Scholarship categories written")
}

// orderedDoc is a JSON object that remembers its key order. Catalogs are
// hand-authored; keeping the authoring order means a categorize run only
// diffs on the scholarshipCategory fields it touched.
type orderedDoc []docField

type docField struct {
	key   string
	value json.RawMessage
}

func decodeOrdered(raw []byte) (orderedDoc, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok != json.Delim('{') {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	var doc orderedDoc
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", keyTok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		doc = append(doc, docField{key: key, value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return doc, nil
}

func (d orderedDoc) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(f.value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (d orderedDoc) get(key string) json.RawMessage {
	for _, f := range d {
		if f.key == key {
			return f.value
		}
	}
	return nil
}

// set replaces an existing key in place or appends a new one at the end,
// matching where a hand edit would put it.
func (d *orderedDoc) set(key string, value json.RawMessage) {
	for i, f := range *d {
		if f.key == key {
			(*d)[i].value = value
			return
		}
	}
	*d = append(*d, docField{key: key, value: value})
}

func (d orderedDoc) stringField(key string) string {
	var s string
	_ = json.Unmarshal(d.get(key), &s)
	return s
}

// run assigns a category to every program in the file and reports how many
// assignments differ from what was stored. The file is decoded with its key
// order intact so fields this tool does not know about survive the rewrite
// in place.
func run(path string, dryRun bool, log *logger.Logger) (changed, total int, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("read catalog: %w", err)
	}

	doc, err := decodeOrdered(raw)
	if err != nil {
		return 0, 0, apperrors.NewCatalogError(path, "invalid JSON", err)
	}

	var scholarships struct {
		Scheme catalog.Scheme `json:"scheme"`
	}
	if err := json.Unmarshal(doc.get("scholarships"), &scholarships); err != nil {
		return 0, 0, apperrors.NewCatalogError(path, "missing or invalid scholarships block", err)
	}
	if scholarships.Scheme != catalog.SchemeCategoryTiered {
		return 0, 0, apperrors.NewCatalogError(path,
			fmt.Sprintf("scheme %q does not use scholarship categories", scholarships.Scheme), apperrors.ErrInvalidInput)
	}

	var programsRaw []json.RawMessage
	if err := json.Unmarshal(doc.get("programs"), &programsRaw); err != nil {
		return 0, 0, apperrors.NewCatalogError(path, "missing or invalid programs", err)
	}

	programs := make([]orderedDoc, 0, len(programsRaw))
	for _, entryRaw := range programsRaw {
		entry, err := decodeOrdered(entryRaw)
		if err != nil {
			return 0, 0, apperrors.NewCatalogError(path, "invalid program entry", err)
		}
		programs = append(programs, entry)
	}

	for i := range programs {
		entry := &programs[i]
		p := catalog.Program{
			Degree:         entry.stringField("degree"),
			Field:          entry.stringField("field"),
			Specialization: entry.stringField("specialization"),
		}

		previous := entry.stringField("scholarshipCategory")
		assigned := category.Assign(p)
		if previous != assigned {
			changed++
			log.WithField("program", entry.stringField("id")).
				WithField("from", previous).
				WithField("to", assigned).
				Debug("Category changed")
		}

		tag, err := json.Marshal(assigned)
		if err != nil {
			return 0, 0, fmt.Errorf("encode category: %w", err)
		}
		entry.set("scholarshipCategory", tag)
	}
	total = len(programs)

	if dryRun {
		return changed, total, nil
	}

	updated, err := json.Marshal(programs)
	if err != nil {
		return 0, 0, fmt.Errorf("encode programs: %w", err)
	}
	doc.set("programs", updated)

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return 0, 0, fmt.Errorf("encode catalog: %w", err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return 0, 0, fmt.Errorf("write catalog: %w", err)
	}
	return changed, total, nil
}
