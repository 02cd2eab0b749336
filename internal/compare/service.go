// Package compare is the query surface behind the counselor UI: level and
// field filters, program selection with cross-university matching, fee
// calculation fan-out, and offer export. Stateless by design: every request
// carries its own filters and student details, so repeated calls with the
// same inputs return the same answers.
package compare

import (
	"fmt"

	"github.com/codermillat/wbe-uni-fee-compare/internal/catalog"
	apperrors "github.com/codermillat/wbe-uni-fee-compare/internal/errors"
	"github.com/codermillat/wbe-uni-fee-compare/internal/fees"
	"github.com/codermillat/wbe-uni-fee-compare/internal/logger"
	"github.com/codermillat/wbe-uni-fee-compare/internal/match"
	"github.com/codermillat/wbe-uni-fee-compare/internal/normalize"
	"github.com/codermillat/wbe-uni-fee-compare/internal/report"
)

// Recorder counts the business events the service emits. The metrics
// package provides the Prometheus-backed implementation; tests substitute
// their own.
type Recorder interface {
	SelectionMatched(quality string)
	FeeCalculated(universityID, outcome string)
	OfferExported(universityID string)
	UnrecognizedDegree()
}

// Service answers counselor queries over the loaded catalogs. Universities
// keep their load order, so fan-out results are stable across calls.
type Service struct {
	universities []catalog.University
	rules        map[string]fees.Rule
	formatter    *report.Formatter
	log          *logger.Logger
	rec          Recorder
}

// New binds each university's fee rule and prepares the query surface.
func New(universities []catalog.University, formatter *report.Formatter, log *logger.Logger, rec Recorder) (*Service, error) {
	rules := make(map[string]fees.Rule, len(universities))
	for _, u := range universities {
		rule, err := fees.RuleFor(u)
		if err != nil {
			return nil, fmt.Errorf("binding fee rule: %w", err)
		}
		rules[u.ID] = rule
	}
	return &Service{
		universities: universities,
		rules:        rules,
		formatter:    formatter,
		log:          log.WithModule("compare"),
		rec:          rec,
	}, nil
}

// Universities returns the loaded catalogs in load order.
func (s *Service) Universities() []catalog.University {
	return s.universities
}

// LevelCount is one degree level and how many programs sit under it across
// every university.
type LevelCount struct {
	Level normalize.Level `json:"level"`
	Count int             `json:"count"`
}

// ListDegreeLevels returns every known degree level with its program count,
// in the UI's fixed presentation order. Levels with zero programs are kept
// so the UI can disable rather than hide them.
func (s *Service) ListDegreeLevels() []LevelCount {
	counts := make(map[normalize.Level]int)
	for _, u := range s.universities {
		for _, p := range u.Programs {
			counts[s.levelOf(p)]++
		}
	}
	levels := normalize.Levels()
	out := make([]LevelCount, 0, len(levels))
	for _, l := range levels {
		out = append(out, LevelCount{Level: l, Count: counts[l]})
	}
	return out
}

// ProgramRef is a program together with the university offering it.
type ProgramRef struct {
	UniversityID   string          `json:"universityId"`
	UniversityName string          `json:"universityName"`
	Program        catalog.Program `json:"program"`
}

// FieldCount is one standardized field and its program count within the
// current level filter.
type FieldCount struct {
	Field string `json:"field"`
	Count int    `json:"count"`
}

// FilterPrograms returns programs matching the optional level and field
// filters, plus the field counts for the level alone so the UI can render
// its second-step filter. Empty filter values match everything.
func (s *Service) FilterPrograms(level, field string) ([]ProgramRef, []FieldCount) {
	var refs []ProgramRef
	fieldCounts := make(map[string]int)
	var fieldOrder []string

	for _, u := range s.universities {
		for _, p := range u.Programs {
			if level != "" && string(s.levelOf(p)) != level {
				continue
			}
			std := normalize.StandardizeField(p.Field)
			if _, seen := fieldCounts[std]; !seen {
				fieldOrder = append(fieldOrder, std)
			}
			fieldCounts[std]++
			if field != "" && std != field {
				continue
			}
			refs = append(refs, ProgramRef{
				UniversityID:   u.ID,
				UniversityName: u.Name,
				Program:        p,
			})
		}
	}

	counts := make([]FieldCount, 0, len(fieldOrder))
	for _, f := range fieldOrder {
		counts = append(counts, FieldCount{Field: f, Count: fieldCounts[f]})
	}
	return refs, counts
}

// levelOf maps a program's degree to its level, counting catalog drift.
func (s *Service) levelOf(p catalog.Program) normalize.Level {
	d := normalize.NormalizeDegree(p.Degree)
	if !d.Recognized {
		s.rec.UnrecognizedDegree()
		s.log.WithField("degree", p.Degree).Debug("unrecognized degree label")
	}
	return normalize.DegreeLevelOf(p.Degree)
}

// Selection is the full derived state for one selected program: the
// counterpart found (or not) at every other university, the overall match
// grade, and a fee calculation for each involved program.
type Selection struct {
	Source       ProgramRef                   `json:"source"`
	Matches      []match.UniversityMatch      `json:"matches"`
	Overall      match.Overall                `json:"overall"`
	Calculations map[string]*fees.Calculation `json:"calculations"`
}

// SelectProgram recomputes all derived state for a selection. The optional
// level and field filters scope the candidate pools at other universities
// the same way the UI scopes its program list.
func (s *Service) SelectProgram(universityID, programID, level, field string) (*Selection, error) {
	source, program, err := s.find(universityID, programID)
	if err != nil {
		return nil, err
	}

	var pools []match.Pool
	for _, u := range s.universities {
		if u.ID == universityID {
			continue
		}
		pools = append(pools, match.Pool{
			UniversityID: u.ID,
			Programs:     s.filterPool(u, level, field),
		})
	}

	matches, overall := match.BestAcross(*program, pools)
	s.rec.SelectionMatched(string(overall.Quality))

	calcs := make(map[string]*fees.Calculation, len(matches)+1)
	calcs[universityID] = s.calculate(universityID, *program)
	for _, m := range matches {
		if m.Result == nil {
			continue
		}
		calcs[m.UniversityID] = s.calculate(m.UniversityID, m.Result.Program)
	}

	s.log.WithFields(map[string]any{
		"university": universityID,
		"program":    programID,
		"quality":    overall.Quality,
	}).Info("program selected")

	return &Selection{
		Source:       ProgramRef{UniversityID: source.ID, UniversityName: source.Name, Program: *program},
		Matches:      matches,
		Overall:      overall,
		Calculations: calcs,
	}, nil
}

// ExportOffer renders the outreach message for one program at one
// university.
func (s *Service) ExportOffer(universityID, programID string, opts report.OfferOptions) (string, error) {
	u, program, err := s.find(universityID, programID)
	if err != nil {
		return "", err
	}
	calc := s.calculate(universityID, *program)
	s.rec.OfferExported(universityID)
	return s.formatter.Offer(*u, *program, *calc, opts), nil
}

// SmartComparison renders the budget-aware comparison message for a
// selection: the selected program plus every matched counterpart.
func (s *Service) SmartComparison(universityID, programID, level, field, studentName string, gpa *float64) (string, error) {
	sel, err := s.SelectProgram(universityID, programID, level, field)
	if err != nil {
		return "", err
	}

	entries := []report.Entry{{
		University:  *s.university(universityID),
		Program:     sel.Source.Program,
		Calculation: *sel.Calculations[universityID],
	}}
	for _, m := range sel.Matches {
		if m.Result == nil {
			continue
		}
		entries = append(entries, report.Entry{
			University:  *s.university(m.UniversityID),
			Program:     m.Result.Program,
			Calculation: *sel.Calculations[m.UniversityID],
			MatchReason: m.Result.Reason,
		})
	}
	return s.formatter.Comparison(entries, studentName, gpa), nil
}

// filterPool scopes one university's programs to the active UI filters.
func (s *Service) filterPool(u catalog.University, level, field string) []catalog.Program {
	if level == "" && field == "" {
		return u.Programs
	}
	var pool []catalog.Program
	for _, p := range u.Programs {
		if level != "" && string(s.levelOf(p)) != level {
			continue
		}
		if field != "" && normalize.StandardizeField(p.Field) != field {
			continue
		}
		pool = append(pool, p)
	}
	return pool
}

func (s *Service) calculate(universityID string, p catalog.Program) *fees.Calculation {
	calc := s.rules[universityID].Calculate(p)
	outcome := "scholarship"
	if calc.NoScholarship {
		outcome = "no_scholarship"
	}
	s.rec.FeeCalculated(universityID, outcome)
	return &calc
}

func (s *Service) university(id string) *catalog.University {
	for i := range s.universities {
		if s.universities[i].ID == id {
			return &s.universities[i]
		}
	}
	return nil
}

func (s *Service) find(universityID, programID string) (*catalog.University, *catalog.Program, error) {
	u := s.university(universityID)
	if u == nil {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrUniversityNotFound, universityID)
	}
	p := u.ProgramByID(programID)
	if p == nil {
		return nil, nil, fmt.Errorf("%w: %s at %s", apperrors.ErrProgramNotFound, programID, universityID)
	}
	return u, p, nil
}
