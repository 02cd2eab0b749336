// Package normalize canonicalizes degree names, specialization strings and
// field labels so that records from independently authored catalogs become
// comparable. All functions are pure table-driven lookups.
package normalize

import "strings"

// Degree is the tagged outcome of degree normalization. Unrecognized raw
// labels are kept as-is instead of silently passing through, so callers can
// detect catalog drift.
type Degree struct {
	Canonical  string
	Raw        string
	Recognized bool
}

// Key returns the grouping key used for degree equality. Recognized degrees
// group by canonical tag; unrecognized ones form their own group keyed by
// the lowercased trimmed raw text, so two catalogs using the same unknown
// label still compare equal.
func (d Degree) Key() string {
	if d.Recognized {
		return d.Canonical
	}
	return strings.ToLower(strings.TrimSpace(d.Raw))
}

// String returns the canonical tag for recognized degrees and the raw label
// otherwise. Suitable for display.
func (d Degree) String() string {
	if d.Recognized {
		return d.Canonical
	}
	return d.Raw
}

// degreeTable maps lowercased raw degree spellings to canonical tags.
// Catalogs are authored independently, so the same degree shows up as
// "b.e.", "B.Tech", "bachelor of engineering" and so on.
var degreeTable = map[string]string{
	"b.tech":                  "B.Tech",
	"btech":                   "B.Tech",
	"b.e.":                    "B.Tech",
	"b.e":                     "B.Tech",
	"bachelor of engineering": "B.Tech",
	"b.sc":                    "B.Sc",
	"b.sc.":                   "B.Sc",
	"bsc":                     "B.Sc",
	"bachelor of science":     "B.Sc",
	"b.sc (hons)":             "B.Sc",
	"b.sc (hons.)":            "B.Sc",
	"b.sc. (hons.)":           "B.Sc",
	"b.sc. (hons)":            "B.Sc",
	"b.sc (hons/research)":    "B.Sc",
	"b.sc. (hons./research)":  "B.Sc",
	"bba":                     "BBA",
	"bachelor of business administration": "BBA",
	"b.com":                             "B.Com",
	"b.com.":                            "B.Com",
	"bachelor of commerce":              "B.Com",
	"b.com (hons)":                      "B.Com",
	"b.com (hons.)":                     "B.Com",
	"b.com. (hons.)":                    "B.Com",
	"ba":                                "BA",
	"b.a":                               "BA",
	"b.a.":                              "BA",
	"bachelor of arts":                  "BA",
	"bca":                               "BCA",
	"bachelor of computer applications": "BCA",
	"b.arch":                            "B.Arch",
	"bachelor of architecture":          "B.Arch",
	"b.des":                             "B.Des",
	"bachelor of design":                "B.Des",
	"b.pharm":                           "B.Pharm",
	"bachelor of pharmacy":              "B.Pharm",
	"bpt":                               "BPT",
	"bachelor of physiotherapy":         "BPT",
	"b.optom":                           "B.Optom",
	"bachelor of optometry":             "B.Optom",
	"bjmc":                              "BJMC",
	"bachelor of journalism":            "BJMC",
	"bballb":                            "BBA LLB",
	"bba llb":                           "BBA LLB",
	"ballb":                             "BA LLB",
	"ba llb":                            "BA LLB",
	"llb":                               "LLB",
	"bachelor of law":                   "LLB",
	"b.ed":                              "B.Ed",
	"bachelor of education":             "B.Ed",
	"bhm":                               "BHM",
	"bachelor of hotel management":      "BHM",
	"bsc-hotel":                         "BHM",
	"b.sc hotel management":             "BHM",
	"mbbs":                              "MBBS",
	"bds":                               "BDS",
	"m.tech":                            "M.Tech",
	"mtech":                             "M.Tech",
	"m.e.":                              "M.Tech",
	"master of engineering":             "M.Tech",
	"m.sc":                              "M.Sc",
	"m.sc.":                             "M.Sc",
	"msc":                               "M.Sc",
	"master of science":                 "M.Sc",
	"mba":                               "MBA",
	"master of business administration": "MBA",
	"m.com":                             "M.Com",
	"m.com.":                            "M.Com",
	"master of commerce":                "M.Com",
	"ma":                                "MA",
	"m.a":                               "MA",
	"m.a.":                              "MA",
	"master of arts":                    "MA",
	"mca":                               "MCA",
	"master of computer applications":   "MCA",
	"m.arch":                            "M.Arch",
	"master of architecture":            "M.Arch",
	"m.des":                             "M.Des",
	"master of design":                  "M.Des",
	"m.pharm":                           "M.Pharm",
	"master of pharmacy":                "M.Pharm",
	"mpt":                               "MPT",
	"master of physiotherapy":           "MPT",
	"m.optom":                           "M.Optom",
	"master of optometry":               "M.Optom",
	"mjmc":                              "MJMC",
	"llm":                               "LLM",
	"master of law":                     "LLM",
	"m.ed":                              "M.Ed",
	"master of education":               "M.Ed",
	"ph.d.":                             "Ph.D.",
	"phd":                               "Ph.D.",
	"doctor of philosophy":              "Ph.D.",
	"pharm.d":                           "Pharm.D",
	"doctor of pharmacy":                "Pharm.D",
	"diploma":                           "Diploma",
	"d.pharm":                           "D.Pharm",
	"diploma in pharmacy":               "D.Pharm",
	"certificate":                       "Certificate",
	"btech lateral":                     "B.Tech Lateral",
	"b.tech lateral":                    "B.Tech Lateral",
	"b.sc lateral":                      "B.Sc Lateral",
	"b.des lateral":                     "B.Des Lateral",
	"bhm lateral":                       "BHM Lateral",
	"b.optom lateral":                   "B.Optom Lateral",
	"bpt lateral":                       "BPT Lateral",
	"bba lateral":                       "BBA Lateral",
	"bmrit lateral":                     "BMRIT Lateral",
}

// NormalizeDegree canonicalizes a raw degree label.
// Unknown labels come back tagged Unrecognized with the raw text preserved.
func NormalizeDegree(raw string) Degree {
	key := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := degreeTable[key]; ok {
		return Degree{Canonical: canonical, Raw: raw, Recognized: true}
	}
	return Degree{Raw: raw}
}
