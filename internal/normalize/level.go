package normalize

// Level is the hierarchical degree level used for counselor-facing filtering.
type Level string

const (
	LevelDiploma     Level = "Diploma"
	LevelBachelor    Level = "Bachelor"
	LevelLateral     Level = "Bachelor (Lateral Entry)"
	LevelMasters     Level = "Masters"
	LevelPhD         Level = "PhD"
	LevelCertificate Level = "Certificate"
	LevelOther       Level = "Other"
)

// Levels lists every degree level in display order.
func Levels() []Level {
	return []Level{
		LevelDiploma,
		LevelBachelor,
		LevelLateral,
		LevelMasters,
		LevelPhD,
		LevelCertificate,
		LevelOther,
	}
}

// levelTable partitions canonical degree tags into levels.
var levelTable = map[string]Level{
	"Diploma": LevelDiploma,
	"D.Pharm": LevelDiploma,

	"B.Tech":  LevelBachelor,
	"B.Sc":    LevelBachelor,
	"BBA":     LevelBachelor,
	"B.Com":   LevelBachelor,
	"BA":      LevelBachelor,
	"BCA":     LevelBachelor,
	"B.Arch":  LevelBachelor,
	"B.Des":   LevelBachelor,
	"B.Pharm": LevelBachelor,
	"BPT":     LevelBachelor,
	"B.Optom": LevelBachelor,
	"BJMC":    LevelBachelor,
	"BBA LLB": LevelBachelor,
	"BA LLB":  LevelBachelor,
	"LLB":     LevelBachelor,
	"B.Ed":    LevelBachelor,
	"BHM":     LevelBachelor,
	"MBBS":    LevelBachelor,
	"BDS":     LevelBachelor,

	"B.Tech Lateral":  LevelLateral,
	"B.Sc Lateral":    LevelLateral,
	"B.Des Lateral":   LevelLateral,
	"BHM Lateral":     LevelLateral,
	"B.Optom Lateral": LevelLateral,
	"BPT Lateral":     LevelLateral,
	"BBA Lateral":     LevelLateral,
	"BMRIT Lateral":   LevelLateral,

	"M.Tech":  LevelMasters,
	"M.Sc":    LevelMasters,
	"MBA":     LevelMasters,
	"M.Com":   LevelMasters,
	"MA":      LevelMasters,
	"MCA":     LevelMasters,
	"M.Arch":  LevelMasters,
	"M.Des":   LevelMasters,
	"M.Pharm": LevelMasters,
	"MPT":     LevelMasters,
	"M.Optom": LevelMasters,
	"MJMC":    LevelMasters,
	"LLM":     LevelMasters,
	"M.Ed":    LevelMasters,
	"Pharm.D": LevelMasters,

	"Ph.D.": LevelPhD,

	"Certificate": LevelCertificate,
}

// DegreeLevelOf returns the hierarchical level for a raw degree label.
// Unrecognized degrees and recognized degrees absent from the level table
// both map to Other.
func DegreeLevelOf(rawDegree string) Level {
	d := NormalizeDegree(rawDegree)
	if !d.Recognized {
		return LevelOther
	}
	if level, ok := levelTable[d.Canonical]; ok {
		return level
	}
	return LevelOther
}
