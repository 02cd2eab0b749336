package normalize

// fieldTable maps catalog field labels to the umbrella categories shown to
// counselors. Kept deliberately small and self-explanatory.
var fieldTable = map[string]string{
	"Engineering": "Engineering",

	"Computer Science": "Computer Science & IT",
	"Computing":        "Computer Science & IT",

	"Science":       "Basic Sciences",
	"Sciences":      "Basic Sciences",
	"Biotechnology": "Basic Sciences",

	"Allied Health Sciences": "Health Sciences",
	"Health Sciences":        "Health Sciences",
	"Nursing":                "Health Sciences",

	"Medical Sciences": "Medical Sciences",

	"Commerce":              "Commerce & Business",
	"Management":            "Commerce & Business",
	"Tourism & Hospitality": "Commerce & Business",
	"Hospitality":           "Commerce & Business",

	"Design":    "Design & Arts",
	"Fine Arts": "Design & Arts",

	"Media":      "Media & Communication",
	"Journalism": "Media & Communication",

	"Liberal Arts": "Arts & Humanities",

	"Law":            "Law",
	"Pharmacy":       "Pharmacy",
	"Architecture":   "Architecture",
	"Education":      "Education",
	"Agriculture":    "Agriculture",
	"Research":       "Research",
	"Certifications": "Certifications",
}

// StandardizeField maps a raw field label to its umbrella category.
// Unmapped labels pass through unchanged.
func StandardizeField(raw string) string {
	if standardized, ok := fieldTable[raw]; ok {
		return standardized
	}
	return raw
}
