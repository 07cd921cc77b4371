package domain

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

type GenderPreference string

const (
	PreferMale   GenderPreference = "Male"
	PreferFemale GenderPreference = "Female"
	PreferEither GenderPreference = "Either"
)

// Accepts reports whether a mentor of gender g satisfies the preference.
// Either accepts any gender.
func (p GenderPreference) Accepts(g Gender) bool {
	return p == PreferEither || string(p) == string(g)
}

// CampusID is a coarse locality class derived from the faculty name.
// It is a tie-break signal only, never a hard constraint.
type CampusID string

const (
	Campus1       CampusID = "Campus 1"
	Campus2       CampusID = "Campus 2"
	CampusUnknown CampusID = "Unknown"
)

type StudentRecord struct {
	Row        int // 1-based source row, final tie-break key
	Name       string
	Age        int
	Program    string
	Faculty    string
	Campus     CampusID
	Preference GenderPreference
}

type MentorRecord struct {
	Row       int
	Name      string
	Age       int
	Program   string
	Faculty   string
	Campus    CampusID
	Gender    Gender
	Remaining int // mentee slots left, decremented per assignment
}

type MatchResult struct {
	Student    StudentRecord
	Mentor     MentorRecord
	SameCampus bool
}
