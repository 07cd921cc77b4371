package roster

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dcor01/student-mentor-matching/internal/domain"
)

var (
	ErrNoAge         = errors.New("age has no digits")
	ErrBadTitle      = errors.New("unrecognized title")
	ErrBadPreference = errors.New("unrecognized gender preference")
)

// Failure records one row excluded from the matching pool.
type Failure struct {
	Sheet  string
	Row    int
	Reason string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s row %d: %s", f.Sheet, f.Row, f.Reason)
}

// CampusTable maps faculty-name fragments to a campus. Lookup is a
// case-insensitive contains check, first hit wins.
type CampusTable struct {
	Campus1 []string
	Campus2 []string
}

func (t CampusTable) Lookup(faculty string) domain.CampusID {
	fac := strings.ToLower(faculty)
	for _, k := range t.Campus1 {
		if strings.Contains(fac, strings.ToLower(strings.TrimSpace(k))) {
			return domain.Campus1
		}
	}
	for _, k := range t.Campus2 {
		if strings.Contains(fac, strings.ToLower(strings.TrimSpace(k))) {
			return domain.Campus2
		}
	}
	return domain.CampusUnknown
}

// CleanText collapses whitespace (including non-breaking spaces) and trims.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// ParseAge extracts the first contiguous digit run: "21", "21 years" and
// " 21 " all parse to 21.
func ParseAge(s string) (int, error) {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return strconv.Atoi(s[start:i])
		}
	}
	if start < 0 {
		return 0, ErrNoAge
	}
	return strconv.Atoi(s[start:])
}

// ParseTitle maps a title abbreviation to a gender: Mr. is male, Ms. and
// Mrs. are female. Anything else fails the row.
func ParseTitle(s string) (domain.Gender, error) {
	t := strings.TrimSuffix(strings.ToLower(CleanText(s)), ".")
	switch t {
	case "mr":
		return domain.GenderMale, nil
	case "ms", "mrs":
		return domain.GenderFemale, nil
	}
	return "", fmt.Errorf("%w: %q", ErrBadTitle, s)
}

// ParsePreference normalizes a free-text gender preference. Any flexible
// wording ("Either way is fine!") maps to Either. "female" is checked
// before "male" because it contains it.
func ParsePreference(s string) (domain.GenderPreference, error) {
	p := strings.ToLower(CleanText(s))
	switch {
	case strings.Contains(p, "either"), strings.Contains(p, "any"), strings.Contains(p, "no preference"):
		return domain.PreferEither, nil
	case strings.Contains(p, "female"):
		return domain.PreferFemale, nil
	case strings.Contains(p, "male"):
		return domain.PreferMale, nil
	}
	return "", fmt.Errorf("%w: %q", ErrBadPreference, s)
}
