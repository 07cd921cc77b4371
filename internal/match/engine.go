// Package match implements the deterministic greedy oldest-first pairing
// of students with mentors.
//
// Students are served in descending age order and each assignment is
// committed immediately, never revisited. Gender preference and mentor
// capacity are hard constraints; campus proximity and mentor age only
// rank candidates. Every tie bottoms out at the original input row, so
// identical input always produces identical output.
package match

import (
	"sort"

	"github.com/dcor01/student-mentor-matching/internal/domain"
)

// Outcome is the complete result of one run. Every normalized student
// lands in exactly one of the two lists.
type Outcome struct {
	Matches   []domain.MatchResult
	Unmatched []domain.StudentRecord
}

// Campus ranking tiers: an exact known-campus match beats a pairing where
// either side is Unknown, which beats a known-campus mismatch.
const (
	tierMismatch = iota
	tierUnknown
	tierExact
)

// Run pairs students with mentors. It copies both pools, so callers keep
// their slices untouched; capacity state lives only inside the run.
func Run(students []domain.StudentRecord, mentors []domain.MentorRecord) Outcome {
	pool := make([]domain.MentorRecord, len(mentors))
	copy(pool, mentors)

	queue := make([]domain.StudentRecord, len(students))
	copy(queue, students)
	// Stable sort keeps input order for equal ages.
	sort.SliceStable(queue, func(i, j int) bool { return queue[i].Age > queue[j].Age })

	var out Outcome
	for _, s := range queue {
		best := -1
		for i := range pool {
			if pool[i].Remaining <= 0 || !s.Preference.Accepts(pool[i].Gender) {
				continue
			}
			if best < 0 || better(s, pool[i], pool[best]) {
				best = i
			}
		}
		if best < 0 {
			out.Unmatched = append(out.Unmatched, s)
			continue
		}

		pool[best].Remaining--
		out.Matches = append(out.Matches, domain.MatchResult{
			Student:    s,
			Mentor:     pool[best],
			SameCampus: campusTier(s.Campus, pool[best].Campus) == tierExact,
		})
	}
	return out
}

func campusTier(s, m domain.CampusID) int {
	switch {
	case s == m && s != domain.CampusUnknown:
		return tierExact
	case s == domain.CampusUnknown || m == domain.CampusUnknown:
		return tierUnknown
	default:
		return tierMismatch
	}
}

// better reports whether candidate a outranks candidate b for student s:
// campus tier, then mentor age descending, then mentor input row.
func better(s domain.StudentRecord, a, b domain.MentorRecord) bool {
	if ta, tb := campusTier(s.Campus, a.Campus), campusTier(s.Campus, b.Campus); ta != tb {
		return ta > tb
	}
	if a.Age != b.Age {
		return a.Age > b.Age
	}
	return a.Row < b.Row
}
