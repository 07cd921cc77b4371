package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcor01/student-mentor-matching/internal/domain"
	"github.com/dcor01/student-mentor-matching/internal/match"
)

func student(row, age int, pref domain.GenderPreference, campus domain.CampusID) domain.StudentRecord {
	return domain.StudentRecord{Row: row, Age: age, Preference: pref, Campus: campus}
}

func mentor(row, age int, g domain.Gender, campus domain.CampusID, capacity int) domain.MentorRecord {
	return domain.MentorRecord{Row: row, Age: age, Gender: g, Campus: campus, Remaining: capacity}
}

// ------------------------------------------------------------------
// Ordering policy
// ------------------------------------------------------------------

func TestRun_AgePriority(t *testing.T) {
	// Oldest student gets the oldest mentor; the youngest runs out of slots.
	students := []domain.StudentRecord{
		student(2, 40, domain.PreferEither, domain.Campus1),
		student(3, 35, domain.PreferEither, domain.Campus1),
		student(4, 20, domain.PreferEither, domain.Campus1),
	}
	mentors := []domain.MentorRecord{
		mentor(2, 50, domain.GenderFemale, domain.Campus1, 1),
		mentor(3, 30, domain.GenderMale, domain.Campus1, 1),
	}

	out := match.Run(students, mentors)

	require.Len(t, out.Matches, 2)
	assert.Equal(t, 40, out.Matches[0].Student.Age)
	assert.Equal(t, 50, out.Matches[0].Mentor.Age)
	assert.Equal(t, 35, out.Matches[1].Student.Age)
	assert.Equal(t, 30, out.Matches[1].Mentor.Age)
	require.Len(t, out.Unmatched, 1)
	assert.Equal(t, 20, out.Unmatched[0].Age)
}

func TestRun_EqualAgeStudentsKeepInputOrder(t *testing.T) {
	// Same age: the earlier input row is served first and takes the older mentor.
	students := []domain.StudentRecord{
		student(2, 30, domain.PreferEither, domain.Campus1),
		student(3, 30, domain.PreferEither, domain.Campus1),
	}
	mentors := []domain.MentorRecord{
		mentor(2, 60, domain.GenderMale, domain.Campus1, 1),
		mentor(3, 40, domain.GenderMale, domain.Campus1, 1),
	}

	out := match.Run(students, mentors)

	require.Len(t, out.Matches, 2)
	assert.Equal(t, 2, out.Matches[0].Student.Row)
	assert.Equal(t, 60, out.Matches[0].Mentor.Age)
	assert.Equal(t, 3, out.Matches[1].Student.Row)
	assert.Equal(t, 40, out.Matches[1].Mentor.Age)
}

// ------------------------------------------------------------------
// Hard constraints
// ------------------------------------------------------------------

func TestRun_GenderMandatory(t *testing.T) {
	// A Female preference never pairs with a male mentor, even if he is free.
	students := []domain.StudentRecord{student(2, 25, domain.PreferFemale, domain.Campus1)}
	mentors := []domain.MentorRecord{mentor(2, 50, domain.GenderMale, domain.Campus1, 5)}

	out := match.Run(students, mentors)

	assert.Empty(t, out.Matches)
	require.Len(t, out.Unmatched, 1)
}

func TestRun_EitherAcceptsAnyGender(t *testing.T) {
	students := []domain.StudentRecord{student(2, 25, domain.PreferEither, domain.Campus1)}
	mentors := []domain.MentorRecord{mentor(2, 50, domain.GenderFemale, domain.Campus1, 1)}

	out := match.Run(students, mentors)

	require.Len(t, out.Matches, 1)
	assert.Empty(t, out.Unmatched)
}

func TestRun_CapacityInvariant(t *testing.T) {
	students := []domain.StudentRecord{
		student(2, 50, domain.PreferEither, domain.Campus1),
		student(3, 40, domain.PreferEither, domain.Campus1),
		student(4, 30, domain.PreferEither, domain.Campus1),
		student(5, 20, domain.PreferEither, domain.Campus1),
		student(6, 10, domain.PreferEither, domain.Campus1),
	}
	mentors := []domain.MentorRecord{
		mentor(2, 60, domain.GenderMale, domain.Campus1, 2),
		mentor(3, 55, domain.GenderFemale, domain.Campus1, 2),
	}

	out := match.Run(students, mentors)

	require.Len(t, out.Matches, 4)
	require.Len(t, out.Unmatched, 1)

	perMentor := map[int]int{}
	for _, m := range out.Matches {
		perMentor[m.Mentor.Row]++
	}
	for row, n := range perMentor {
		assert.LessOrEqual(t, n, 2, "mentor row %d over capacity", row)
	}
}

func TestRun_ZeroCapacityMentorNeverAssigned(t *testing.T) {
	students := []domain.StudentRecord{student(2, 25, domain.PreferEither, domain.Campus1)}
	mentors := []domain.MentorRecord{mentor(2, 50, domain.GenderMale, domain.Campus1, 0)}

	out := match.Run(students, mentors)

	assert.Empty(t, out.Matches)
	require.Len(t, out.Unmatched, 1)
}

// ------------------------------------------------------------------
// Candidate ranking
// ------------------------------------------------------------------

func TestRun_CampusTieBreak(t *testing.T) {
	// Equal age and gender: the same-campus mentor wins.
	students := []domain.StudentRecord{student(2, 25, domain.PreferEither, domain.Campus1)}
	mentors := []domain.MentorRecord{
		mentor(2, 50, domain.GenderMale, domain.Campus2, 1),
		mentor(3, 50, domain.GenderMale, domain.Campus1, 1),
	}

	out := match.Run(students, mentors)

	require.Len(t, out.Matches, 1)
	assert.Equal(t, domain.Campus1, out.Matches[0].Mentor.Campus)
	assert.True(t, out.Matches[0].SameCampus)
}

func TestRun_UnknownCampusRanksBetweenMatchAndMismatch(t *testing.T) {
	// Unknown beats a known mismatch...
	students := []domain.StudentRecord{student(2, 25, domain.PreferEither, domain.Campus1)}
	mentors := []domain.MentorRecord{
		mentor(2, 50, domain.GenderMale, domain.Campus2, 1),
		mentor(3, 50, domain.GenderMale, domain.CampusUnknown, 1),
	}
	out := match.Run(students, mentors)
	require.Len(t, out.Matches, 1)
	assert.Equal(t, domain.CampusUnknown, out.Matches[0].Mentor.Campus)
	assert.False(t, out.Matches[0].SameCampus)

	// ...but loses to an exact known match.
	mentors = []domain.MentorRecord{
		mentor(2, 50, domain.GenderMale, domain.CampusUnknown, 1),
		mentor(3, 50, domain.GenderMale, domain.Campus1, 1),
	}
	out = match.Run(students, mentors)
	require.Len(t, out.Matches, 1)
	assert.Equal(t, domain.Campus1, out.Matches[0].Mentor.Campus)
}

func TestRun_MentorAgeBeforeInputOrder(t *testing.T) {
	// Same campus tier: older mentor wins regardless of position.
	students := []domain.StudentRecord{student(2, 25, domain.PreferEither, domain.Campus1)}
	mentors := []domain.MentorRecord{
		mentor(2, 45, domain.GenderMale, domain.Campus1, 1),
		mentor(3, 55, domain.GenderMale, domain.Campus1, 1),
	}

	out := match.Run(students, mentors)

	require.Len(t, out.Matches, 1)
	assert.Equal(t, 55, out.Matches[0].Mentor.Age)
}

func TestRun_FullTieFallsBackToMentorRow(t *testing.T) {
	// Identical campus, age and gender: first mentor in input order wins.
	students := []domain.StudentRecord{student(2, 25, domain.PreferEither, domain.Campus1)}
	mentors := []domain.MentorRecord{
		mentor(2, 50, domain.GenderMale, domain.Campus1, 1),
		mentor(3, 50, domain.GenderMale, domain.Campus1, 1),
	}

	out := match.Run(students, mentors)

	require.Len(t, out.Matches, 1)
	assert.Equal(t, 2, out.Matches[0].Mentor.Row)
}

// ------------------------------------------------------------------
// Structural invariants
// ------------------------------------------------------------------

func TestRun_PartitionInvariant(t *testing.T) {
	students := []domain.StudentRecord{
		student(2, 40, domain.PreferFemale, domain.Campus1),
		student(3, 35, domain.PreferMale, domain.Campus2),
		student(4, 30, domain.PreferEither, domain.CampusUnknown),
		student(5, 22, domain.PreferFemale, domain.Campus2),
	}
	mentors := []domain.MentorRecord{
		mentor(2, 50, domain.GenderFemale, domain.Campus1, 1),
		mentor(3, 45, domain.GenderMale, domain.Campus2, 1),
	}

	out := match.Run(students, mentors)

	seen := map[int]int{}
	for _, m := range out.Matches {
		seen[m.Student.Row]++
	}
	for _, s := range out.Unmatched {
		seen[s.Row]++
	}
	require.Len(t, seen, len(students))
	for row, n := range seen {
		assert.Equal(t, 1, n, "student row %d appears %d times", row, n)
	}
}

func TestRun_Deterministic(t *testing.T) {
	students := []domain.StudentRecord{
		student(2, 30, domain.PreferEither, domain.Campus1),
		student(3, 30, domain.PreferEither, domain.Campus2),
		student(4, 28, domain.PreferFemale, domain.CampusUnknown),
	}
	mentors := []domain.MentorRecord{
		mentor(2, 50, domain.GenderFemale, domain.Campus2, 1),
		mentor(3, 50, domain.GenderMale, domain.Campus1, 1),
		mentor(4, 50, domain.GenderFemale, domain.Campus1, 1),
	}

	first := match.Run(students, mentors)
	second := match.Run(students, mentors)

	assert.Equal(t, first, second)
}

func TestRun_DoesNotMutateInputs(t *testing.T) {
	students := []domain.StudentRecord{
		student(2, 40, domain.PreferEither, domain.Campus1),
		student(3, 20, domain.PreferEither, domain.Campus1),
	}
	mentors := []domain.MentorRecord{mentor(2, 50, domain.GenderMale, domain.Campus1, 2)}

	match.Run(students, mentors)

	assert.Equal(t, 2, mentors[0].Remaining)
	assert.Equal(t, 40, students[0].Age)
}

func TestRun_NoMentors(t *testing.T) {
	students := []domain.StudentRecord{student(2, 25, domain.PreferEither, domain.Campus1)}

	out := match.Run(students, nil)

	assert.Empty(t, out.Matches)
	require.Len(t, out.Unmatched, 1)
}
