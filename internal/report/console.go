package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dcor01/student-mentor-matching/internal/domain"
)

// PrintUnmatched writes the students needing manual follow-up as an
// aligned table. Nothing is printed when everyone was matched.
func PrintUnmatched(w io.Writer, students []domain.StudentRecord) {
	if len(students) == 0 {
		fmt.Fprintln(w, "All students were matched.")
		return
	}

	fmt.Fprintf(w, "%d student(s) could not be matched:\n", len(students))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ROW\tNAME\tAGE\tPROGRAM\tFACULTY\tPREFERENCE")
	for _, s := range students {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\n",
			s.Row, s.Name, s.Age, s.Program, s.Faculty, s.Preference)
	}
	tw.Flush()
}
