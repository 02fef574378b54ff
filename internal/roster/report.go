package roster

import (
	"fmt"
	"io"
	"strings"

	"github.com/programme-lv/gradebook/internal/subject"
)

const NoStudentsMsg = "No students found."

// Summary is one report line.
type Summary struct {
	Name     string
	Subjects []subject.Subject
	Average  float64
}

func (s Summary) String() string {
	return fmt.Sprintf("%s, Subjects: %s, Average Grade: %.2f",
		s.Name, subject.Join(s.Subjects), s.Average)
}

type Report struct {
	Students []Summary
}

func (r *Roster) Report() Report {
	res := Report{Students: make([]Summary, 0, len(r.order))}
	for _, name := range r.order {
		st := r.students[name]
		res.Students = append(res.Students, Summary{
			Name:     name,
			Subjects: st.Subjects(),
			Average:  st.Average(),
		})
	}
	return res
}

func (rep Report) Empty() bool {
	return len(rep.Students) == 0
}

func (rep Report) String() string {
	var sb strings.Builder
	_, _ = rep.WriteTo(&sb)
	return sb.String()
}

// WriteTo renders the report the way the console displays it.
func (rep Report) WriteTo(w io.Writer) (int64, error) {
	var n int64
	write := func(s string) error {
		k, err := io.WriteString(w, s)
		n += int64(k)
		return err
	}

	if rep.Empty() {
		return n, write(NoStudentsMsg + "\n")
	}
	if err := write("\nDisplaying all students:\n"); err != nil {
		return n, err
	}
	for _, s := range rep.Students {
		if err := write(s.String() + "\n"); err != nil {
			return n, err
		}
	}
	return n, nil
}
