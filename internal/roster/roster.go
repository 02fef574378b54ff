package roster

import (
	"errors"
	"slices"
	"strings"

	"github.com/programme-lv/gradebook/internal/subject"
)

// Student is a roster entry: the subjects a student is enrolled in, in
// enrollment order, and the grades recorded for each of them.
type Student struct {
	Name     string
	subjects []subject.Subject
	grades   map[subject.Subject][]float64
}

func newStudent(name string) *Student {
	return &Student{
		Name:   name,
		grades: make(map[subject.Subject][]float64),
	}
}

func (s *Student) Subjects() []subject.Subject {
	return slices.Clone(s.subjects)
}

func (s *Student) Enrolled(subj subject.Subject) bool {
	_, ok := s.grades[subj]
	return ok
}

// Grades returns a copy of the grades recorded for subj.
func (s *Student) Grades(subj subject.Subject) []float64 {
	return slices.Clone(s.grades[subj])
}

// Average is the mean of all grades across all subjects pooled together,
// or 0 when the student has no grades yet.
func (s *Student) Average() float64 {
	var sum float64
	var n int
	for _, subj := range s.subjects {
		for _, g := range s.grades[subj] {
			sum += g
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func (s *Student) clone() *Student {
	c := newStudent(s.Name)
	c.subjects = slices.Clone(s.subjects)
	for subj, gs := range s.grades {
		c.grades[subj] = slices.Clone(gs)
	}
	return c
}

// Roster keeps students in insertion order. It is not safe for concurrent use.
type Roster struct {
	order    []string
	students map[string]*Student
}

func New() *Roster {
	return &Roster{students: make(map[string]*Student)}
}

func (r *Roster) Len() int {
	return len(r.order)
}

func (r *Roster) Has(name string) bool {
	_, ok := r.students[name]
	return ok
}

// Names returns student names in insertion order.
func (r *Roster) Names() []string {
	return slices.Clone(r.order)
}

// Lookup returns a copy of the named student.
func (r *Roster) Lookup(name string) (*Student, error) {
	st, ok := r.students[name]
	if !ok {
		return nil, newUnknownStudent(name)
	}
	return st.clone(), nil
}

// AddStudent inserts a student with no enrollments.
func (r *Roster) AddStudent(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if r.Has(name) {
		return newDuplicateStudent(name)
	}
	r.students[name] = newStudent(name)
	r.order = append(r.order, name)
	return nil
}

// RemoveStudent deletes the student together with all enrollments and grades.
// The name is looked up as given, without validation.
func (r *Roster) RemoveStudent(name string) error {
	if !r.Has(name) {
		return newUnknownStudent(name)
	}
	delete(r.students, name)
	r.order = slices.DeleteFunc(r.order, func(n string) bool { return n == name })
	return nil
}

// Enrollment is a successful EnrollStudent result.
type Enrollment struct {
	Student string
	Subject subject.Subject
}

// EnrollStudent handles "Name-Subject" input.
func (r *Roster) EnrollStudent(raw string) (Enrollment, error) {
	rawName, rawSubj, err := SplitFields(raw)
	if err != nil {
		return Enrollment{}, err
	}
	name := strings.TrimSpace(rawName)
	subjName := strings.TrimSpace(rawSubj)

	if !r.Has(name) {
		return Enrollment{}, newUnknownStudent(name)
	}
	subj, err := subject.Parse(subjName)
	if errors.Is(err, subject.ErrEmpty) {
		return Enrollment{}, newEmptySubject(name)
	}
	if err != nil {
		return Enrollment{}, newUnknownSubject(name, subjName)
	}

	if err := r.Enroll(name, subj); err != nil {
		return Enrollment{}, err
	}
	return Enrollment{Student: name, Subject: subj}, nil
}

// Enroll adds subj with an empty grade list to the student's enrollments.
func (r *Roster) Enroll(name string, subj subject.Subject) error {
	st, ok := r.students[name]
	if !ok {
		return newUnknownStudent(name)
	}
	if !subj.Valid() {
		return newUnknownSubject(name, subj.String())
	}
	if st.Enrolled(subj) {
		return newAlreadyEnrolled(name, subj)
	}
	st.subjects = append(st.subjects, subj)
	st.grades[subj] = []float64{}
	return nil
}

// GradeEntry is a successful RecordGrade result.
type GradeEntry struct {
	Student string
	Subject subject.Subject
	Grade   float64
}

// RecordGrade handles a student name and "Subject-Grade" input. The subject
// must already be one the student is enrolled in.
func (r *Roster) RecordGrade(name, raw string) (GradeEntry, error) {
	st, ok := r.students[name]
	if !ok {
		return GradeEntry{}, newUnknownStudent(name)
	}
	rawSubj, rawGrade, err := SplitFields(raw)
	if err != nil {
		return GradeEntry{}, err
	}
	subjName := strings.TrimSpace(rawSubj)

	subj, err := subject.Parse(subjName)
	if err != nil || !st.Enrolled(subj) {
		return GradeEntry{}, newNotEnrolled(name, subjName)
	}

	g, err := ParseGrade(strings.TrimSpace(rawGrade))
	if err != nil {
		return GradeEntry{}, err
	}
	st.grades[subj] = append(st.grades[subj], g)
	return GradeEntry{Student: name, Subject: subj, Grade: g}, nil
}
