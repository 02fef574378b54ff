package roster_test

import (
	"errors"
	"testing"

	"github.com/programme-lv/gradebook/internal/roster"
	"github.com/programme-lv/gradebook/internal/subject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddStudent(t *testing.T) {
	r := roster.New()

	require.NoError(t, r.AddStudent("Ana"))
	require.NoError(t, r.AddStudent("Bob"))
	assert.Equal(t, []string{"Ana", "Bob"}, r.Names())

	err := r.AddStudent("Ana")
	require.ErrorIs(t, err, roster.ErrDuplicateStudent)
	assert.EqualError(t, err, "Student Ana already exists.")
	assert.Equal(t, 2, r.Len())

	var rerr *roster.Error
	require.True(t, errors.As(err, &rerr))
	assert.True(t, rerr.Kind.Notice())
	assert.Equal(t, "Ana", rerr.Student)

	require.ErrorIs(t, r.AddStudent(""), roster.ErrEmptyName)
	require.ErrorIs(t, r.AddStudent("Ana1"), roster.ErrInvalidCharacters)
	assert.Equal(t, 2, r.Len())
}

func TestRemoveStudent(t *testing.T) {
	r := roster.New()
	require.NoError(t, r.AddStudent("Ana"))
	require.NoError(t, r.AddStudent("Bob"))
	require.NoError(t, r.AddStudent("Cid"))

	err := r.RemoveStudent("Dan")
	require.ErrorIs(t, err, roster.ErrUnknownStudent)
	assert.EqualError(t, err, "Student Dan does not exist.")
	assert.Equal(t, 3, r.Len())

	// removal is by exact key
	require.ErrorIs(t, r.RemoveStudent(" Bob"), roster.ErrUnknownStudent)

	require.NoError(t, r.RemoveStudent("Bob"))
	assert.Equal(t, []string{"Ana", "Cid"}, r.Names())
	assert.False(t, r.Has("Bob"))

	require.NoError(t, r.AddStudent("Bob"))
	assert.Equal(t, []string{"Ana", "Cid", "Bob"}, r.Names())
}

func TestRemoveStudentDropsNestedData(t *testing.T) {
	r := roster.New()
	require.NoError(t, r.AddStudent("Ana"))
	_, err := r.EnrollStudent("Ana-Math")
	require.NoError(t, err)
	_, err = r.RecordGrade("Ana", "Math-5")
	require.NoError(t, err)

	require.NoError(t, r.RemoveStudent("Ana"))
	require.NoError(t, r.AddStudent("Ana"))

	st, err := r.Lookup("Ana")
	require.NoError(t, err)
	assert.Empty(t, st.Subjects())
	assert.Zero(t, st.Average())
}

func TestEnrollStudent(t *testing.T) {
	r := roster.New()
	require.NoError(t, r.AddStudent("Ana"))
	require.NoError(t, r.AddStudent("Bob"))

	e, err := r.EnrollStudent(" Ana - Math ")
	require.NoError(t, err)
	assert.Equal(t, roster.Enrollment{Student: "Ana", Subject: subject.Math}, e)

	err = asErr(r.EnrollStudent("Ana-Math"))
	require.ErrorIs(t, err, roster.ErrAlreadyEnrolled)
	assert.EqualError(t, err, "Student Ana is already enrolled in the Math class.")

	st, err := r.Lookup("Ana")
	require.NoError(t, err)
	assert.Equal(t, []subject.Subject{subject.Math}, st.Subjects())

	err = asErr(r.EnrollStudent("Bob-Chemistry"))
	require.ErrorIs(t, err, roster.ErrUnknownSubject)
	assert.EqualError(t, err,
		"Invalid subject. Allowed subjects are: Math, Biology, History, English, Sport, Physics.")
	st, err = r.Lookup("Bob")
	require.NoError(t, err)
	assert.Empty(t, st.Subjects())

	require.ErrorIs(t, asErr(r.EnrollStudent("Bob- ")), roster.ErrEmptySubject)
	require.ErrorIs(t, asErr(r.EnrollStudent("Bob-math")), roster.ErrUnknownSubject)
	require.ErrorIs(t, asErr(r.EnrollStudent("Ana-Math-5")), roster.ErrMalformedInput)
	require.ErrorIs(t, asErr(r.EnrollStudent("AnaMath")), roster.ErrMalformedInput)
	require.ErrorIs(t, asErr(r.EnrollStudent("Zed-Math")), roster.ErrUnknownStudent)
}

func TestEnrollCheckOrder(t *testing.T) {
	r := roster.New()

	// unknown student is reported before the subject is looked at
	require.ErrorIs(t, asErr(r.EnrollStudent("Zed-Chemistry")), roster.ErrUnknownStudent)
	// format is checked before anything else
	require.ErrorIs(t, asErr(r.EnrollStudent("Zed-Chemistry-x")), roster.ErrMalformedInput)
}

func TestEnrollKeepsEnrollmentOrder(t *testing.T) {
	r := roster.New()
	require.NoError(t, r.AddStudent("Ana"))
	require.NoError(t, r.Enroll("Ana", subject.Physics))
	require.NoError(t, r.Enroll("Ana", subject.Math))
	require.NoError(t, r.Enroll("Ana", subject.Sport))
	require.ErrorIs(t, r.Enroll("Ana", subject.Math), roster.ErrAlreadyEnrolled)
	require.ErrorIs(t, r.Enroll("Ana", subject.Subject(0)), roster.ErrUnknownSubject)
	require.ErrorIs(t, r.Enroll("Bob", subject.Math), roster.ErrUnknownStudent)

	st, err := r.Lookup("Ana")
	require.NoError(t, err)
	assert.Equal(t, []subject.Subject{subject.Physics, subject.Math, subject.Sport}, st.Subjects())
}

func TestRecordGrade(t *testing.T) {
	r := roster.New()
	require.NoError(t, r.AddStudent("Ana"))
	require.NoError(t, r.Enroll("Ana", subject.Math))

	g, err := r.RecordGrade("Ana", "Math-5")
	require.NoError(t, err)
	assert.Equal(t, roster.GradeEntry{Student: "Ana", Subject: subject.Math, Grade: 5}, g)

	_, err = r.RecordGrade("Ana", " Math - 2 ")
	require.NoError(t, err)
	_, err = r.RecordGrade("Ana", "Math-6")
	require.NoError(t, err)

	for _, raw := range []string{"Math-1.99", "Math-6.5", "Math-0", "Math-+7"} {
		_, err := r.RecordGrade("Ana", raw)
		require.ErrorIs(t, err, roster.ErrOutOfRange, "input %q", raw)
	}
	// a negative grade needs a second separator
	require.ErrorIs(t, asErr(r.RecordGrade("Ana", "Math--3")), roster.ErrMalformedInput)
	require.ErrorIs(t, asErr(r.RecordGrade("Ana", "Math-five")), roster.ErrNotANumber)

	st, err := r.Lookup("Ana")
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 2, 6}, st.Grades(subject.Math))
}

func TestRecordGradeFailures(t *testing.T) {
	r := roster.New()
	require.NoError(t, r.AddStudent("Ana"))
	require.NoError(t, r.Enroll("Ana", subject.Math))

	err := asErr(r.RecordGrade("Bob", "Math-5"))
	require.ErrorIs(t, err, roster.ErrUnknownStudent)

	require.ErrorIs(t, asErr(r.RecordGrade("Ana", "Math-5-5")), roster.ErrMalformedInput)

	err = asErr(r.RecordGrade("Ana", "Biology-5"))
	require.ErrorIs(t, err, roster.ErrNotEnrolled)
	assert.EqualError(t, err, "Student Ana is not enrolled in Biology.")

	err = asErr(r.RecordGrade("Ana", "Chemistry-5"))
	require.ErrorIs(t, err, roster.ErrNotEnrolled)
	assert.EqualError(t, err, "Student Ana is not enrolled in Chemistry.")

	// enrollment is checked before the grade
	require.ErrorIs(t, asErr(r.RecordGrade("Ana", "Biology-9")), roster.ErrNotEnrolled)

	st, err := r.Lookup("Ana")
	require.NoError(t, err)
	assert.Empty(t, st.Grades(subject.Math))
}

func TestLookupReturnsCopy(t *testing.T) {
	r := roster.New()
	require.NoError(t, r.AddStudent("Ana"))
	require.NoError(t, r.Enroll("Ana", subject.Math))
	_, err := r.RecordGrade("Ana", "Math-4")
	require.NoError(t, err)

	st, err := r.Lookup("Ana")
	require.NoError(t, err)
	grades := st.Grades(subject.Math)
	grades[0] = 2

	again, err := r.Lookup("Ana")
	require.NoError(t, err)
	assert.Equal(t, []float64{4}, again.Grades(subject.Math))

	_, err = r.Lookup("Bob")
	require.ErrorIs(t, err, roster.ErrUnknownStudent)
}

func TestAverageIsPooled(t *testing.T) {
	r := roster.New()
	require.NoError(t, r.AddStudent("Ana"))
	require.NoError(t, r.Enroll("Ana", subject.Math))
	require.NoError(t, r.Enroll("Ana", subject.Biology))

	st, err := r.Lookup("Ana")
	require.NoError(t, err)
	assert.Zero(t, st.Average())

	for _, raw := range []string{"Math-4", "Biology-6"} {
		_, err := r.RecordGrade("Ana", raw)
		require.NoError(t, err)
	}
	st, err = r.Lookup("Ana")
	require.NoError(t, err)
	assert.InDelta(t, 5.0, st.Average(), 1e-9)

	// pooled mean of {4, 2, 6} is 4; the mean of per-subject means would be 4.5
	_, err = r.RecordGrade("Ana", "Math-2")
	require.NoError(t, err)
	st, err = r.Lookup("Ana")
	require.NoError(t, err)
	assert.InDelta(t, 4.0, st.Average(), 1e-9)
}

func TestKindClasses(t *testing.T) {
	assert.True(t, roster.EmptySubject.InvalidSubject())
	assert.True(t, roster.UnknownSubject.InvalidSubject())
	assert.True(t, roster.NotANumber.InvalidGrade())
	assert.True(t, roster.OutOfRange.InvalidGrade())
	assert.True(t, roster.AlreadyEnrolled.Notice())
	assert.False(t, roster.UnknownStudent.Notice())
	assert.Equal(t, "malformed input", roster.MalformedInput.String())
	assert.Equal(t, "kind(99)", roster.Kind(99).String())
}

func asErr[T any](_ T, err error) error {
	return err
}
