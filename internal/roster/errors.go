package roster

import (
	"fmt"
	"strings"

	"github.com/programme-lv/gradebook/internal/subject"
)

// Kind identifies why an operation was rejected.
type Kind int

const (
	EmptyName Kind = iota + 1
	InvalidCharacters
	DuplicateStudent
	UnknownStudent
	MalformedInput
	EmptySubject
	UnknownSubject
	AlreadyEnrolled
	NotEnrolled
	NotANumber
	OutOfRange
)

func (k Kind) String() string {
	switch k {
	case EmptyName:
		return "empty name"
	case InvalidCharacters:
		return "invalid characters"
	case DuplicateStudent:
		return "duplicate student"
	case UnknownStudent:
		return "unknown student"
	case MalformedInput:
		return "malformed input"
	case EmptySubject:
		return "empty subject"
	case UnknownSubject:
		return "unknown subject"
	case AlreadyEnrolled:
		return "already enrolled"
	case NotEnrolled:
		return "not enrolled"
	case NotANumber:
		return "not a number"
	case OutOfRange:
		return "out of range"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Notice reports whether the kind is an idempotent no-op rather than bad input.
func (k Kind) Notice() bool {
	return k == DuplicateStudent || k == AlreadyEnrolled
}

func (k Kind) InvalidName() bool    { return k == EmptyName || k == InvalidCharacters }
func (k Kind) InvalidSubject() bool { return k == EmptySubject || k == UnknownSubject }
func (k Kind) InvalidGrade() bool   { return k == NotANumber || k == OutOfRange }

// Error is returned by every roster operation that leaves the roster unchanged.
type Error struct {
	Kind    Kind
	Student string
	Subject string
	msg     string
}

func (e *Error) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return e.Kind.String()
}

// Is matches any *Error of the same kind, so the sentinels below work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrEmptyName         = &Error{Kind: EmptyName}
	ErrInvalidCharacters = &Error{Kind: InvalidCharacters}
	ErrDuplicateStudent  = &Error{Kind: DuplicateStudent}
	ErrUnknownStudent    = &Error{Kind: UnknownStudent}
	ErrMalformedInput    = &Error{Kind: MalformedInput}
	ErrEmptySubject      = &Error{Kind: EmptySubject}
	ErrUnknownSubject    = &Error{Kind: UnknownSubject}
	ErrAlreadyEnrolled   = &Error{Kind: AlreadyEnrolled}
	ErrNotEnrolled       = &Error{Kind: NotEnrolled}
	ErrNotANumber        = &Error{Kind: NotANumber}
	ErrOutOfRange        = &Error{Kind: OutOfRange}
)

func newEmptyName() *Error {
	return &Error{Kind: EmptyName, msg: "Student name cannot be empty."}
}

func newInvalidCharacters(name string) *Error {
	return &Error{Kind: InvalidCharacters, Student: name, msg: "Invalid name. Use only letters."}
}

func newDuplicateStudent(name string) *Error {
	return &Error{Kind: DuplicateStudent, Student: name,
		msg: fmt.Sprintf("Student %s already exists.", name)}
}

func newUnknownStudent(name string) *Error {
	return &Error{Kind: UnknownStudent, Student: name,
		msg: fmt.Sprintf("Student %s does not exist.", name)}
}

func newMalformedInput() *Error {
	return &Error{Kind: MalformedInput, msg: "Invalid format. Please use the correct format."}
}

func newEmptySubject(name string) *Error {
	return &Error{Kind: EmptySubject, Student: name, msg: "Subject cannot be empty."}
}

func newUnknownSubject(name, subj string) *Error {
	return &Error{Kind: UnknownSubject, Student: name, Subject: subj,
		msg: fmt.Sprintf("Invalid subject. Allowed subjects are: %s.",
			strings.Join(subject.Names(), ", "))}
}

func newAlreadyEnrolled(name string, subj subject.Subject) *Error {
	return &Error{Kind: AlreadyEnrolled, Student: name, Subject: subj.String(),
		msg: fmt.Sprintf("Student %s is already enrolled in the %s class.", name, subj)}
}

func newNotEnrolled(name, subj string) *Error {
	return &Error{Kind: NotEnrolled, Student: name, Subject: subj,
		msg: fmt.Sprintf("Student %s is not enrolled in %s.", name, subj)}
}

const invalidGradeMsg = "Invalid grade. Grade must be a number between 2 and 6."

func newNotANumber() *Error {
	return &Error{Kind: NotANumber, msg: invalidGradeMsg}
}

func newOutOfRange() *Error {
	return &Error{Kind: OutOfRange, msg: invalidGradeMsg}
}
