package subject

import (
	"errors"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Subject is one of the closed set of subjects a student can enroll in.
// The zero value is not a valid subject.
type Subject int

const (
	Math Subject = iota + 1
	Biology
	History
	English
	Sport
	Physics
)

var names = [...]string{
	Math:    "Math",
	Biology: "Biology",
	History: "History",
	English: "English",
	Sport:   "Sport",
	Physics: "Physics",
}

var (
	ErrEmpty   = errors.New("subject is empty")
	ErrUnknown = errors.New("subject is not allowed")
)

// allowed holds the exact, case-sensitive names accepted by Parse.
var allowed = mapset.NewThreadUnsafeSet(Names()...)

var byName = func() map[string]Subject {
	m := make(map[string]Subject, len(names)-1)
	for _, s := range All() {
		m[s.String()] = s
	}
	return m
}()

// All returns every subject in declaration order.
func All() []Subject {
	return []Subject{Math, Biology, History, English, Sport, Physics}
}

func Names() []string {
	res := make([]string, 0, len(names)-1)
	for _, s := range All() {
		res = append(res, s.String())
	}
	return res
}

func (s Subject) String() string {
	if !s.Valid() {
		return ""
	}
	return names[s]
}

func (s Subject) Valid() bool {
	return s >= Math && s <= Physics
}

// IsAllowed reports whether name exactly matches an allowed subject.
func IsAllowed(name string) bool {
	return allowed.Contains(name)
}

// Parse validates name and returns the matching subject.
// It fails with ErrEmpty for blank input and ErrUnknown for anything that is
// not exactly one of the allowed names.
func Parse(name string) (Subject, error) {
	if strings.TrimSpace(name) == "" {
		return 0, ErrEmpty
	}
	if !IsAllowed(name) {
		return 0, ErrUnknown
	}
	return byName[name], nil
}

// Join renders subjects as a comma separated list.
func Join(subjects []Subject) string {
	parts := make([]string, len(subjects))
	for i, s := range subjects {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}
