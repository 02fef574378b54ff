package roster

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const (
	MinGrade = 2.0
	MaxGrade = 6.0

	// FieldSep separates the two fields of enroll and grade input.
	FieldSep = "-"
)

// gradePattern is the accepted decimal grammar: optional sign, digits and at
// most one decimal point. Exponents, NaN, Inf and grouping separators are not.
var gradePattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)

// ValidateName checks that name is non-blank and made of letters only.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return newEmptyName()
	}
	for _, r := range name {
		if !unicode.IsLetter(r) {
			return newInvalidCharacters(name)
		}
	}
	return nil
}

// SplitFields splits raw into exactly two untrimmed fields around FieldSep.
// "a-b-c" is rejected rather than split on the first separator.
func SplitFields(raw string) (string, string, error) {
	parts := strings.Split(raw, FieldSep)
	if len(parts) != 2 {
		return "", "", newMalformedInput()
	}
	return parts[0], parts[1], nil
}

// ParseGrade parses raw and checks it lies within [MinGrade, MaxGrade].
func ParseGrade(raw string) (float64, error) {
	if !gradePattern.MatchString(raw) {
		return 0, newNotANumber()
	}
	g, err := strconv.ParseFloat(raw, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, newOutOfRange()
	}
	if err != nil {
		return 0, newNotANumber()
	}
	if g < MinGrade || g > MaxGrade {
		return 0, newOutOfRange()
	}
	return g, nil
}

// FormatGrade renders a grade in its shortest decimal form, e.g. "5" or "4.5".
func FormatGrade(g float64) string {
	return strconv.FormatFloat(g, 'f', -1, 64)
}
