package survey

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Rating bounds, inclusive.
const (
	MinRating = 0
	MaxRating = 5
)

// Messages shown to the respondent when a rating is rejected.
const (
	ParseErrorMessage = "Invalid input. Please enter an integer between 0 and 5."
	RangeErrorMessage = "Please enter a valid score between 0 and 5."
)

// ParseError reports input that is not an integer.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("not an integer: %q", e.Input)
}

// RangeError reports an integer outside [MinRating, MaxRating]. Value is
// the parsed input, or the original text when it overflowed int64.
type RangeError struct {
	Value string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("rating %s outside %d..%d", e.Value, MinRating, MaxRating)
}

// ParseRating converts one line of input into a rating.
//
// Surrounding whitespace and a leading sign are accepted, as are single
// underscores between digits ("0_3"). Anything else that is not a base-10
// integer is a *ParseError; an integer outside the rating bounds is a
// *RangeError.
func ParseRating(line string) (int, error) {
	s := strings.TrimSpace(line)
	digits, ok := normalizeInteger(s)
	if !ok {
		return 0, &ParseError{Input: line}
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &RangeError{Value: digits}
		}
		return 0, &ParseError{Input: line}
	}
	if err := checkRange(int(n)); err != nil {
		return 0, err
	}
	return int(n), nil
}

// RejectionMessage maps a ParseRating error onto the text shown to the
// respondent. Unknown errors get the parse message.
func RejectionMessage(err error) string {
	var re *RangeError
	if errors.As(err, &re) {
		return RangeErrorMessage
	}
	return ParseErrorMessage
}

func checkRange(n int) error {
	if n < MinRating || n > MaxRating {
		return &RangeError{Value: strconv.Itoa(n)}
	}
	return nil
}

// normalizeInteger validates sign/digit/underscore syntax and returns an
// ASCII form with underscores removed. Any Unicode decimal digit (category
// Nd, e.g. fullwidth "３") counts as a digit.
func normalizeInteger(s string) (string, bool) {
	rs := []rune(s)
	if len(rs) == 0 {
		return "", false
	}
	var b strings.Builder
	i := 0
	if rs[0] == '+' || rs[0] == '-' {
		b.WriteRune(rs[0])
		i = 1
	}
	if i == len(rs) {
		return "", false
	}
	prevDigit := false
	for ; i < len(rs); i++ {
		r := rs[i]
		switch {
		case unicode.IsDigit(r):
			b.WriteByte(byte('0' + digitValue(r)))
			prevDigit = true
		case r == '_' && prevDigit && i+1 < len(rs) && unicode.IsDigit(rs[i+1]):
			prevDigit = false
		default:
			return "", false
		}
	}
	return b.String(), true
}

// digitValue returns the value of a decimal digit. Nd digits are encoded
// as contiguous runs of whole 0-9 sequences, so the offset from the start
// of the run gives the value.
func digitValue(r rune) int {
	if r >= '0' && r <= '9' {
		return int(r - '0')
	}
	start := r
	for unicode.IsDigit(start - 1) {
		start--
	}
	return int(r-start) % 10
}
