package longstring

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSyntax is returned when a literal isn't a concatenation of string terms.
var ErrSyntax = errors.New("invalid literal syntax")

// ErrUnterminated is returned when a string term is missing its closing
// delimiter.
var ErrUnterminated = errors.New("unterminated string")

// Term is one string in a literal expression.
type Term struct {
	// Long is true for a "[[...]]" string, false for a quoted one.
	Long bool
	// Body is the text between the delimiters, exactly as written.
	Body string
}

// Value returns the string the term evaluates to. For long strings, a newline
// right after the opening bracket is not part of the value.
func (t Term) Value() string {
	if t.Long {
		return strings.TrimPrefix(t.Body, "\n")
	}
	return t.Body
}

// Terms splits a literal expression into its strings.
//
// Only what [Escape] emits is understood: level-0 long strings and quoted
// strings without escape sequences, joined by "..", with any amount of
// whitespace in between.
func Terms(literal string) ([]Term, error) {
	var terms []Term

	pos := skipSpace(literal, 0)
	for {
		term, next, err := readTerm(literal, pos)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)

		pos = skipSpace(literal, next)
		if pos == len(literal) {
			return terms, nil
		}
		if !strings.HasPrefix(literal[pos:], "..") {
			return nil, fmt.Errorf("%w: expected \"..\" at offset %d", ErrSyntax, pos)
		}
		pos = skipSpace(literal, pos+2)
	}
}

// Evaluate returns the string a literal expression evaluates to.
func Evaluate(literal string) (string, error) {
	terms, err := Terms(literal)
	if err != nil {
		return "", err
	}

	var value strings.Builder
	for _, term := range terms {
		value.WriteString(term.Value())
	}
	return value.String(), nil
}

func readTerm(literal string, pos int) (Term, int, error) {
	rest := literal[pos:]

	switch {
	case strings.HasPrefix(rest, openBracket):
		end := strings.Index(rest[len(openBracket):], closeBracket)
		if end < 0 {
			return Term{}, 0, fmt.Errorf("%w: long string at offset %d", ErrUnterminated, pos)
		}
		body := rest[len(openBracket) : len(openBracket)+end]
		return Term{Long: true, Body: body}, pos + len(openBracket) + end + len(closeBracket), nil

	case strings.HasPrefix(rest, "'"), strings.HasPrefix(rest, "\""):
		quote := rest[0]
		for i := 1; i < len(rest); i++ {
			switch rest[i] {
			case quote:
				return Term{Body: rest[1:i]}, pos + i + 1, nil
			case '\\':
				return Term{}, 0, fmt.Errorf(
					"%w: escape sequences aren't supported (offset %d)", ErrSyntax, pos+i)
			case '\n':
				return Term{}, 0, fmt.Errorf(
					"%w: quoted string at offset %d", ErrUnterminated, pos)
			}
		}
		return Term{}, 0, fmt.Errorf("%w: quoted string at offset %d", ErrUnterminated, pos)

	case rest == "":
		return Term{}, 0, fmt.Errorf("%w: expected a string at end of input", ErrSyntax)

	default:
		return Term{}, 0, fmt.Errorf("%w: expected a string at offset %d", ErrSyntax, pos)
	}
}

func skipSpace(text string, pos int) int {
	for pos < len(text) && strings.IndexByte(" \t\r\n", text[pos]) >= 0 {
		pos++
	}
	return pos
}
