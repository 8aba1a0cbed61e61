package longstring

import (
	"strings"
)

const (
	openBracket  = "[["
	closeBracket = "]]"
)

// substitution identifies a dangerous sequence that has been cut out of the
// text and is waiting to be replaced by an escape construct.
type substitution int

const (
	noSubstitution substitution = iota
	// "]]\n"
	closeThenNewline
	// "]]" not followed by a newline
	closeAlone
	// "[[[\n"
	tripleOpenThenNewline
	// "[[[" not followed by a newline
	tripleOpenAlone
	// "[[" not part of a triple
	doubleOpen
)

// replacement returns the text that the host evaluates to the sequence that
// was cut out.
func (s substitution) replacement() string {
	switch s {
	case closeThenNewline:
		return "]]..']]'\n..[[\n\n"
	case closeAlone:
		return "]]..']]'\n..[["
	case tripleOpenThenNewline:
		return "[]]..'[['..[[\n\n"
	case tripleOpenAlone:
		return "[]]..'[['..[["
	case doubleOpen:
		return "[]]..[[["
	default:
		return ""
	}
}

type rule struct {
	pattern string
	marks   substitution
}

// escapePasses run in order. Within one pass, the rules are tried in order at
// each position, so the more specific pattern always wins over its prefix.
var escapePasses = [][]rule{
	{
		{"]]\n", closeThenNewline},
		{"]]", closeAlone},
	},
	{
		{"[[[\n", tripleOpenThenNewline},
		{"[[[", tripleOpenAlone},
		{"[[", doubleOpen},
	},
}

// segment is a run of text, or a pending substitution if marks is set.
type segment struct {
	text  string
	marks substitution
}

// Escape returns text as a complete literal expression, starting with "[[".
// Escape's output must not be escaped again.
func Escape(text string) string {
	segments := []segment{{text: text}}
	for _, pass := range escapePasses {
		segments = applyPass(segments, pass)
	}

	var body strings.Builder
	for _, seg := range segments {
		if seg.marks != noSubstitution {
			body.WriteString(seg.marks.replacement())
		} else {
			body.WriteString(seg.text)
		}
	}

	// A trailing "]" would run into the closing bracket, so close the string
	// one character early and append the "]" separately.
	escaped := body.String()
	if strings.HasSuffix(escaped, "]") {
		return openBracket + escaped + "]..']'"
	}
	return openBracket + escaped + closeBracket
}

// applyPass splits every text segment on the patterns in rules. Existing
// substitutions are left alone, so a later pass can never match text that an
// earlier one already claimed.
func applyPass(segments []segment, rules []rule) []segment {
	result := make([]segment, 0, len(segments))
	for _, seg := range segments {
		if seg.marks != noSubstitution {
			result = append(result, seg)
			continue
		}

		start := 0
		for i := 0; i < len(seg.text); {
			matched := matchRule(seg.text[i:], rules)
			if matched == nil {
				i++
				continue
			}
			if start < i {
				result = append(result, segment{text: seg.text[start:i]})
			}
			result = append(result, segment{marks: matched.marks})
			i += len(matched.pattern)
			start = i
		}
		if start < len(seg.text) {
			result = append(result, segment{text: seg.text[start:]})
		}
	}
	return result
}

func matchRule(text string, rules []rule) *rule {
	for i := range rules {
		if strings.HasPrefix(text, rules[i].pattern) {
			return &rules[i]
		}
	}
	return nil
}
