package matcher

import (
	"errors"
	"strings"
)

var (
	errTrailingBackslash = errors.New("trailing backslash (\\)")
	errUnmatchedBracket  = errors.New("unmatched [, [^, [:, [., or [=")
	errBackReference     = errors.New("back-references are not supported")
)

// translateBasic rewrites a POSIX basic regular expression into RE2 syntax.
//
// In BRE the characters ( ) { } | + ? are literals and their backslashed
// forms are operators, the reverse of RE2. A '*' that starts an expression
// is literal, '^' anchors only at the start and '$' only at the end.
// Bracket expressions pass through, with backslashes made literal.
func translateBasic(src string) (string, error) {
	var b strings.Builder
	b.Grow(len(src) + 8)

	atStart := true
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch c {
		case '\\':
			if i+1 == len(src) {
				return "", errTrailingBackslash
			}
			i++
			n := src[i]
			switch {
			case n == '{':
				openInterval(&b, src[i+1:])
			case strings.IndexByte("()}|+?", n) >= 0:
				b.WriteByte(n)
				atStart = n == '(' || n == '|'
				continue
			default:
				if err := writeEscape(&b, n); err != nil {
					return "", err
				}
			}
		case '(', ')', '{', '}', '|', '+', '?', ']':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '*':
			if atStart {
				b.WriteString(`\*`)
			} else {
				b.WriteByte('*')
			}
		case '^':
			if atStart {
				b.WriteByte('^')
				continue
			}
			b.WriteString(`\^`)
		case '$':
			if anchorsEnd(src[i+1:]) {
				b.WriteByte('$')
			} else {
				b.WriteString(`\$`)
			}
		case '[':
			n, err := copyBracket(&b, src[i:])
			if err != nil {
				return "", err
			}
			i += n - 1
		default:
			b.WriteByte(c)
		}
		atStart = false
	}
	return b.String(), nil
}

// translateExtended rewrites a POSIX extended regular expression into RE2
// syntax. Operators already agree; only the GNU escapes, intervals with an
// omitted minimum and bracket expressions need rewriting.
func translateExtended(src string) (string, error) {
	var b strings.Builder
	b.Grow(len(src) + 8)

	for i := 0; i < len(src); i++ {
		c := src[i]
		switch c {
		case '\\':
			if i+1 == len(src) {
				return "", errTrailingBackslash
			}
			i++
			if err := writeEscape(&b, src[i]); err != nil {
				return "", err
			}
		case '{':
			openInterval(&b, src[i+1:])
		case '[':
			n, err := copyBracket(&b, src[i:])
			if err != nil {
				return "", err
			}
			i += n - 1
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

// writeEscape writes the RE2 form of the escape sequence `\n` for escapes
// both syntaxes share: \< and \> are word boundaries and back-references
// are rejected.
func writeEscape(b *strings.Builder, n byte) error {
	switch {
	case n >= '1' && n <= '9':
		return errBackReference
	case n == '<' || n == '>':
		b.WriteString(`\b`)
	default:
		b.WriteByte('\\')
		b.WriteByte(n)
	}
	return nil
}

// openInterval writes the opening brace of an interval whose body is rest.
// POSIX reads a missing minimum as zero; RE2 would take "{,n}" literally.
func openInterval(b *strings.Builder, rest string) {
	b.WriteByte('{')
	if strings.HasPrefix(rest, ",") {
		b.WriteByte('0')
	}
}

// anchorsEnd reports whether a '$' followed by rest ends a (sub)expression.
func anchorsEnd(rest string) bool {
	return rest == "" || strings.HasPrefix(rest, `\)`) || strings.HasPrefix(rest, `\|`)
}

// copyBracket copies the bracket expression at the start of s and returns
// the number of bytes consumed.
func copyBracket(b *strings.Builder, s string) (int, error) {
	i := 1
	b.WriteByte('[')
	if i < len(s) && s[i] == '^' {
		b.WriteByte('^')
		i++
	}
	if i < len(s) && s[i] == ']' {
		b.WriteString(`\]`)
		i++
	}
	for i < len(s) {
		c := s[i]
		switch {
		case c == ']':
			b.WriteByte(']')
			return i + 1, nil
		case c == '[' && i+1 < len(s) && strings.IndexByte(":.=", s[i+1]) >= 0:
			delim := s[i+1]
			end := strings.Index(s[i+2:], string(delim)+"]")
			if end < 0 {
				return 0, errUnmatchedBracket
			}
			b.WriteString(s[i : i+2+end+2])
			i += 2 + end + 2
		case c == '\\':
			b.WriteString(`\\`)
			i++
		case c == '[':
			b.WriteString(`\[`)
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	return 0, errUnmatchedBracket
}
