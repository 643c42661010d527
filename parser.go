package strfmt

import (
	"math"
	"unicode/utf8"
)

// refKind discriminates an ArgRef (§3.4).
type refKind uint8

const (
	refAuto refKind = iota
	refIndex
	refName
)

type argRef struct {
	kind  refKind
	index int
	name  string
}

// autoIndex sentinel states (§4.6 "state := { ..., auto_index : int |
// MANUAL | OFF, ... }").
const (
	autoOff    = -1
	autoManual = -2
)

// eventKind distinguishes the two event shapes a Parser emits (§2 data
// flow: "TEXT(begin,end)" or "FIELD(arg_ref, spec)").
type eventKind uint8

const (
	eventText eventKind = iota
	eventField
	eventEOF
)

type parseEvent struct {
	kind       eventKind
	textBegin  int
	textEnd    int
	ref        argRef
	spec       FormatSpec
	fieldBegin int // byte offset of the opening '{', for error offsets
}

// Parser walks a template left to right exactly once, maintaining the
// auto/manual indexing state across fields (§4.6).
type Parser struct {
	tpl       string
	pos       int
	autoIndex int
}

// NewParser prepares a one-pass parser over tpl.
func NewParser(tpl string) *Parser {
	return &Parser{tpl: tpl, autoIndex: autoOff}
}

// Next returns the next parse event, or an eventEOF event once the
// template is exhausted. Errors are *FormatError already upgraded per
// the unmatched-'{' priority rule (§9 DESIGN NOTES).
func (p *Parser) Next() (parseEvent, error) {
	if p.pos >= len(p.tpl) {
		return parseEvent{kind: eventEOF}, nil
	}
	s := p.tpl
	start := p.pos

	if s[p.pos] == '}' {
		if p.pos+1 < len(s) && s[p.pos+1] == '}' {
			p.pos += 2
			return parseEvent{kind: eventText, textBegin: start, textEnd: start + 1}, nil
		}
		return parseEvent{}, atOffset(newFormatError(errTemplateSyntax, "unmatched '}' in format string"), p.pos)
	}

	if s[p.pos] == '{' {
		if p.pos+1 < len(s) && s[p.pos+1] == '{' {
			p.pos += 2
			return parseEvent{kind: eventText, textBegin: start, textEnd: start + 1}, nil
		}
		return p.parseField()
	}

	// literal run up to the next '{' or '}'
	i := p.pos
	for i < len(s) && s[i] != '{' && s[i] != '}' {
		i++
	}
	p.pos = i
	return parseEvent{kind: eventText, textBegin: start, textEnd: i}, nil
}

// parseField parses a full "{...}" field starting at the opening brace.
// On any error inside the field it upgrades to "unmatched '{' in format"
// unless the remainder of the template actually balances the brace
// (§9 DESIGN NOTES, original_source/format.cc Formatter::ReportError).
func (p *Parser) parseField() (parseEvent, error) {
	fieldBegin := p.pos
	pos := p.pos + 1 // consume '{'
	s := p.tpl

	ref, newPos, err := p.parseArgRefAt(s, pos, true)
	if err != nil {
		return parseEvent{}, p.upgrade(s, pos, err.(*FormatError))
	}
	pos = newPos

	spec := defaultFormatSpec()
	if pos < len(s) && s[pos] == ':' {
		pos++
		newPos, err = p.parseSpecAt(s, pos, &spec)
		if err != nil {
			return parseEvent{}, p.upgrade(s, pos, err.(*FormatError))
		}
		pos = newPos
	}

	if pos >= len(s) || s[pos] != '}' {
		return parseEvent{}, p.upgrade(s, pos, newFormatError(errTemplateSyntax, "unmatched '{' in format"))
	}
	pos++ // consume '}'
	p.pos = pos
	return parseEvent{kind: eventField, ref: ref, spec: spec, fieldBegin: fieldBegin}, nil
}

// upgrade implements the unmatched-brace priority rule: rescan from pos
// counting nested braces (starting at 1, for the brace already open);
// if a matching '}' is found, the original error stands, else it is
// replaced with "unmatched '{' in format".
func (p *Parser) upgrade(s string, pos int, original *FormatError) *FormatError {
	depth := 1
	for i := pos; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return atOffset(original, pos)
			}
		}
	}
	return atOffset(newFormatError(errTemplateSyntax, "unmatched '{' in format"), pos)
}

// parseArgRefAt parses an optional arg_ref (decimal index, identifier
// name, or nothing for auto), applying the auto/manual indexing rule.
// The bool argument is ignored: outer field refs and nested
// width/precision refs share the same auto_index state and follow the
// same rule.
func (p *Parser) parseArgRefAt(s string, pos int, _ bool) (argRef, int, error) {
	if pos >= len(s) {
		return argRef{}, pos, newFormatError(errTemplateSyntax, "invalid format string")
	}
	c := s[pos]
	switch {
	case c >= '0' && c <= '9':
		if p.autoIndex >= 0 {
			return argRef{}, pos, newFormatError(errIndexingMode, "cannot switch from automatic to manual argument indexing")
		}
		p.autoIndex = autoManual
		n, newPos, overflow := parseUint32(s, pos)
		if overflow {
			return argRef{}, newPos, newFormatError(errNumericOverflow, "number is too big in format")
		}
		return argRef{kind: refIndex, index: n}, newPos, nil
	case isIdentStart(c):
		j := pos + 1
		for j < len(s) && isIdentCont(s[j]) {
			j++
		}
		return argRef{kind: refName, name: s[pos:j]}, j, nil
	case c == ':' || c == '}':
		// empty arg_ref: auto indexing
		if p.autoIndex == autoManual {
			return argRef{}, pos, newFormatError(errIndexingMode, "cannot switch from manual to automatic argument indexing")
		}
		if p.autoIndex == autoOff {
			p.autoIndex = 0
		}
		idx := p.autoIndex
		p.autoIndex++
		return argRef{kind: refAuto, index: idx}, pos, nil
	default:
		return argRef{}, pos, newFormatError(errTemplateSyntax, "invalid argument index in format string")
	}
}

// parseDynamicRefAt parses the arg_ref inside a nested "{...}" (dynamic
// width/precision), consuming the enclosing braces itself.
func (p *Parser) parseDynamicRefAt(s string, pos int) (argRef, int, error) {
	if pos >= len(s) || s[pos] != '{' {
		return argRef{}, pos, newFormatError(errTemplateSyntax, "invalid format string")
	}
	pos++
	ref, newPos, err := p.parseArgRefAt(s, pos, false)
	if err != nil {
		return argRef{}, newPos, err
	}
	pos = newPos
	if pos >= len(s) || s[pos] != '}' {
		return argRef{}, pos, newFormatError(errTemplateSyntax, "unmatched '{' in format")
	}
	return ref, pos + 1, nil
}

var alignChars = [256]bool{'<': true, '>': true, '=': true, '^': true}

func isAlignChar(c byte) bool { return alignChars[c] }

func alignFromByte(c byte) Align {
	switch c {
	case '<':
		return AlignLeft
	case '>':
		return AlignRight
	case '^':
		return AlignCenter
	case '=':
		return AlignNumeric
	default:
		return AlignDefault
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// parseUint32 scans decimal digits starting at pos, reporting overflow
// against a signed 32-bit limit (§4.6 "Numeric limits").
func parseUint32(s string, pos int) (value int, newPos int, overflow bool) {
	start := pos
	for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
		d := int(s[pos] - '0')
		if value > (math.MaxInt32-d)/10 {
			overflow = true
		}
		value = value*10 + d
		pos++
	}
	if pos == start {
		return 0, pos, false
	}
	return value, pos, overflow
}

// parseSpecAt parses the text after ':' up to (but not including) the
// closing '}' of the field, per the grammar:
//
//	spec := fill_align? sign? "#"? "0"? width? ("." precision)? "L"? type?
func (p *Parser) parseSpecAt(s string, pos int, spec *FormatSpec) (int, error) {
	// fill/align
	if pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if pos+size < len(s) && isAlignChar(s[pos+size]) {
			if r == '{' {
				return pos, newFormatError(errTemplateSyntax, "invalid fill character '{'")
			}
			spec.Fill = r
			spec.fillSet = true
			spec.Align = alignFromByte(s[pos+size])
			pos += size + 1
		} else if isAlignChar(s[pos]) {
			spec.Align = alignFromByte(s[pos])
			spec.Fill = ' '
			pos++
		}
	}

	// sign
	if pos < len(s) {
		switch s[pos] {
		case '+':
			spec.Sign = SignPlus
			pos++
		case '-':
			spec.Sign = SignMinus
			pos++
		case ' ':
			spec.Sign = SignSpace
			pos++
		}
	}

	// alt '#'
	if pos < len(s) && s[pos] == '#' {
		spec.Alt = true
		pos++
	}

	// zero '0'
	if pos < len(s) && s[pos] == '0' {
		spec.Zero = true
		pos++
	}

	// width
	if pos < len(s) {
		if s[pos] == '{' {
			ref, newPos, err := p.parseDynamicRefAt(s, pos)
			if err != nil {
				return newPos, err
			}
			spec.WidthRef = ref
			spec.WidthDynamic = true
			pos = newPos
		} else if s[pos] >= '0' && s[pos] <= '9' {
			w, newPos, overflow := parseUint32(s, pos)
			if overflow {
				return newPos, newFormatError(errNumericOverflow, "number is too big in format")
			}
			spec.Width = w
			pos = newPos
		}
	}

	// precision
	if pos < len(s) && s[pos] == '.' {
		pos++
		if pos < len(s) && s[pos] == '{' {
			ref, newPos, err := p.parseDynamicRefAt(s, pos)
			if err != nil {
				return newPos, err
			}
			spec.PrecisionRef = ref
			spec.PrecisionDynamic = true
			pos = newPos
		} else if pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
			prec, newPos, overflow := parseUint32(s, pos)
			if overflow {
				return newPos, newFormatError(errNumericOverflow, "number is too big in format")
			}
			spec.Precision = prec
			pos = newPos
		} else {
			return pos, newFormatError(errTemplateSyntax, "missing precision in format")
		}
	}

	// localized 'L'
	if pos < len(s) && s[pos] == 'L' {
		spec.Localized = true
		pos++
	}

	// presentation type: single ascii letter, anything but '}'
	if pos < len(s) && s[pos] != '}' {
		spec.Type = s[pos]
		pos++
	}

	return pos, nil
}
