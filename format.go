// Package strfmt is a typed, allocation-conscious string formatting
// engine in the style of {fmt}/str.format: a "{}"-grammar template is
// parsed once and rendered against a type-erased argument table.
package strfmt

// Format renders tpl against args and returns the result (§6.1
// "format", the primary entry point).
func Format(tpl string, args ...any) (string, error) {
	var buf Buffer
	if err := FormatTo(&buf, tpl, args...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Sprintf is Format under the more familiar printf-family name.
func Sprintf(tpl string, args ...any) (string, error) {
	return Format(tpl, args...)
}

// FormatTo renders tpl into dst, an arbitrary Sink (§6.1 "format_into").
// Unlike Format it never allocates a result string of its own; dst is
// responsible for its own growth policy (Buffer grows 3/2, FixedSink
// truncates).
func FormatTo(dst Sink, tpl string, args ...any) error {
	table := NewArgTable(args...)
	p := NewParser(tpl)
	for {
		ev, err := p.Next()
		if err != nil {
			return err
		}
		switch ev.kind {
		case eventEOF:
			return nil
		case eventText:
			dst.AppendString(tpl[ev.textBegin:ev.textEnd])
		case eventField:
			if err := renderField(dst, table, ev.ref, ev.spec); err != nil {
				if fe, ok := err.(*FormatError); ok {
					return atOffset(fe, ev.fieldBegin)
				}
				return err
			}
		}
	}
}

// sliceSink grows a plain []byte the way strconv.AppendInt-style helpers
// do, backing AppendFormat.
type sliceSink struct{ buf []byte }

func (s *sliceSink) Push(c byte)          { s.buf = append(s.buf, c) }
func (s *sliceSink) Append(p []byte)      { s.buf = append(s.buf, p...) }
func (s *sliceSink) AppendString(str string) { s.buf = append(s.buf, str...) }

// AppendFormat renders tpl and appends the result to dst, returning the
// grown slice, in the style of strconv's Append* family.
func AppendFormat(dst []byte, tpl string, args ...any) ([]byte, error) {
	s := &sliceSink{buf: dst}
	if err := FormatTo(s, tpl, args...); err != nil {
		return dst, err
	}
	return s.buf, nil
}

// FormatToN renders tpl into the first len(dst) bytes of dst, truncating
// silently if the formatted result is longer, and reports the full
// logical length the way an untruncated call would have produced (§6.1
// "format_to_n").
func FormatToN(dst []byte, tpl string, args ...any) (int, error) {
	fs := NewFixedSink(dst)
	if err := FormatTo(fs, tpl, args...); err != nil {
		return 0, err
	}
	return fs.Size(), nil
}

// FormattedSize reports the length Format would produce without
// materializing the result (§6.1 "formatted_size").
func FormattedSize(tpl string, args ...any) (int, error) {
	fs := NewFixedSink(nil)
	if err := FormatTo(fs, tpl, args...); err != nil {
		return 0, err
	}
	return fs.Size(), nil
}
