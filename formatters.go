package strfmt

import (
	"fmt"
	"unicode/utf8"
	"unsafe"
)

// pointerHexWidth is the number of hex digits an address is zero-padded to
// (§4.7.7 "zero-padded to sizeof(address) * 2"; §8.1 the quantified
// invariant `len(format("{}", p)) - 2 == ceil(addr_bits / 4)`).
const pointerHexWidth = int(unsafe.Sizeof(uintptr(0))) * 2

// lookupArg resolves an argRef against table, producing the canonical
// binding-error messages (§4.6/§7).
func lookupArg(table *ArgTable, ref argRef, what string) (argValue, error) {
	switch ref.kind {
	case refAuto, refIndex:
		v, ok := table.ByIndex(ref.index)
		if !ok {
			return argValue{}, newFormatError(errArgumentBinding, "argument index is out of range in format")
		}
		return v, nil
	case refName:
		v, ok := table.ByName(ref.name)
		if !ok {
			return argValue{}, newFormatError(errArgumentBinding, "argument not found")
		}
		return v, nil
	default:
		return argValue{}, newFormatError(errArgumentBinding, "invalid argument reference")
	}
}

func resolveWidth(spec *FormatSpec, table *ArgTable) error {
	if !spec.WidthDynamic {
		return nil
	}
	v, err := lookupArg(table, spec.WidthRef, "width argument")
	if err != nil {
		return err
	}
	w, err := readIntArg(v, "width")
	if err != nil {
		return err
	}
	spec.Width = w
	return nil
}

func resolvePrecision(spec *FormatSpec, table *ArgTable) error {
	if !spec.PrecisionDynamic {
		return nil
	}
	v, err := lookupArg(table, spec.PrecisionRef, "precision argument")
	if err != nil {
		return err
	}
	p, err := readIntArg(v, "precision")
	if err != nil {
		return err
	}
	spec.Precision = p
	return nil
}

// renderField resolves ref against table, resolves any dynamic
// width/precision, and dispatches to the per-kind formatter (§6.2/§4.7).
func renderField(out sink, table *ArgTable, ref argRef, spec FormatSpec) error {
	v, err := lookupArg(table, ref, "argument")
	if err != nil {
		return err
	}
	if err := resolveWidth(&spec, table); err != nil {
		return err
	}
	if err := resolvePrecision(&spec, table); err != nil {
		return err
	}
	switch {
	case v.kind == KindBool:
		return formatBool(out, v, spec)
	case v.kind.isInteger():
		return formatInteger(out, v, spec)
	case v.kind.isFloat():
		return formatFloatArg(out, v, spec)
	case v.kind == KindChar:
		return formatChar(out, v, spec)
	case v.kind == KindString:
		return formatString(out, v, spec)
	case v.kind == KindPointer:
		return formatPointer(out, v, spec)
	case v.kind == KindCustom:
		return formatCustom(out, v, spec)
	default:
		return newFormatError(errArgumentBinding, "argument not found")
	}
}

// signPrefix renders the sign string for a numeric value, honouring the
// '+'/' ' flags for non-negative values (§4.7.1 "sign consistency").
func signPrefix(neg bool, s Sign) string {
	if neg {
		return "-"
	}
	switch s {
	case SignPlus:
		return "+"
	case SignSpace:
		return " "
	default:
		return ""
	}
}

// writeFillRune appends count copies of r to out.
func writeFillRune(out sink, r rune, count int) {
	if count <= 0 {
		return
	}
	if r < 0x80 {
		for i := 0; i < count; i++ {
			out.Push(byte(r))
		}
		return
	}
	var buf [4]byte
	n := encodeRune(buf[:], r)
	for i := 0; i < count; i++ {
		out.Append(buf[:n])
	}
}

// applyNumericPad writes head, then fill to bring the combined width of
// head+body up to totalWidth, then body (§4.7.2 "NUMERIC align pads
// between sign/prefix and digits").
func applyNumericPad(out sink, fill rune, head, body string, totalWidth int) {
	need := totalWidth - utf8.RuneCountInString(head) - utf8.RuneCountInString(body)
	out.AppendString(head)
	writeFillRune(out, fill, need)
	out.AppendString(body)
}

// applyGeneralPad pads body as a whole per align (LEFT/RIGHT/CENTER), or
// RIGHT for the unresolved AlignDefault case (callers resolve Align via
// FormatSpec.effectiveAlign before reaching here).
func applyGeneralPad(out sink, fill rune, align Align, body []byte, totalWidth int) {
	pad := totalWidth - utf8.RuneCount(body)
	if pad <= 0 {
		out.Append(body)
		return
	}
	switch align {
	case AlignLeft:
		out.Append(body)
		writeFillRune(out, fill, pad)
	case AlignCenter:
		left := pad / 2
		right := pad - left
		writeFillRune(out, fill, left)
		out.Append(body)
		writeFillRune(out, fill, right)
	default: // AlignRight, AlignNumeric-on-non-numeric-kind, AlignDefault
		writeFillRune(out, fill, pad)
		out.Append(body)
	}
}

// formatInteger renders an integer-kind argument per spec.Type (§4.7.1).
func formatInteger(out sink, v argValue, spec FormatSpec) error {
	switch spec.Type {
	case 0, 'd':
		return emitIntBase(out, v, spec, 10, false, "")
	case 'n':
		spec.Localized = true
		return emitIntBase(out, v, spec, 10, false, "")
	case 'b':
		return emitIntBase(out, v, spec, 2, false, "0b")
	case 'B':
		return emitIntBase(out, v, spec, 2, false, "0B")
	case 'o':
		return emitIntBase(out, v, spec, 8, false, "0o")
	case 'x':
		return emitIntBase(out, v, spec, 16, false, "0x")
	case 'X':
		return emitIntBase(out, v, spec, 16, true, "0X")
	case 'c':
		return formatCharFromCode(out, v, spec)
	default:
		return newFormatError(errSpecTypeMismatch, fmt.Sprintf("invalid format specifier %q for integer argument", spec.Type))
	}
}

func emitIntBase(out sink, v argValue, spec FormatSpec, base int, upper bool, altPrefix string) error {
	var mag uint64
	neg := false
	switch {
	case v.kind == KindInt || v.kind == KindInt64:
		if v.i64 < 0 {
			neg = true
			mag = negateUint(v.i64)
		} else {
			mag = uint64(v.i64)
		}
	default:
		mag = v.u64
	}

	prefix := ""
	if spec.Alt && altPrefix != "" {
		prefix = altPrefix
	}

	var digitBuf [80]byte
	var n int
	if base == 10 {
		n = appendDecimal(digitBuf[:], mag)
	} else {
		n = appendBase(digitBuf[:], mag, base, upper)
	}
	digits := digitBuf[:n]
	if spec.Localized && base == 10 {
		digits = groupDecimal(digits)
	}

	head := signPrefix(neg, spec.Sign) + prefix
	align := spec.effectiveAlign(v.kind)
	fill := spec.effectiveFill()
	if align == AlignNumeric {
		applyNumericPad(out, fill, head, string(digits), spec.Width)
		return nil
	}
	full := make([]byte, 0, len(head)+len(digits))
	full = append(full, head...)
	full = append(full, digits...)
	applyGeneralPad(out, fill, align, full, spec.Width)
	return nil
}

// formatCharFromCode renders an integer or char kind's code point as a
// single rune (presentation type 'c', or the default for KindChar).
func formatCharFromCode(out sink, v argValue, spec FormatSpec) error {
	var code int64
	switch v.kind {
	case KindInt, KindInt64, KindChar:
		code = v.i64
	case KindUint, KindUint64:
		code = int64(v.u64)
	default:
		return newFormatError(errSpecTypeMismatch, "invalid format specifier 'c' for "+v.kind.category()+" argument")
	}
	body := string(rune(code))
	align := spec.effectiveAlign(KindChar)
	applyGeneralPad(out, spec.effectiveFill(), align, []byte(body), spec.Width)
	return nil
}

func formatChar(out sink, v argValue, spec FormatSpec) error {
	switch spec.Type {
	case 0, 'c':
		return formatCharFromCode(out, v, spec)
	case 'd', 'b', 'B', 'o', 'x', 'X':
		// Render as an integer: alignment/zero-padding for a numeric
		// presentation type follows integer rules, not char rules.
		asInt := argValue{kind: KindInt, i64: v.i64}
		return formatInteger(out, asInt, spec)
	default:
		return newFormatError(errSpecTypeMismatch, fmt.Sprintf("invalid format specifier %q for char argument", spec.Type))
	}
}

func formatBool(out sink, v argValue, spec FormatSpec) error {
	switch spec.Type {
	case 0, 's':
		body := "false"
		if v.u64 != 0 {
			body = "true"
		}
		align := spec.effectiveAlign(KindBool)
		applyGeneralPad(out, spec.effectiveFill(), align, []byte(body), spec.Width)
		return nil
	case 'd', 'b', 'B', 'o', 'x', 'X':
		asInt := argValue{kind: KindUint, u64: v.u64}
		return formatInteger(out, asInt, spec)
	default:
		return newFormatError(errSpecTypeMismatch, fmt.Sprintf("invalid format specifier %q for bool argument", spec.Type))
	}
}

// truncateRunes returns the prefix of s containing at most n runes,
// never splitting a multi-byte code point.
func truncateRunes(s string, n int) string {
	if n < 0 {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// escapeDebugString renders s the way the '?' presentation type requires:
// double-quoted, with '"'/'\\' escaped, newline/tab/carriage return as
// \n, \t, \r, and the remaining C0 control bytes and DEL rendered as
// \xHH (§6.3 debug-escape table).
func escapeDebugString(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\':
			out = append(out, '\\', c)
		case c == '\n':
			out = append(out, '\\', 'n')
		case c == '\t':
			out = append(out, '\\', 't')
		case c == '\r':
			out = append(out, '\\', 'r')
		case c < 0x20 || c == 0x7f:
			out = append(out, '\\', 'x', lowerHexDigits[c>>4], lowerHexDigits[c&0xF])
		default:
			out = append(out, c)
		}
	}
	out = append(out, '"')
	return string(out)
}

func formatString(out sink, v argValue, spec FormatSpec) error {
	body := v.str
	if spec.Precision >= 0 {
		body = truncateRunes(body, spec.Precision)
	}
	switch spec.Type {
	case 0, 's':
	case '?':
		body = escapeDebugString(body)
	default:
		return newFormatError(errSpecTypeMismatch, fmt.Sprintf("invalid format specifier %q for string argument", spec.Type))
	}
	align := spec.effectiveAlign(KindString)
	applyGeneralPad(out, spec.effectiveFill(), align, []byte(body), spec.Width)
	return nil
}

// nullptr (§4.5) is the one pointer value exempt from the fixed-width pad:
// it renders as the literal "0x0", not sizeof(address)*2 zero digits.
func formatPointer(out sink, v argValue, spec FormatSpec) error {
	if spec.Type != 0 && spec.Type != 'p' {
		return newFormatError(errSpecTypeMismatch, fmt.Sprintf("invalid format specifier %q for pointer argument", spec.Type))
	}
	var digits []byte
	if v.u64 == 0 {
		digits = []byte{'0'}
	} else {
		var raw [pointerHexWidth]byte
		n := appendBase(raw[:], v.u64, 16, false)
		padded := make([]byte, pointerHexWidth)
		for i := range padded {
			padded[i] = '0'
		}
		copy(padded[pointerHexWidth-n:], raw[:n])
		digits = padded
	}
	head := "0x"
	align := spec.effectiveAlign(KindPointer)
	fill := spec.effectiveFill()
	if align == AlignNumeric {
		applyNumericPad(out, fill, head, string(digits), spec.Width)
		return nil
	}
	full := make([]byte, 0, len(head)+len(digits))
	full = append(full, head...)
	full = append(full, digits...)
	applyGeneralPad(out, fill, align, full, spec.Width)
	return nil
}

func formatFloatArg(out sink, v argValue, spec FormatSpec) error {
	class, neg := classify(v.f64)
	upper := spec.Type == 'F' || spec.Type == 'E' || spec.Type == 'G' || spec.Type == 'A'

	if class != floatFinite {
		switch spec.Type {
		case 0, 'f', 'F', 'e', 'E', 'g', 'G', 'a', 'A':
		default:
			return newFormatError(errSpecTypeMismatch, fmt.Sprintf("invalid format specifier %q for floating-point argument", spec.Type))
		}
		head := signPrefix(neg, spec.Sign)
		body := nonFiniteLiteral(class, false, upper)
		align := spec.effectiveAlign(KindFloat64)
		fill := spec.effectiveFill()
		if align == AlignNumeric {
			applyNumericPad(out, fill, head, body, spec.Width)
			return nil
		}
		applyGeneralPad(out, fill, align, []byte(head+body), spec.Width)
		return nil
	}

	mag := v.f64
	if neg {
		mag = -mag
	}
	var digits []byte
	switch spec.Type {
	case 'f', 'F':
		digits = appendFixed(nil, mag, spec.Precision)
	case 'e', 'E':
		digits = appendScientific(nil, mag, spec.Precision, spec.Type == 'E')
	case 'g', 'G', 0:
		digits = appendShortest(nil, mag, spec.Precision, spec.Type == 'G', spec.Alt)
	case 'a', 'A':
		digits = appendHexFloat(nil, mag, spec.Precision, spec.Type == 'A')
	default:
		return newFormatError(errSpecTypeMismatch, fmt.Sprintf("invalid format specifier %q for floating-point argument", spec.Type))
	}

	head := signPrefix(neg, spec.Sign)
	align := spec.effectiveAlign(KindFloat64)
	fill := spec.effectiveFill()
	if align == AlignNumeric {
		applyNumericPad(out, fill, head, string(digits), spec.Width)
		return nil
	}
	full := make([]byte, 0, len(head)+len(digits))
	full = append(full, head...)
	full = append(full, digits...)
	applyGeneralPad(out, fill, align, full, spec.Width)
	return nil
}

// formatCustom hands off to the argument's own Formatter implementation
// (§6.3). Width/align are the callback's own responsibility.
func formatCustom(out sink, v argValue, spec FormatSpec) error {
	pc := &ParseContext{}
	fc := &FormatContext{Spec: spec, sink: out}
	return v.custom.FormatSTR(pc, fc)
}
