package strfmt

import "math"

// maxPacked is the number of arguments an ArgTable holds inline before
// falling back to a heap-allocated overflow slice (§4.4, "MAX_PACKED is
// the canonical constant... 15").
const maxPacked = 15

// argValue is a type-erased argument slot. Rather than an unsafe tagged
// union, it is a plain struct with one field per scalar representation;
// for the non-CUSTOM kinds this costs a few unused words but no heap
// allocation, which is the property §4.4 actually requires ("without heap
// allocation for small argument counts").
type argValue struct {
	kind    Kind
	i64     int64
	u64     uint64
	f64     float64
	str     string
	custom  Formatter
	rawAny  any // original value, used only for error messages and the Visit contract
}

func (v argValue) isNone() bool { return v.kind == KindNone }

// NamedArg pairs a name with a value for binding to {name} fields. Build
// one with Named.
type NamedArg struct {
	Name  string
	Value any
}

// Named captures a value under a name for named-field binding (§3.4
// NAME(s); original_source/format.h fmt::arg(name, value)).
func Named(name string, value any) NamedArg {
	return NamedArg{Name: name, Value: value}
}

// Formatter is the custom argument protocol (§6.3). A value of unknown
// type implementing Formatter is bound as KindCustom; FormatSTR must
// consume exactly one well-formed spec (possibly empty, read from p) and
// write to f's sink.
type Formatter interface {
	FormatSTR(p *ParseContext, f *FormatContext) error
}

// ParseContext exposes the unparsed tail of a custom field's spec to a
// Formatter callback.
type ParseContext struct {
	tail string
}

// Tail returns whatever spec text follows a custom field's own consumed
// prefix. The parser consumes the whole spec into FormatContext.Spec, so
// for fields rendered by Format the tail is always empty.
func (p *ParseContext) Tail() string { return p.tail }

// FormatContext is the write-side counterpart passed to a Formatter
// callback: the already-parsed spec and the sink to write into.
type FormatContext struct {
	Spec FormatSpec
	sink sink
}

// Write appends data to the underlying sink, honouring nothing beyond raw
// bytes — alignment/width for custom types is the callback's own
// responsibility (§4.7.8).
func (f *FormatContext) Write(p []byte) (int, error) {
	f.sink.Append(p)
	return len(p), nil
}

// WriteString appends a string to the underlying sink.
func (f *FormatContext) WriteString(s string) (int, error) {
	f.sink.AppendString(s)
	return len(s), nil
}

type namedSlot struct {
	name string
	idx  int
}

// ArgTable is a type-erased, by-index/by-name argument store built once
// per formatting call and never mutated after construction (§4.4).
type ArgTable struct {
	packed   [maxPacked]argValue
	overflow []argValue
	n        int
	names    []namedSlot
}

// NewArgTable maps a variadic argument list into an ArgTable. Bare values
// bind positionally; NamedArg values additionally register a name ->
// index mapping, but still occupy a positional slot (matching fmtlib,
// where fmt::arg results can also be referenced by position).
func NewArgTable(args ...any) *ArgTable {
	t := &ArgTable{}
	if len(args) > maxPacked {
		t.overflow = make([]argValue, 0, len(args)-maxPacked)
	}
	for _, a := range args {
		name := ""
		v := a
		if na, ok := a.(NamedArg); ok {
			name = na.Name
			v = na.Value
		}
		idx := t.append(mapArg(v))
		if name != "" {
			t.names = append(t.names, namedSlot{name: name, idx: idx})
		}
	}
	return t
}

func (t *ArgTable) append(v argValue) int {
	idx := t.n
	if idx < maxPacked {
		t.packed[idx] = v
	} else {
		t.overflow = append(t.overflow, v)
	}
	t.n++
	return idx
}

// Len returns the number of positional arguments bound.
func (t *ArgTable) Len() int { return t.n }

func (t *ArgTable) at(idx int) argValue {
	if idx < 0 || idx >= t.n {
		return argValue{}
	}
	if idx < maxPacked {
		return t.packed[idx]
	}
	return t.overflow[idx-maxPacked]
}

// ByIndex returns the argument bound at n, or the none value if n is out
// of range (§4.4).
func (t *ArgTable) ByIndex(n int) (argValue, bool) {
	if n < 0 || n >= t.n {
		return argValue{}, false
	}
	return t.at(n), true
}

// ByName scans the small name table built at construction time (§4.4).
func (t *ArgTable) ByName(name string) (argValue, bool) {
	for _, ns := range t.names {
		if ns.name == name {
			return t.at(ns.idx), true
		}
	}
	return argValue{}, false
}

// mapArg promotes a concrete Go value to its argValue representation,
// collapsing narrow integer/float kinds and routing anything unrecognized
// to KindCustom when it implements Formatter, else stores it verbatim for
// reflective fallback formatting (§4.4 "type-mapper").
func mapArg(v any) argValue {
	switch x := v.(type) {
	case nil:
		return argValue{kind: KindNone}
	case bool:
		u := uint64(0)
		if x {
			u = 1
		}
		return argValue{kind: KindBool, u64: u, rawAny: v}
	case int:
		return argValue{kind: KindInt, i64: int64(x), rawAny: v}
	case int8:
		return argValue{kind: KindInt, i64: int64(x), rawAny: v}
	case int16:
		return argValue{kind: KindInt, i64: int64(x), rawAny: v}
	case int32:
		// Go defines rune as an alias of int32, so a bare rune value binds
		// here as a plain integer (decimal default). Callers that want
		// character presentation by default must wrap the value in Char.
		return argValue{kind: KindInt, i64: int64(x), rawAny: v}
	case int64:
		return argValue{kind: KindInt64, i64: x, rawAny: v}
	case uint:
		return argValue{kind: KindUint, u64: uint64(x), rawAny: v}
	case uint8:
		// byte is an alias of uint8; see the int32/rune note above.
		return argValue{kind: KindUint, u64: uint64(x), rawAny: v}
	case uint16:
		return argValue{kind: KindUint, u64: uint64(x), rawAny: v}
	case uint32:
		return argValue{kind: KindUint, u64: uint64(x), rawAny: v}
	case uint64:
		return argValue{kind: KindUint64, u64: x, rawAny: v}
	case uintptr:
		return argValue{kind: KindPointer, u64: uint64(x), rawAny: v}
	case float32:
		return argValue{kind: KindFloat32, f64: float64(x), rawAny: v}
	case float64:
		return argValue{kind: KindFloat64, f64: x, rawAny: v}
	case Char:
		return argValue{kind: KindChar, i64: int64(x), rawAny: v}
	case string:
		return argValue{kind: KindString, str: x, rawAny: v}
	case Formatter:
		return argValue{kind: KindCustom, custom: x, rawAny: v}
	case error:
		return argValue{kind: KindString, str: x.Error(), rawAny: v}
	case fmtStringer:
		return argValue{kind: KindString, str: x.String(), rawAny: v}
	default:
		return argValue{kind: KindCustom, custom: reflectFormatter{v: v}, rawAny: v}
	}
}

// Char marks a value for CHAR-kind presentation (§3.1, §4.5 "c is
// default; numeric codes render the code point"). Go's rune and byte are
// plain aliases of int32/uint8, so a bare rune or byte argument is
// indistinguishable from an integer at the type-switch level and binds as
// one (decimal default); wrap it as strfmt.Char(v) to get char defaults.
type Char int32

// fmtStringer mirrors fmt.Stringer without importing the standard "fmt"
// package, keeping this engine's own import graph free of the package it
// supersedes.
type fmtStringer interface {
	String() string
}

// reflectFormatter adapts an arbitrary value with no Formatter
// implementation into one that renders it via reflectString, so Format
// never hard-fails on an unrecognized argument type: scalar kinds render
// as their value, while struct/slice/map/pointer values render as their
// type name in angle brackets (their contents are not walked). The
// field's spec is ignored.
type reflectFormatter struct{ v any }

func (r reflectFormatter) FormatSTR(p *ParseContext, f *FormatContext) error {
	f.WriteString(genericString(r.v))
	return nil
}

// genericString renders a best-effort textual form for values that are
// neither a known scalar nor a Stringer/error/Formatter. It never panics;
// unsupported kinds degrade to a type name in angle brackets.
func genericString(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflectString(v)
}

// readIntArg implements §4.8's read_int_arg: accepts the integer kinds,
// rejects everything else and negatives, used for dynamic width/precision
// resolution.
func readIntArg(v argValue, what string) (int, error) {
	switch v.kind {
	case KindInt, KindInt64:
		if v.i64 < 0 {
			return 0, newFormatError(errArgumentBinding, what+" is not integer")
		}
		if v.i64 > math.MaxInt32 {
			return 0, newFormatError(errNumericOverflow, "number is too big in format")
		}
		return int(v.i64), nil
	case KindUint, KindUint64:
		if v.u64 > math.MaxInt32 {
			return 0, newFormatError(errNumericOverflow, "number is too big in format")
		}
		return int(v.u64), nil
	default:
		return 0, newFormatError(errArgumentBinding, what+" is not integer")
	}
}
