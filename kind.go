package strfmt

// Kind identifies the runtime category of a bound argument. The ordering
// matters: every numeric kind sits at or below lastNumeric, so "is this
// argument numeric" is a single comparison.
type Kind uint8

const (
	KindNone Kind = iota
	KindBool
	KindInt
	KindUint
	KindInt64
	KindUint64
	KindFloat32
	KindFloat64
	lastNumeric // sentinel, not a real kind

	KindChar
	KindString
	KindPointer
	KindCustom
)

// isNumeric excludes KindBool even though it shares the packed numeric
// span below lastNumeric: bool's default rendering is "true"/"false",
// which aligns like a string, not like an int/float (§4.7).
func (k Kind) isNumeric() bool { return k > KindBool && k < lastNumeric }

func (k Kind) isInteger() bool {
	switch k {
	case KindInt, KindUint, KindInt64, KindUint64:
		return true
	default:
		return false
	}
}

func (k Kind) isFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

func (k Kind) isSigned() bool {
	return k == KindInt || k == KindInt64 || k == KindFloat32 || k == KindFloat64
}

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindInt64:
		return "int64"
	case KindUint64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindChar:
		return "char"
	case KindString:
		return "string"
	case KindPointer:
		return "pointer"
	case KindCustom:
		return "custom"
	default:
		return "invalid"
	}
}

// category names the argument category used in the "invalid format
// specifier 'c' for Y argument" error message (§4.6/§4.7). The other
// type-mismatch messages spell their category out literally; no message
// in the package uses the "unknown format code" or "requires X argument"
// wording.
func (k Kind) category() string {
	switch {
	case k.isInteger():
		return "integer"
	case k.isFloat():
		return "floating-point"
	}
	switch k {
	case KindBool:
		return "bool"
	case KindChar:
		return "char"
	case KindString:
		return "string"
	case KindPointer:
		return "pointer"
	case KindCustom:
		return "custom"
	default:
		return "argument"
	}
}
