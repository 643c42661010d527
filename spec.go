package strfmt

// Align selects how padding is distributed around a formatted value
// (§3.5).
type Align uint8

const (
	AlignDefault Align = iota
	AlignLeft
	AlignRight
	AlignCenter
	AlignNumeric
)

// Sign selects how a numeric sign is rendered (§3.5).
type Sign uint8

const (
	SignNone Sign = iota
	SignPlus
	SignMinus
	SignSpace
)

// FormatSpec is the parsed form of the text after ':' inside a field.
// All defaults produce "identity" formatting (§3.5).
type FormatSpec struct {
	Fill       rune
	Align      Align
	Sign       Sign
	Alt        bool // '#' flag
	Zero       bool // '0' flag
	Localized  bool // 'L' flag
	Width      int
	Precision  int // -1 = unset
	Type       byte

	// Dynamic width/precision: when set, Width/Precision above are
	// placeholders and the real value must be resolved from an argument
	// before formatting (§4.6 "Dynamic width/precision").
	WidthRef      argRef
	WidthDynamic  bool
	PrecisionRef  argRef
	PrecisionDynamic bool

	fillSet bool // whether a fill char was explicitly parsed
}

// defaultFormatSpec returns a FormatSpec with every field at its
// identity-formatting default.
func defaultFormatSpec() FormatSpec {
	return FormatSpec{
		Fill:      ' ',
		Align:     AlignDefault,
		Sign:      SignNone,
		Precision: -1,
	}
}

// effectiveAlign resolves the alignment to use when Align is AlignDefault,
// given the argument's category (§4.7: strings/chars default right... for
// this engine the historical default mirrors {fmt}: numerics default to
// right, with NUMERIC substituted automatically when Zero is set).
func (s FormatSpec) effectiveAlign(k Kind) Align {
	if s.Align != AlignDefault {
		return s.Align
	}
	padsNumerically := k.isNumeric() || k == KindPointer
	if s.Zero && padsNumerically {
		return AlignNumeric
	}
	if padsNumerically {
		return AlignRight
	}
	return AlignLeft
}

// effectiveFill resolves the fill rune, applying the '0' flag's implicit
// fill of '0' when no explicit fill was parsed (§3.5 "zero... equivalent
// to align=NUMERIC, fill='0'").
func (s FormatSpec) effectiveFill() rune {
	if !s.fillSet && s.Zero {
		return '0'
	}
	return s.Fill
}
