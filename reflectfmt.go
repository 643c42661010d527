package strfmt

import "reflect"

// reflectString renders a best-effort representation for a value whose
// static type the type-mapper in mapArg did not recognize. Grounded on
// the teacher's internal/tfmt/convert.back.go anyToBuffFallback, which
// walks reflect.Kind for the same reason: give a custom-typed argument
// (e.g. `type Count int`) sane output instead of a hard type error.
func reflectString(v any) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		iv := rv.Int()
		var buf [32]byte
		if iv < 0 {
			n := appendDecimal(buf[:], negateUint(iv))
			return "-" + string(buf[:n])
		}
		n := appendDecimal(buf[:], uint64(iv))
		return string(buf[:n])
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		var buf [32]byte
		n := appendDecimal(buf[:], rv.Uint())
		return string(buf[:n])
	case reflect.Float32, reflect.Float64:
		return formatFloatDefault(rv.Float())
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		if rv.Bool() {
			return "true"
		}
		return "false"
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Array, reflect.Struct, reflect.Interface:
		if rv.Kind() == reflect.Ptr && rv.IsNil() {
			return "<nil>"
		}
		return "<" + rv.Type().String() + ">"
	default:
		return "<" + rv.Type().String() + ">"
	}
}
