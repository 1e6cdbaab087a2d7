package parameter

import "math"

type (
	// Raw is the closed set of value shapes a parser may produce for a parameter.
	Raw interface{ raw() }

	// Absent means the parser produced no value.
	Absent struct{}
	// Bool is the value of a parameter that takes no argument.
	Bool bool
	// Number is a whole number argument.
	Number int64
	// Text is a single argument.
	Text string
	// Texts holds every argument of a repeated parameter, in order.
	Texts []string
)

func (Absent) raw() {}
func (Bool) raw()   {}
func (Number) raw() {}
func (Text) raw()   {}
func (Texts) raw()  {}

// RawOf converts a value from a parser's result map into a Raw value.
// It returns false if the value has none of the expected shapes.
//
// nil becomes Absent, Go integer types become Number,
// and both []string and []any (if every element is a string) become Texts.
// Floats become Number only if they hold a whole value within the range of int64,
// as decoded JSON numbers do.
// Values that are already Raw are returned as is.
func RawOf(value any) (Raw, bool) {
	switch v := value.(type) {
	case nil:
		return Absent{}, true
	case Raw:
		return v, true
	case bool:
		return Bool(v), true
	case string:
		return Text(v), true
	case []string:
		return Texts(v), true
	case []any:
		texts := make(Texts, len(v))
		for i, element := range v {
			text, ok := element.(string)
			if !ok {
				return nil, false
			}
			texts[i] = text
		}
		return texts, true
	case int:
		return Number(v), true
	case int8:
		return Number(v), true
	case int16:
		return Number(v), true
	case int32:
		return Number(v), true
	case int64:
		return Number(v), true
	case uint8:
		return Number(v), true
	case uint16:
		return Number(v), true
	case uint32:
		return Number(v), true
	case uint:
		return unsignedNumber(uint64(v))
	case uint64:
		return unsignedNumber(v)
	case float32:
		return floatNumber(float64(v))
	case float64:
		return floatNumber(v)
	}
	return nil, false
}

func unsignedNumber(value uint64) (Raw, bool) {
	if value > math.MaxInt64 {
		return nil, false
	}
	return Number(value), true
}

func floatNumber(value float64) (Raw, bool) {
	// -2^63 is exact as a float64, 2^63 is already out of range.
	if value != math.Trunc(value) ||
		value < math.MinInt64 || value >= math.MaxInt64 {
		return nil, false
	}
	return Number(value), true
}
