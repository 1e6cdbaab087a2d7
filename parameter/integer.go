package parameter

// Integer is a parameter whose argument is a whole number.
type Integer struct {
	identity
	argument

	value int64
	isSet bool
}

// NewInteger requires a valid argument name.
func NewInteger(definition Definition) (*Integer, error) {
	id, arg, err := newWithArgument(definition)
	if err != nil {
		return nil, err
	}
	return &Integer{identity: id, argument: arg}, nil
}

func (*Integer) Kind() Kind { return KindInteger }

// Accept expects a number; strings are not converted.
func (i *Integer) Accept(raw any) error {
	value, _ := RawOf(raw)
	switch v := value.(type) {
	case Absent:
		i.value, i.isSet = 0, false
	case Number:
		i.value, i.isSet = int64(v), true
	default:
		return unexpectedValue(i, raw)
	}
	return nil
}

// Value returns the parsed value,
// and false if the parameter was not provided (or not yet parsed).
func (i *Integer) Value() (int64, bool) { return i.value, i.isSet }
