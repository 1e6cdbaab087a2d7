package parameter

// String is a parameter whose argument is kept as is.
type String struct {
	identity
	argument

	value string
	isSet bool
}

// NewString requires a valid argument name.
func NewString(definition Definition) (*String, error) {
	id, arg, err := newWithArgument(definition)
	if err != nil {
		return nil, err
	}
	return &String{identity: id, argument: arg}, nil
}

func (*String) Kind() Kind { return KindString }

func (s *String) Accept(raw any) error {
	value, _ := RawOf(raw)
	switch v := value.(type) {
	case Absent:
		s.value, s.isSet = "", false
	case Text:
		s.value, s.isSet = string(v), true
	default:
		return unexpectedValue(s, raw)
	}
	return nil
}

// Value returns the parsed value,
// and false if the parameter was not provided (or not yet parsed).
func (s *String) Value() (string, bool) { return s.value, s.isSet }
