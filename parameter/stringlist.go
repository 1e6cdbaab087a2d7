package parameter

// StringList is a parameter that may be repeated,
// collecting each argument in the order given.
type StringList struct {
	identity
	argument
	values []string
}

// NewStringList requires a valid argument name.
func NewStringList(definition Definition) (*StringList, error) {
	id, arg, err := newWithArgument(definition)
	if err != nil {
		return nil, err
	}
	return &StringList{identity: id, argument: arg}, nil
}

func (*StringList) Kind() Kind { return KindStringList }

// Accept expects a sequence of strings.
// If any element is not a string, the whole sequence is rejected.
func (sl *StringList) Accept(raw any) error {
	value, _ := RawOf(raw)
	switch v := value.(type) {
	case Absent:
		sl.values = nil
	case Texts:
		sl.values = append([]string(nil), v...)
	default:
		return unexpectedValue(sl, raw)
	}
	return nil
}

// Values returns a copy of the parsed arguments.
// The result is empty (not nil) if the parameter was omitted or not yet parsed.
func (sl *StringList) Values() []string {
	return append(make([]string, 0, len(sl.values)), sl.values...)
}
