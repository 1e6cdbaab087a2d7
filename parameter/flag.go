package parameter

// Flag is a parameter that takes no argument;
// its value is whether it was present.
type Flag struct {
	identity
	value bool
}

// NewFlag validates the definition's names; other fields are ignored.
func NewFlag(definition Definition) (*Flag, error) {
	id, err := newIdentity(definition)
	if err != nil {
		return nil, err
	}
	return &Flag{identity: id}, nil
}

func (*Flag) Kind() Kind { return KindFlag }

func (f *Flag) Accept(raw any) error {
	value, _ := RawOf(raw)
	switch v := value.(type) {
	case Absent:
		f.value = false
	case Bool:
		f.value = bool(v)
	default:
		return unexpectedValue(f, raw)
	}
	return nil
}

// Value is false until parsed, or if the flag was omitted.
func (f *Flag) Value() bool { return f.value }
