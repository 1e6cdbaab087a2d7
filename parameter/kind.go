package parameter

// Kind identifies which variant a Parameter is.
type Kind uint

//go:generate stringer -type=Kind -linecomment
const (
	_              Kind = iota
	KindChoice          // choice
	KindFlag            // flag
	KindInteger         // integer
	KindString          // string
	KindStringList      // stringList
)
