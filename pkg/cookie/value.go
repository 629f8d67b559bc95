package cookie

// Value is a value written to a jar. It is one of PlainValue, SignedValue
// or AttributedValue.
type Value interface {
	isValue()
}

// PlainValue is stored verbatim and serialized with the plugin defaults.
type PlainValue string

// SignedValue is signed with the newest secret before it is stored.
// Options override the plugin defaults for this write only.
type SignedValue struct {
	Value   string
	Options []Option
}

// AttributedValue is stored verbatim like PlainValue, but Options override
// the plugin defaults for this write only.
type AttributedValue struct {
	Value   string
	Options []Option
}

func (PlainValue) isValue()      {}
func (SignedValue) isValue()     {}
func (AttributedValue) isValue() {}

// Signed is shorthand for a SignedValue.
func Signed(value string, opts ...Option) SignedValue {
	return SignedValue{Value: value, Options: opts}
}

// WithAttributes is shorthand for an AttributedValue.
func WithAttributes(value string, opts ...Option) AttributedValue {
	return AttributedValue{Value: value, Options: opts}
}
