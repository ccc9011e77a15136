package formatter

// ArgKind identifies the type of one positional argument in a
// MessageSlot's encoded payload. The kind sequence recorded on a
// Handle is what lets the decoder walk the payload without any
// per-message type information.
type ArgKind uint8

const (
	// KindInt64 is a fixed-width 64-bit signed integer, copied raw.
	KindInt64 ArgKind = iota
	// KindFloat64 is a fixed-width 64-bit float, copied raw.
	KindFloat64
	// KindBool is a single byte, 0 or 1.
	KindBool
	// KindString is copied as its bytes followed by a nul terminator.
	KindString
)

func (k ArgKind) String() string {
	switch k {
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Arg is one positional call-site argument. It is a tagged union
// rather than an interface{} so that the common scalar types never
// escape to the heap when passed to Producer.Log.
type Arg struct {
	Kind ArgKind
	I    int64
	F    float64
	S    string
}

// Int returns an Arg carrying a 64-bit integer.
func Int(v int64) Arg { return Arg{Kind: KindInt64, I: v} }

// Float returns an Arg carrying a 64-bit float.
func Float(v float64) Arg { return Arg{Kind: KindFloat64, F: v} }

// Bool returns an Arg carrying a boolean.
func Bool(v bool) Arg {
	var i int64
	if v {
		i = 1
	}
	return Arg{Kind: KindBool, I: i}
}

// Str returns an Arg carrying a string. Strings containing an
// embedded nul byte are a documented limitation: the decoder will
// stop at the first nul, per the wire format's encoding rules.
func Str(v string) Arg { return Arg{Kind: KindString, S: v} }

// kindsOf returns the ArgKind sequence of a slice of Args, used as
// part of a Handle's interning key.
func kindsOf(args []Arg) []ArgKind {
	kinds := make([]ArgKind, len(args))
	for i, a := range args {
		kinds[i] = a.Kind
	}
	return kinds
}
