package network

// ParamKind distinguishes how a query parameter arrived on the wire.
type ParamKind int

const (
	// ParamAbsent means the key was not supplied at all.
	ParamAbsent ParamKind = iota
	// ParamPresent means the key carried exactly one value.
	ParamPresent
	// ParamMultiple means the key was repeated.
	ParamMultiple
)

// Param models one raw inbound parameter. Affiliate callbacks are loosely
// typed: any key may be missing, single-valued, or repeated. The normalizer
// resolves a Param exactly once so downstream code only sees clean scalars.
type Param struct {
	kind   ParamKind
	values []string
}

// NewParam builds a Param from the raw value slice of a query key.
func NewParam(values []string) Param {
	switch len(values) {
	case 0:
		return Param{kind: ParamAbsent}
	case 1:
		return Param{kind: ParamPresent, values: values}
	default:
		return Param{kind: ParamMultiple, values: values}
	}
}

// Kind reports how the parameter arrived.
func (p Param) Kind() ParamKind {
	return p.kind
}

// First returns the first occurrence of the parameter. Repeated keys resolve
// deterministically to their first value. The second return is false when the
// parameter is absent or its value is the empty string, which alias
// resolution treats the same as absent.
func (p Param) First() (string, bool) {
	if p.kind == ParamAbsent || p.values[0] == "" {
		return "", false
	}
	return p.values[0], true
}
