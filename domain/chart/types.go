package chart

// Kind identifies the visual chart type requested by the caller. The raw
// value is preserved even when unrecognized; consumers that need a concrete
// type fall back to clustered-column behavior for unknown kinds.
type Kind string

const (
	KindPie     Kind = "pie"
	KindBar     Kind = "bar"
	KindLine    Kind = "line"
	KindScatter Kind = "scatter"
	KindArea    Kind = "area"
)

// DefaultKind is used when the caller does not specify a chart type.
const DefaultKind = KindBar

// ParseKind normalizes a raw form value into a Kind. Empty input yields the
// default; anything else is kept as-is so download identifiers and response
// echoes stay faithful to what was requested.
func ParseKind(raw string) Kind {
	if raw == "" {
		return DefaultKind
	}
	return Kind(raw)
}

// Known reports whether the kind is one of the supported chart types.
func (k Kind) Known() bool {
	switch k {
	case KindPie, KindBar, KindLine, KindScatter, KindArea:
		return true
	}
	return false
}

// Point is a single (category, value) pair feeding a chart.
type Point struct {
	Category string
	Value    float64
}

// Series is the ordered sequence of points extracted from a table.
type Series []Point

// Categories returns the category labels in order.
func (s Series) Categories() []string {
	cats := make([]string, len(s))
	for i, p := range s {
		cats[i] = p.Category
	}
	return cats
}

// Values returns the numeric values in order.
func (s Series) Values() []float64 {
	vals := make([]float64, len(s))
	for i, p := range s {
		vals[i] = p.Value
	}
	return vals
}
