package erp

// Condition is one [field, operator, value] triple of a search domain.
type Condition struct {
	Field    string
	Operator string
	Value    any
}

// Domain is the conjunction of its conditions.
type Domain []Condition

func Where(field, operator string, value any) Domain {
	return Domain{{Field: field, Operator: operator, Value: value}}
}

func (d Domain) And(field, operator string, value any) Domain {
	return append(d, Condition{Field: field, Operator: operator, Value: value})
}

// args renders the domain in the wire shape the record store expects:
// a list of 3-element arrays.
func (d Domain) args() []any {
	out := make([]any, len(d))
	for i, c := range d {
		out[i] = []any{c.Field, c.Operator, c.Value}
	}
	return out
}
