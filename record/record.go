// Package record models candidate data records for shape validation: a
// predicate-to-values mapping with a closed tagged value type, plus
// loading from YAML and JSON files.
//
// Predicate keys may be written prefixed (ex:age) or fully qualified
// (<http://example.org/age> or the bare IRI); the validator expands both
// forms through the schema's prefix table before comparison.
package record

import (
	"fmt"
	"time"
)

// Record is one candidate data record: an optional caller-supplied node
// label plus a mapping from predicate key to its values. The zero
// Record is ready to use.
type Record struct {
	// NodeID is carried into reports for traceability only.
	NodeID string

	fields map[string][]Value
}

// New returns an empty record.
func New() *Record {
	return &Record{fields: make(map[string][]Value)}
}

// Set replaces the values of a predicate.
func (r *Record) Set(predicate string, values ...Value) *Record {
	if r.fields == nil {
		r.fields = make(map[string][]Value)
	}
	r.fields[predicate] = values
	return r
}

// Add appends one value to a predicate.
func (r *Record) Add(predicate string, value Value) *Record {
	if r.fields == nil {
		r.fields = make(map[string][]Value)
	}
	r.fields[predicate] = append(r.fields[predicate], value)
	return r
}

// Get returns the values of a predicate key as written.
func (r *Record) Get(predicate string) []Value {
	return r.fields[predicate]
}

// Predicates returns all predicate keys as written, in no particular
// order.
func (r *Record) Predicates() []string {
	out := make([]string, 0, len(r.fields))
	for k := range r.fields {
		out = append(out, k)
	}
	return out
}

// Len returns the number of distinct predicate keys.
func (r *Record) Len() int { return len(r.fields) }

// idKey is the reserved mapping key that supplies NodeID when loading
// records from files.
const idKey = "@id"

// FromMap coerces a decoded YAML/JSON mapping into a Record. Scalars
// become tagged values via Coerce; slices become multi-valued
// predicates; an "@id" key supplies the NodeID. Unsupported value types
// (nested mappings, nil) are rejected.
func FromMap(m map[string]any) (*Record, error) {
	rec := New()
	for key, raw := range m {
		if key == idKey {
			s, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("record %s must be a string, got %T", idKey, raw)
			}
			rec.NodeID = s
			continue
		}
		switch tv := raw.(type) {
		case []any:
			values := make([]Value, 0, len(tv))
			for i, item := range tv {
				v, err := Coerce(item)
				if err != nil {
					return nil, fmt.Errorf("predicate %s value %d: %w", key, i, err)
				}
				values = append(values, v)
			}
			rec.Set(key, values...)
		default:
			v, err := Coerce(raw)
			if err != nil {
				return nil, fmt.Errorf("predicate %s: %w", key, err)
			}
			rec.Set(key, v)
		}
	}
	return rec, nil
}

// Coerce converts one decoded scalar into a tagged Value. Strings
// wrapped in angle brackets become references; other strings stay
// literals (the validator recognises prefixed and absolute references
// by lexical form during node-kind checks).
func Coerce(raw any) (Value, error) {
	switch tv := raw.(type) {
	case string:
		if len(tv) > 1 && tv[0] == '<' && tv[len(tv)-1] == '>' {
			return Reference(tv[1 : len(tv)-1]), nil
		}
		return String(tv), nil
	case bool:
		return Bool(tv), nil
	case int:
		return Int(int64(tv)), nil
	case int64:
		return Int(tv), nil
	case uint64:
		return Number(float64(tv)), nil
	case float64:
		return Number(tv), nil
	case float32:
		return Number(float64(tv)), nil
	case time.Time:
		// yaml.v3 resolves unquoted date-like scalars into time.Time.
		// Keep the lexical form the schema's date/dateTime checks expect.
		if tv.Hour() == 0 && tv.Minute() == 0 && tv.Second() == 0 && tv.Nanosecond() == 0 {
			return String(tv.Format("2006-01-02")), nil
		}
		return String(tv.Format(time.RFC3339)), nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", raw)
	}
}
