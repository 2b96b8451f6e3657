package source

import "strings"

// RawRecord is a single row as delivered by the query layer: arbitrary-case
// field names mapped to string, number or date-like values. Records are
// untrusted and carry no invariants of their own.
type RawRecord map[string]any

// NormalizeFields returns a copy of the record with every key upper-cased and
// trimmed, so downstream lookups are case and whitespace insensitive. A nil
// record yields an empty map.
func NormalizeFields(r RawRecord) RawRecord {
	out := make(RawRecord, len(r))
	for k, v := range r {
		out[strings.ToUpper(strings.TrimSpace(k))] = v
	}
	return out
}

// Field returns the first present value among the candidate field names,
// together with the name that matched. Candidates must already be in
// normalized (upper-cased, trimmed) form.
func (r RawRecord) Field(names ...string) (any, string, bool) {
	for _, n := range names {
		if v, ok := r[n]; ok {
			return v, n, true
		}
	}
	return nil, "", false
}

// StringField is Field for values expected to be text. Non-string values are
// treated as absent.
func (r RawRecord) StringField(names ...string) (string, string, bool) {
	v, name, ok := r.Field(names...)
	if !ok {
		return "", "", false
	}
	s, ok := v.(string)
	if !ok {
		return "", "", false
	}
	return s, name, true
}
