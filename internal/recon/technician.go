package recon

import "strings"

// Resolver maps a free-text "responsible" field to a canonical technician
// name from a fixed roster. Roster order is a priority order: the first entry
// that matches wins, so rosters with colliding last names stay deterministic.
type Resolver struct {
	roster []string
	upper  []string
}

// NewResolver builds a Resolver for the given ordered roster of canonical
// display names.
func NewResolver(roster []string) *Resolver {
	r := &Resolver{roster: roster, upper: make([]string, len(roster))}
	for i, name := range roster {
		r.upper[i] = strings.ToUpper(strings.TrimSpace(name))
	}
	return r
}

// Roster returns the canonical names in priority order.
func (r *Resolver) Roster() []string {
	return r.roster
}

// Resolve matches a raw responsible value against the roster. A roster entry
// matches when the whole upper-cased name is equal to the input, or when the
// last word of the roster name appears as a substring of the input. Empty or
// non-string input resolves to Unknown, unmatched input to Other.
func (r *Resolver) Resolve(v any) string {
	s, ok := v.(string)
	if !ok {
		return UnknownTechnician
	}
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return UnknownTechnician
	}

	for i, full := range r.upper {
		if s == full {
			return r.roster[i]
		}
		if last := lastWord(full); last != "" && strings.Contains(s, last) {
			return r.roster[i]
		}
	}
	return OtherTechnician
}

func lastWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
