package feature

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Name identifies a gym feature that can be switched on per tenant.
type Name string

// Known features.
const (
	Members      Name = "members"
	Trainers     Name = "trainers"
	Classes      Name = "classes"
	Equipment    Name = "equipment"
	CheckIns     Name = "check_ins"
	ActivityLogs Name = "activity_logs"
	Reports      Name = "reports"
)

var catalog = []Name{Members, Trainers, Classes, Equipment, CheckIns, ActivityLogs, Reports}

// Catalog returns all known features.
func Catalog() []Name {
	return slices.Clone(catalog)
}

// Valid reports whether n is a known feature.
func (n Name) Valid() bool {
	return slices.Contains(catalog, n)
}

// Set is the list of features enabled for a tenant.
// A nil Set means the tenant predates feature gating and is unrestricted;
// an empty non-nil Set enables nothing.
type Set []Name

// Unrestricted returns a Set that allows every feature.
func Unrestricted() Set {
	return nil
}

// Of builds a restricted Set. Of() with no arguments enables nothing.
func Of(names ...Name) Set {
	s := make(Set, 0, len(names))
	for _, n := range names {
		if !slices.Contains(s, n) {
			s = append(s, n)
		}
	}
	return s
}

// Parse converts stored feature names into a Set. A nil slice stays
// unrestricted. Unknown names are rejected.
func Parse(values []string) (Set, error) {
	if values == nil {
		return nil, nil
	}
	s := make(Set, 0, len(values))
	for _, v := range values {
		n := Name(strings.ToLower(strings.TrimSpace(v)))
		if !n.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFeature, v)
		}
		if !slices.Contains(s, n) {
			s = append(s, n)
		}
	}
	return s, nil
}

// FromStored converts persisted feature names into a Set. Names are
// normalized and deduplicated like Parse, but unknown names are kept:
// they never satisfy a feature check, since checks only accept catalog names.
func FromStored(values []string) Set {
	if values == nil {
		return nil
	}
	s := make(Set, 0, len(values))
	for _, v := range values {
		n := Name(strings.ToLower(strings.TrimSpace(v)))
		if n != "" && !slices.Contains(s, n) {
			s = append(s, n)
		}
	}
	return s
}

// IsUnrestricted reports whether the Set allows every feature.
func (s Set) IsUnrestricted() bool {
	return s == nil
}

// Enabled reports whether name is allowed by the Set.
func (s Set) Enabled(name Name) bool {
	if s == nil {
		return true
	}
	return slices.Contains(s, name)
}

// Strings returns the names as plain strings, nil for an unrestricted Set.
func (s Set) Strings() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	for i, n := range s {
		out[i] = string(n)
	}
	return out
}

// UnmarshalJSON keeps JSON null as an unrestricted Set.
func (s *Set) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
