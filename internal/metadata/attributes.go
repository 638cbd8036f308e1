package metadata

import "strings"

const (
	attributeSeparator = ";"
	traitSeparator     = ":"

	genderTrait = "gender"
)

// Attribute is one trait of a ticket.
type Attribute struct {
	TraitType string
	Value     string
}

// Attributes is the attribute list of a document. It holds either the parsed
// trait entries (gender first) or, when any segment of the raw string was
// malformed, the raw string alone.
type Attributes struct {
	entries  []Attribute
	raw      string
	fallback bool
}

// ParseAttributes splits raw ("key: value; key: value") into trait entries
// preceded by the gender entry. A segment that does not split into exactly
// two parts on ':' abandons the whole row: the result is the raw string as
// the single element and the gender entry is dropped.
func ParseAttributes(raw, gender string) Attributes {
	entries := []Attribute{{TraitType: genderTrait, Value: gender}}

	for _, segment := range strings.Split(raw, attributeSeparator) {
		parts := strings.Split(segment, traitSeparator)
		if len(parts) != 2 {
			return Attributes{raw: raw, fallback: true}
		}
		entries = append(entries, Attribute{
			TraitType: strings.TrimSpace(parts[0]),
			Value:     strings.TrimSpace(parts[1]),
		})
	}

	return Attributes{entries: entries}
}

// Fallback reports whether the raw string was kept instead of parsed entries.
func (a Attributes) Fallback() bool {
	return a.fallback
}

// Entries returns the parsed entries, or nil when Fallback is true.
func (a Attributes) Entries() []Attribute {
	if a.fallback {
		return nil
	}
	out := make([]Attribute, len(a.entries))
	copy(out, a.entries)
	return out
}

// Raw returns the unsplit attribute string kept by the fallback path.
func (a Attributes) Raw() string {
	return a.raw
}

// Len returns the number of elements the attribute list serializes to.
func (a Attributes) Len() int {
	if a.fallback {
		return 1
	}
	return len(a.entries)
}
