package namerig

import (
	"fmt"
	"strings"
)

// DefaultPadding is the index digit width applied when a schema does not
// configure its own.
const DefaultPadding = 2

// Schema is an ordered collection of parts plus formatting state. The part
// order is load-bearing: it is the positional order in which parts are
// expected to appear in a formatted name, and it disambiguates tokens that
// are legal values of more than one part.
//
// A Schema is established once and then treated as read-only; concurrent
// readers are safe as long as no goroutine mutates a part's value set.
type Schema struct {
	parts   []*Part
	padding int

	realNameIdx int // position of the RealName part
	indexIdx    int // position of the Index part, -1 when absent
}

// NewSchema validates and assembles a schema from ordered parts. It rejects
// empty or duplicate part names, schemas without exactly one RealName part,
// and schemas with more than one Index part.
func NewSchema(parts ...*Part) (*Schema, error) {
	var iss Issues
	seen := make(map[string]struct{}, len(parts))
	realNameIdx, indexIdx := -1, -1
	for i, p := range parts {
		path := fmt.Sprintf("/nameParts/%d", i)
		if p.Name() == "" {
			iss = AppendIssues(iss, Issue{Path: path, Code: CodeEmptyPartName, Message: "part name must not be empty"})
		}
		if _, dup := seen[p.Name()]; dup {
			iss = AppendIssues(iss, Issue{Path: path, Code: CodeDuplicatePart, Message: fmt.Sprintf("part %q declared twice", p.Name())})
		}
		seen[p.Name()] = struct{}{}

		switch p.Type() {
		case RealName:
			if realNameIdx >= 0 {
				iss = AppendIssues(iss, Issue{Path: path, Code: CodeDuplicateRealName, Message: "schema must hold exactly one RealName part"})
			} else {
				realNameIdx = i
			}
		case Index:
			if indexIdx >= 0 {
				iss = AppendIssues(iss, Issue{Path: path, Code: CodeDuplicateIndex, Message: "schema must hold at most one Index part"})
			} else {
				indexIdx = i
			}
		}
	}
	if realNameIdx < 0 {
		iss = AppendIssues(iss, Issue{Path: "/nameParts", Code: CodeMissingRealName, Message: "schema must hold exactly one RealName part"})
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return &Schema{
		parts:       append([]*Part(nil), parts...),
		padding:     DefaultPadding,
		realNameIdx: realNameIdx,
		indexIdx:    indexIdx,
	}, nil
}

// DefaultSchema returns the built-in four-part schema
// (Prefix, RealName, Index, Suffix).
func DefaultSchema() *Schema {
	s, err := NewSchema(
		NewPart("Prefix", Prefix, []string{"Pr"}, []string{"Prefix"}, nil, false),
		NewPart("RealName", RealName, nil, nil, nil, false),
		NewPart("Index", Index, nil, nil, nil, false),
		NewPart("Suffix", Suffix, []string{"Su"}, []string{"Suffix"}, nil, false),
	)
	if err != nil {
		panic("namerig: default schema construction failed: " + err.Error())
	}
	return s
}

// Parts returns the ordered parts of the schema.
func (s *Schema) Parts() []*Part { return append([]*Part(nil), s.parts...) }

// PartNames returns the part names in schema order.
func (s *Schema) PartNames() []string {
	names := make([]string, len(s.parts))
	for i, p := range s.parts {
		names[i] = p.Name()
	}
	return names
}

// Part returns the part with the given name, or nil.
func (s *Schema) Part(name string) *Part {
	for _, p := range s.parts {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// PartIndex returns the schema position of the named part, or -1.
func (s *Schema) PartIndex(name string) int {
	for i, p := range s.parts {
		if p.Name() == name {
			return i
		}
	}
	return -1
}

// RealNamePart returns the schema's RealName part.
func (s *Schema) RealNamePart() *Part { return s.parts[s.realNameIdx] }

// IndexPart returns the schema's Index part, or nil when it has none.
func (s *Schema) IndexPart() *Part {
	if s.indexIdx < 0 {
		return nil
	}
	return s.parts[s.indexIdx]
}

// PaddingWidth returns the default digit width for the Index part.
func (s *Schema) PaddingWidth() int { return s.padding }

// SetPaddingWidth configures the default digit width for the Index part.
// Widths below 1 are ignored.
func (s *Schema) SetPaddingWidth(w int) {
	if w >= 1 {
		s.padding = w
	}
}

// PartValues returns the predefined values of the named part, or nil.
func (s *Schema) PartValues(name string) []string {
	p := s.Part(name)
	if p == nil {
		return nil
	}
	return p.Values()
}

// ContainsPartValue reports whether any predefined value of the named
// Prefix/Suffix part occurs as a substring of str.
func (s *Schema) ContainsPartValue(name, str string) bool {
	p := s.Part(name)
	if p == nil || (p.Type() != Prefix && p.Type() != Suffix) {
		return false
	}
	for _, v := range p.Values() {
		if v != "" && strings.Contains(str, v) {
			return true
		}
	}
	return false
}

// ValueByPartDescription resolves a predefined value of the named part from
// its plain-language label, or "".
func (s *Schema) ValueByPartDescription(name, description string) string {
	p := s.Part(name)
	if p == nil || (p.Type() != Prefix && p.Type() != Suffix) {
		return ""
	}
	return p.ValueByDescription(description)
}
