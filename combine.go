package namerig

// Combine builds a name from a part-name-to-value mapping. Values are laid
// out in schema order, unknown keys are ignored, empty parts are dropped
// from the join, and the index token is normalized to the schema's padding
// width.
func (s *Schema) Combine(parts map[string]string, delim string) string {
	vals := make([]string, len(s.parts))
	for i, p := range s.parts {
		if v, ok := parts[p.Name()]; ok {
			vals[i] = v
		}
	}
	return s.PadIndex(joinTokens(vals, delim))
}

// Describe rewrites str with every enumerated value replaced by its
// plain-language label. Values without a label, the real name, and the index
// pass through unchanged.
func (s *Schema) Describe(str string) string {
	res := s.resolve(str)
	descs := make(map[string]string, len(s.parts))
	for i, p := range s.parts {
		v := res.values[i]
		d := p.Description(v)
		if d == "" && v != "" {
			d = v
		}
		descs[p.Name()] = d
	}
	return s.Combine(descs, res.delim)
}

// DescribeKorean rewrites str with every enumerated value replaced by its
// Korean label, falling back to the plain-language label and then to the
// value itself.
func (s *Schema) DescribeKorean(str string) string {
	res := s.resolve(str)
	descs := make(map[string]string, len(s.parts))
	for i, p := range s.parts {
		v := res.values[i]
		d := p.KoreanDescription(v)
		if d == "" {
			d = p.Description(v)
		}
		if d == "" && v != "" {
			d = v
		}
		descs[p.Name()] = d
	}
	return s.Combine(descs, res.delim)
}

// ReplacePart swaps the named part's value in str for newValue and
// re-normalizes index padding.
func (s *Schema) ReplacePart(partName, str, newValue string) string {
	res := s.resolve(str)
	i := s.PartIndex(partName)
	if i < 0 {
		return str
	}
	vals := append([]string(nil), res.values...)
	vals[i] = newValue
	return s.PadIndex(joinTokens(vals, res.delim))
}

// RemovePart drops the named part from str entirely and re-normalizes index
// padding. No empty-placeholder delimiter is left behind.
func (s *Schema) RemovePart(partName, str string) string {
	return s.ReplacePart(partName, str, "")
}

// AddPrefixToPart glues prefix onto the front of the named part's value.
// The name is returned unchanged when prefix is empty.
func (s *Schema) AddPrefixToPart(partName, str, prefix string) string {
	if prefix == "" {
		return str
	}
	res := s.resolve(str)
	i := s.PartIndex(partName)
	if i < 0 {
		return str
	}
	vals := append([]string(nil), res.values...)
	vals[i] = prefix + vals[i]
	return joinTokens(vals, res.delim)
}

// AddSuffixToPart glues suffix onto the end of the named part's value.
// The name is returned unchanged when suffix is empty.
func (s *Schema) AddSuffixToPart(partName, str, suffix string) string {
	if suffix == "" {
		return str
	}
	res := s.resolve(str)
	i := s.PartIndex(partName)
	if i < 0 {
		return str
	}
	vals := append([]string(nil), res.values...)
	vals[i] = vals[i] + suffix
	return joinTokens(vals, res.delim)
}

// AddPrefixToRealName glues prefix onto the front of the real name.
func (s *Schema) AddPrefixToRealName(str, prefix string) string {
	return s.AddPrefixToPart(s.RealNamePart().Name(), str, prefix)
}

// AddSuffixToRealName glues suffix onto the end of the real name.
func (s *Schema) AddSuffixToRealName(str, suffix string) string {
	return s.AddSuffixToPart(s.RealNamePart().Name(), str, suffix)
}

// ReplaceDelimiter rebuilds str using newDelim between its parts.
func (s *Schema) ReplaceDelimiter(str, newDelim string) string {
	return joinTokens(s.ToArray(str), newDelim)
}
