package namerig

// rawPick is a directional candidate for one part: the matching token and
// its position in the token list, or pos -1 when nothing matched.
type rawPick struct {
	val string
	pos int
}

// resolution is the outcome of running a name through the extraction pass:
// one accepted value per schema position plus the tokenization it was
// derived from.
type resolution struct {
	tokens []string
	delim  string
	values []string // indexed by schema position
}

// resolve extracts every part of str in two stages. Stage one collects a raw
// directional candidate per part: Prefix parts scan tokens left-to-right,
// Suffix parts right-to-left, and the Index part scans from the side implied
// by its schema position relative to the RealName part. Stage two accepts a
// candidate only when it is positionally consistent: for a Prefix part,
// every token before the candidate must be the candidate of an
// earlier-declared part; for a Suffix part, every token after it must be the
// candidate of a later-declared part. Index candidates are accepted
// unconditionally. The real name is what remains of the token list after
// removing each accepted value once.
//
// The consistency rule keeps a token that legally belongs to a later suffix
// from being misattributed to an earlier prefix that happens to share the
// value.
func (s *Schema) resolve(str string) resolution {
	tokens := Tokens(str)
	res := resolution{
		tokens: tokens,
		delim:  Delimiter(str),
		values: make([]string, len(s.parts)),
	}

	picks := make([]rawPick, len(s.parts))
	for i, p := range s.parts {
		picks[i] = s.rawPick(p, tokens)
	}

	for i, p := range s.parts {
		pk := picks[i]
		if pk.pos < 0 {
			continue
		}
		switch p.Type() {
		case Prefix:
			if accountedFor(tokens[:pk.pos], picks[:i]) {
				res.values[i] = pk.val
			}
		case Suffix:
			if accountedFor(tokens[pk.pos+1:], picks[i+1:]) {
				res.values[i] = pk.val
			}
		case Index:
			res.values[i] = pk.val
		}
	}

	rest := append([]string(nil), tokens...)
	for i := range s.parts {
		if i != s.realNameIdx && res.values[i] != "" {
			rest = removeFirst(rest, res.values[i])
		}
	}
	res.values[s.realNameIdx] = joinTokens(rest, res.delim)
	return res
}

// rawPick finds the directional candidate of p among tokens.
func (s *Schema) rawPick(p *Part, tokens []string) rawPick {
	switch p.Type() {
	case Prefix:
		for i, t := range tokens {
			if p.HasValue(t) {
				return rawPick{val: t, pos: i}
			}
		}
	case Suffix:
		for i := len(tokens) - 1; i >= 0; i-- {
			if p.HasValue(tokens[i]) {
				return rawPick{val: tokens[i], pos: i}
			}
		}
	case Index:
		if s.indexIdx > s.realNameIdx {
			for i := len(tokens) - 1; i >= 0; i-- {
				if isDigits(tokens[i]) {
					return rawPick{val: tokens[i], pos: i}
				}
			}
		} else {
			for i, t := range tokens {
				if isDigits(t) {
					return rawPick{val: t, pos: i}
				}
			}
		}
	}
	return rawPick{pos: -1}
}

// accountedFor reports whether every token in region is claimed by one of
// the given candidates, matching each candidate at most once.
func accountedFor(region []string, picks []rawPick) bool {
	rest := append([]string(nil), region...)
	for _, pk := range picks {
		if pk.pos >= 0 {
			rest = removeFirst(rest, pk.val)
		}
	}
	return len(rest) == 0
}

// removeFirst deletes the first occurrence of v, if any.
func removeFirst(ss []string, v string) []string {
	for i, t := range ss {
		if t == v {
			return append(ss[:i], ss[i+1:]...)
		}
	}
	return ss
}

// PickValue scans the tokens of str for a raw candidate of the named part,
// without positional disambiguation. RealName is never resolved here.
// Returns "" when nothing matches.
func (s *Schema) PickValue(partName, str string) string {
	p := s.Part(partName)
	if p == nil {
		return ""
	}
	pk := s.rawPick(p, Tokens(str))
	if pk.pos < 0 {
		return ""
	}
	return pk.val
}

// Value extracts the named part's value from str, applying positional
// disambiguation. For the RealName part it returns the unclaimed remainder.
// Returns "" when the part is absent from the schema or the string.
func (s *Schema) Value(partName, str string) string {
	i := s.PartIndex(partName)
	if i < 0 {
		return ""
	}
	return s.resolve(str).values[i]
}

// RealNameValue extracts the real-name portion of str: every other part's
// value is claimed first and the remaining tokens are re-joined with the
// detected delimiter.
func (s *Schema) RealNameValue(str string) string {
	return s.resolve(str).values[s.realNameIdx]
}

// NonRealName returns str reduced to its non-RealName parts, joined with the
// detected delimiter in schema order.
func (s *Schema) NonRealName(str string) string {
	res := s.resolve(str)
	vals := append([]string(nil), res.values...)
	vals[s.realNameIdx] = ""
	return joinTokens(vals, res.delim)
}

// HasPart reports whether the named part resolves to a non-empty value in
// str.
func (s *Schema) HasPart(partName, str string) bool {
	return s.Value(partName, str) != ""
}

// ToArray decomposes str into one value per schema position.
func (s *Schema) ToArray(str string) []string {
	return append([]string(nil), s.resolve(str).values...)
}

// Decompose decomposes str into a part-name-to-value map covering every
// schema part. Absent parts map to "".
func (s *Schema) Decompose(str string) map[string]string {
	res := s.resolve(str)
	out := make(map[string]string, len(s.parts))
	for i, p := range s.parts {
		out[p.Name()] = res.values[i]
	}
	return out
}
