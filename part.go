package namerig

// Part is a single named, typed slot in a naming schema. Prefix and Suffix
// parts carry an ordered set of predefined values with two parallel
// description lists (plain and Korean) and derived weights; RealName and
// Index parts carry no value set.
//
// A Part is owned by the Schema holding it. Mutating the value set while
// another goroutine reads the schema requires external synchronization.
type Part struct {
	name        string
	typ         PartType
	values      []string
	descs       []string
	koreanDescs []string
	weights     []int
	isDirection bool
}

// NewPart builds a part. descriptions and koreanDescriptions are padded or
// truncated to the length of values; for RealName and Index types all three
// lists are discarded. Weights are derived from declaration order.
func NewPart(name string, typ PartType, values, descriptions, koreanDescriptions []string, isDirection bool) *Part {
	p := &Part{
		name:        name,
		typ:         typ,
		values:      append([]string(nil), values...),
		descs:       fitLength(descriptions, len(values)),
		koreanDescs: fitLength(koreanDescriptions, len(values)),
		isDirection: isDirection,
	}
	if !typ.enumerated() {
		p.values = nil
		p.descs = nil
		p.koreanDescs = nil
	}
	p.updateWeights()
	return p
}

// fitLength pads with empty strings or truncates so len(ss) == n.
func fitLength(ss []string, n int) []string {
	out := append([]string(nil), ss...)
	for len(out) < n {
		out = append(out, "")
	}
	return out[:n]
}

// updateWeights reassigns 5, 10, 15, ... in declaration order.
func (p *Part) updateWeights() {
	if !p.typ.enumerated() {
		p.weights = nil
		return
	}
	p.weights = make([]int, len(p.values))
	for i := range p.values {
		p.weights[i] = 5 * (i + 1)
	}
}

// Name returns the part's identifier within its schema.
func (p *Part) Name() string { return p.name }

// Type returns the part's type.
func (p *Part) Type() PartType { return p.typ }

func (p *Part) IsPrefix() bool   { return p.typ == Prefix }
func (p *Part) IsSuffix() bool   { return p.typ == Suffix }
func (p *Part) IsRealName() bool { return p.typ == RealName }
func (p *Part) IsIndex() bool    { return p.typ == Index }

// IsDirection reports whether the part is eligible for mirroring.
func (p *Part) IsDirection() bool { return p.isDirection }

// Values returns a copy of the predefined value list.
func (p *Part) Values() []string { return append([]string(nil), p.values...) }

// ValueCount returns the number of predefined values.
func (p *Part) ValueCount() int { return len(p.values) }

// ValueAt returns the predefined value at i, or "" when out of range.
func (p *Part) ValueAt(i int) string {
	if i < 0 || i >= len(p.values) {
		return ""
	}
	return p.values[i]
}

// HasValue reports membership in the predefined value set. For Index parts
// it instead reports whether v is a digit string.
func (p *Part) HasValue(v string) bool {
	if p.typ == Index {
		return isDigits(v)
	}
	return p.indexOf(v) >= 0
}

func (p *Part) indexOf(v string) int {
	for i, pv := range p.values {
		if pv == v {
			return i
		}
	}
	return -1
}

// AddValue appends a predefined value with its descriptions and recomputes
// weights. It reports false when the part type carries no value set or the
// value already exists.
func (p *Part) AddValue(v, description, koreanDescription string) bool {
	if !p.typ.enumerated() {
		return false
	}
	if p.indexOf(v) >= 0 {
		return false
	}
	p.values = append(p.values, v)
	p.descs = append(p.descs, description)
	p.koreanDescs = append(p.koreanDescs, koreanDescription)
	p.updateWeights()
	return true
}

// RemoveValue removes a predefined value and its parallel entries. It
// reports false when the value is absent.
func (p *Part) RemoveValue(v string) bool {
	i := p.indexOf(v)
	if i < 0 {
		return false
	}
	p.values = append(p.values[:i], p.values[i+1:]...)
	p.descs = append(p.descs[:i], p.descs[i+1:]...)
	p.koreanDescs = append(p.koreanDescs[:i], p.koreanDescs[i+1:]...)
	p.updateWeights()
	return true
}

// SetValues replaces the whole value set. descriptions and
// koreanDescriptions are padded or truncated to match.
func (p *Part) SetValues(values, descriptions, koreanDescriptions []string) {
	if !p.typ.enumerated() {
		return
	}
	p.values = append([]string(nil), values...)
	p.descs = fitLength(descriptions, len(values))
	p.koreanDescs = fitLength(koreanDescriptions, len(values))
	p.updateWeights()
}

// ClearValues drops every predefined value.
func (p *Part) ClearValues() {
	if !p.typ.enumerated() {
		return
	}
	p.values = nil
	p.descs = nil
	p.koreanDescs = nil
	p.weights = nil
}

// Validate reports whether v is legal for this part: digit strings for
// Index, membership for Prefix/Suffix with a non-empty value set, anything
// for RealName. A Prefix/Suffix with no declared values is permissive.
func (p *Part) Validate(v string) bool {
	switch p.typ {
	case Index:
		return isDigits(v)
	case Prefix, Suffix:
		if len(p.values) == 0 {
			return true
		}
		return p.indexOf(v) >= 0
	default:
		return true
	}
}

// Weights returns a copy of the derived weight list.
func (p *Part) Weights() []int { return append([]int(nil), p.weights...) }

// WeightOf returns the weight of v, or 0 when v is not a member.
func (p *Part) WeightOf(v string) int {
	i := p.indexOf(v)
	if i < 0 {
		return 0
	}
	return p.weights[i]
}

// ValueByWeight returns the value carrying exactly the given weight, or "".
func (p *Part) ValueByWeight(weight int) string {
	for i, w := range p.weights {
		if w == weight {
			return p.values[i]
		}
	}
	return ""
}

// MinWeightValue returns the first declared value, or "".
func (p *Part) MinWeightValue() string {
	if len(p.values) == 0 {
		return ""
	}
	return p.values[0]
}

// MaxWeightValue returns the last declared value, or "".
func (p *Part) MaxWeightValue() string {
	if len(p.values) == 0 {
		return ""
	}
	return p.values[len(p.values)-1]
}

// OppositeValue returns the member whose weight differs most from v's,
// breaking ties by declaration order. This is a heuristic mirror lookup: it
// pairs opposites correctly only when they are declared with maximal
// positional separation (e.g. ["L","R"] or ["Front","Middle","Back"]).
// Returns "" when v is not a member or fewer than two values exist.
func (p *Part) OppositeValue(v string) string {
	i := p.indexOf(v)
	if i < 0 || len(p.values) < 2 {
		return ""
	}
	cur := p.weights[i]
	maxDiff := -1
	found := ""
	for j, pv := range p.values {
		if j == i {
			continue
		}
		d := cur - p.weights[j]
		if d < 0 {
			d = -d
		}
		if d > maxDiff {
			maxDiff = d
			found = pv
		}
	}
	return found
}

// Description returns the plain-language label of v, or "".
func (p *Part) Description(v string) string {
	i := p.indexOf(v)
	if i < 0 {
		return ""
	}
	return p.descs[i]
}

// KoreanDescription returns the Korean label of v, or "".
func (p *Part) KoreanDescription(v string) string {
	i := p.indexOf(v)
	if i < 0 {
		return ""
	}
	return p.koreanDescs[i]
}

// SetDescription updates the plain-language label of v.
func (p *Part) SetDescription(v, description string) bool {
	i := p.indexOf(v)
	if i < 0 {
		return false
	}
	p.descs[i] = description
	return true
}

// SetKoreanDescription updates the Korean label of v.
func (p *Part) SetKoreanDescription(v, koreanDescription string) bool {
	i := p.indexOf(v)
	if i < 0 {
		return false
	}
	p.koreanDescs[i] = koreanDescription
	return true
}

// Descriptions returns a copy of the plain-language labels.
func (p *Part) Descriptions() []string { return append([]string(nil), p.descs...) }

// KoreanDescriptions returns a copy of the Korean labels.
func (p *Part) KoreanDescriptions() []string { return append([]string(nil), p.koreanDescs...) }

// ValueByDescription returns the first value whose plain-language label
// equals d, or "".
func (p *Part) ValueByDescription(d string) string {
	for i, pd := range p.descs {
		if pd == d {
			return p.values[i]
		}
	}
	return ""
}

// ValueByKoreanDescription returns the first value whose Korean label equals
// d, or "".
func (p *Part) ValueByKoreanDescription(d string) string {
	for i, pd := range p.koreanDescs {
		if pd == d {
			return p.values[i]
		}
	}
	return ""
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
