package namerig

import (
	"fmt"
	"sort"
	"strconv"
)

// PadNumber formats n as a zero-padded digit string of the given width. A
// width below 1 falls back to the schema's padding width. Negative numbers
// are clamped to 0.
func (s *Schema) PadNumber(n, width int) string {
	if width < 1 {
		width = s.padding
	}
	if n < 0 {
		n = 0
	}
	return fmt.Sprintf("%0*d", width, n)
}

// PadIndex normalizes the index token of str to the schema's padding width.
// Names without an index token are returned re-joined but otherwise
// unchanged.
func (s *Schema) PadIndex(str string) string {
	return s.PadIndexTo(str, s.padding)
}

// PadIndexTo normalizes the index token of str to the given digit width
// without changing its numeric value.
func (s *Schema) PadIndexTo(str string, width int) string {
	if width < 1 {
		width = s.padding
	}
	res := s.resolve(str)
	if s.indexIdx < 0 {
		return joinTokens(res.values, res.delim)
	}
	vals := append([]string(nil), res.values...)
	if vals[s.indexIdx] != "" {
		n, err := strconv.Atoi(vals[s.indexIdx])
		if err == nil {
			vals[s.indexIdx] = s.PadNumber(n, width)
		}
	}
	return joinTokens(vals, res.delim)
}

// IndexPadding reports the digit width of the index token currently present
// in str, or 1 when the token is absent.
func (s *Schema) IndexPadding(str string) int {
	if v := s.Value(s.indexPartName(), str); v != "" {
		return len(v)
	}
	return 1
}

// IndexValue parses the index token of str. ok is false when the schema has
// no Index part or the token is absent.
func (s *Schema) IndexValue(str string) (int, bool) {
	v := s.Value(s.indexPartName(), str)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// IncreaseIndex adds amount to the index token of str, clamping at 0. An
// absent index counts as one before zero, so increasing by 1 yields 0. The
// existing digit width is preserved; the width grows when the value no
// longer fits.
func (s *Schema) IncreaseIndex(str string, amount int) string {
	if s.indexIdx < 0 {
		return str
	}
	res := s.resolve(str)
	vals := append([]string(nil), res.values...)

	n := -1
	width := s.padding
	if cur := vals[s.indexIdx]; cur != "" {
		parsed, err := strconv.Atoi(cur)
		if err != nil {
			return str
		}
		n = parsed
		width = len(cur)
	}
	n += amount
	if n < 0 {
		n = 0
	}
	vals[s.indexIdx] = s.PadNumber(n, width)
	return joinTokens(vals, res.delim)
}

// StripIndex returns str with its index part removed.
func (s *Schema) StripIndex(str string) string {
	if s.indexIdx < 0 {
		return str
	}
	res := s.resolve(str)
	vals := append([]string(nil), res.values...)
	vals[s.indexIdx] = ""
	return joinTokens(vals, res.delim)
}

// SortByIndex returns names ordered ascending by their parsed numeric
// index. Names without a parsable index sort as 0. The sort is stable, so
// original relative order is preserved among equal indices.
func (s *Schema) SortByIndex(names []string) []string {
	type keyed struct {
		name string
		idx  int
	}
	recs := make([]keyed, len(names))
	for i, n := range names {
		v, _ := s.IndexValue(n)
		recs[i] = keyed{name: n, idx: v}
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].idx < recs[j].idx })
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.name
	}
	return out
}

func (s *Schema) indexPartName() string {
	if s.indexIdx < 0 {
		return ""
	}
	return s.parts[s.indexIdx].Name()
}
