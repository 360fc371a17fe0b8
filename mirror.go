package namerig

import (
	"strconv"
	"strings"
)

// MirrorName flips every direction-flagged part of str to its opposite
// value (the member with the most different weight). Parts without a
// direction flag, the real name, and the index are left untouched. When no
// direction part changes, the input is returned as-is.
func (s *Schema) MirrorName(str string) string {
	res := s.resolve(str)
	vals := append([]string(nil), res.values...)
	for i, p := range s.parts {
		if !p.IsDirection() {
			continue
		}
		cur := vals[i]
		if cur == "" {
			continue
		}
		opp := p.OppositeValue(cur)
		if opp != "" && opp != cur {
			vals[i] = opp
		}
	}
	return joinTokens(vals, res.delim)
}

// UniqueName renumbers str so it does not collide with the given names: the
// index token is replaced by a wildcard, existing names matching the
// pattern are counted, and the index becomes count+1. Schemas without an
// Index part return str unchanged.
func (s *Schema) UniqueName(str string, existing []string) string {
	if s.indexIdx < 0 {
		return str
	}
	pattern := s.ReplacePart(s.indexPartName(), str, "*")
	count := 0
	for _, n := range existing {
		if wildcardMatch(n, pattern) {
			count++
		}
	}
	return s.ReplacePart(s.indexPartName(), str, strconv.Itoa(count+1))
}

// MirrorNameIn mirrors str and applies the caller-facing fallback policy:
// when the plain mirror pass is a no-op, names carrying a direction value
// are renumbered against existing, and names without one get a Mirrored tag
// appended to the real name.
func (s *Schema) MirrorNameIn(str string, existing []string) string {
	mirrored := s.MirrorName(str)
	if mirrored != str {
		return mirrored
	}
	for _, p := range s.parts {
		if p.IsDirection() && s.HasPart(p.Name(), str) {
			return s.UniqueName(str, existing)
		}
	}
	return s.AddSuffixToRealName(str, "Mirrored")
}

// wildcardMatch reports whether name matches pattern, where '*' matches any
// run of characters. Comparison is case-insensitive.
func wildcardMatch(name, pattern string) bool {
	name = strings.ToLower(name)
	pattern = strings.ToLower(pattern)
	segs := strings.Split(pattern, "*")
	if len(segs) == 1 {
		return name == pattern
	}
	if !strings.HasPrefix(name, segs[0]) {
		return false
	}
	name = name[len(segs[0]):]
	for _, seg := range segs[1 : len(segs)-1] {
		i := strings.Index(name, seg)
		if i < 0 {
			return false
		}
		name = name[i+len(seg):]
	}
	return strings.HasSuffix(name, segs[len(segs)-1])
}
